package mic

import (
	"testing"

	"github.com/tlvkit/docsis"
)

func TestComputeCMMICDeterministic(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	secret := Secret("bindocsis_test")

	a := ComputeCMMIC(nodes, secret)
	b := ComputeCMMIC(nodes, secret)
	if a != b {
		t.Fatal("ComputeCMMIC is not deterministic")
	}
}

func TestComputeCMMICChangesWithAnyByte(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	secret := Secret("bindocsis_test")

	original := ComputeCMMIC(nodes, secret)

	mutated := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{2}}}
	if ComputeCMMIC(mutated, secret) == original {
		t.Fatal("changing a TLV byte should change the MIC")
	}

	reordered := []docsis.PlainTLV{
		{Type: 3, Length: 1, Value: []byte{1}},
		{Type: 9, Length: 1, Value: []byte{1}},
	}
	swapped := []docsis.PlainTLV{
		{Type: 9, Length: 1, Value: []byte{1}},
		{Type: 3, Length: 1, Value: []byte{1}},
	}
	if ComputeCMMIC(reordered, secret) == ComputeCMMIC(swapped, secret) {
		t.Fatal("reordering siblings should change the MIC")
	}
}

func TestComputeCMTSMICDiffersFromCMMIC(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	secret := Secret("bindocsis_test")

	cm := ComputeCMMIC(nodes, secret)
	cmts := ComputeCMTSMIC(nodes, secret)
	if cm == cmts {
		t.Fatal("CM MIC and CMTS MIC must differ under the same secret")
	}
}

func TestValidateCMRoundTrip(t *testing.T) {
	secret := Secret("bindocsis_test")
	base := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}

	cm := ComputeCMMIC(base, secret)
	withMIC := append(base, docsis.PlainTLV{Type: TypeCMMIC, Length: 16, Value: cm[:]})
	cmts := ComputeCMTSMIC(withMIC, secret)
	withBoth := append(withMIC, docsis.PlainTLV{Type: TypeCMTSMIC, Length: 16, Value: cmts[:]})

	result, err := ValidateCM(withBoth, secret)
	if err != nil || result.Status != StatusValid {
		t.Fatalf("ValidateCM: result=%+v err=%v", result, err)
	}

	result, err = ValidateCMTS(withBoth, secret)
	if err != nil || result.Status != StatusValid {
		t.Fatalf("ValidateCMTS: result=%+v err=%v", result, err)
	}
}

func TestValidateCMInvalidStrictReturnsError(t *testing.T) {
	secret := Secret("bindocsis_test")
	other := Secret("wrong_secret")
	base := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	cm := ComputeCMMIC(base, secret)
	withMIC := append(base, docsis.PlainTLV{Type: TypeCMMIC, Length: 16, Value: cm[:]})

	_, err := ValidateCM(withMIC, other)
	if err == nil {
		t.Fatal("expected a strict-mode error on mismatch")
	}
	if _, ok := err.(*MicInvalidError); !ok {
		t.Fatalf("err = %T", err)
	}
}

func TestValidateCMInvalidWarnModeNoError(t *testing.T) {
	secret := Secret("bindocsis_test")
	other := Secret("wrong_secret")
	base := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	cm := ComputeCMMIC(base, secret)
	withMIC := append(base, docsis.PlainTLV{Type: TypeCMMIC, Length: 16, Value: cm[:]})

	result, err := ValidateCM(withMIC, other, WithMode(ModeWarn))
	if err != nil {
		t.Fatalf("warn mode should not return an error: %v", err)
	}
	if result.Status != StatusInvalid {
		t.Fatalf("result = %+v", result)
	}
}

func TestValidateMissing(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	result, err := ValidateCM(nodes, Secret("x"))
	if err != nil || result.Status != StatusMissing {
		t.Fatalf("result=%+v err=%v", result, err)
	}
}

func TestValidateWrongLength(t *testing.T) {
	nodes := []docsis.PlainTLV{
		{Type: 3, Length: 1, Value: []byte{1}},
		{Type: TypeCMMIC, Length: 4, Value: []byte{1, 2, 3, 4}},
	}
	result, err := ValidateCM(nodes, Secret("x"))
	if err == nil {
		t.Fatal("expected strict error")
	}
	if result.Status != StatusWrongLength || result.ActualLength != 4 {
		t.Fatalf("result = %+v", result)
	}
}

func TestValidateDuplicateUsesLastOccurrence(t *testing.T) {
	secret := Secret("bindocsis_test")
	base := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	correct := ComputeCMMIC(base, secret)

	nodes := []docsis.PlainTLV{
		{Type: 3, Length: 1, Value: []byte{1}},
		{Type: TypeCMMIC, Length: 16, Value: make([]byte, 16)},
		{Type: TypeCMMIC, Length: 16, Value: correct[:]},
	}
	result, err := ValidateCM(nodes, secret)
	if err != nil || result.Status != StatusValid {
		t.Fatalf("result=%+v err=%v", result, err)
	}
}

func TestSecretNeverStringifiesItsContent(t *testing.T) {
	s := Secret("super-secret-value")
	if s.String() == string(s) {
		t.Fatal("Secret.String must not reveal its content")
	}
}
