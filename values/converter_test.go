package values

import (
	"reflect"
	"testing"

	"github.com/tlvkit/docsis"
)

func roundTrip(t *testing.T, kind docsis.ValueKind, raw []byte, maxLength int) {
	t.Helper()
	human, err := ToHuman(kind, raw)
	if err != nil {
		t.Fatalf("ToHuman(%v, % X): %v", kind, raw, err)
	}
	back, err := FromHuman(kind, human, maxLength)
	if err != nil {
		t.Fatalf("FromHuman(%v, %v): %v", kind, human, err)
	}
	if !reflect.DeepEqual(back, raw) {
		t.Fatalf("round trip mismatch: % X -> %v -> % X", raw, human, back)
	}
}

func TestRoundTrips(t *testing.T) {
	cases := []struct {
		kind      docsis.ValueKind
		raw       []byte
		maxLength int
	}{
		{docsis.KindUint8, []byte{7}, 1},
		{docsis.KindUint16, []byte{0x03, 0xE8}, 2},
		{docsis.KindUint32, []byte{0x00, 0x0F, 0x42, 0x40}, 4},
		{docsis.KindUint64, []byte{0, 0, 0, 0, 0, 0, 0, 1}, 8},
		{docsis.KindInt8, []byte{0xFF}, 1},
		{docsis.KindInt16, []byte{0xFF, 0xFF}, 2},
		{docsis.KindInt32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 4},
		{docsis.KindBoolean, []byte{1}, 1},
		{docsis.KindBoolean, []byte{0}, 1},
		{docsis.KindString, []byte("hello"), docsis.Unlimited},
		{docsis.KindIPv4, []byte{10, 0, 0, 1}, 4},
		{docsis.KindIPv6, []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 16},
		{docsis.KindMACAddress, []byte{0x00, 0x10, 0x95, 0x11, 0x22, 0x33}, 6},
		{docsis.KindFrequency, []byte{0x23, 0x33, 0xEB, 0xF8}, 4},
		{docsis.KindBandwidth, []byte{0x00, 0x0F, 0x42, 0x40}, 4},
		{docsis.KindDuration, []byte{0x00, 0x00, 0x00, 0x1E}, 4},
		{docsis.KindDuration, []byte{0x00, 0x1E}, 2},
		{docsis.KindPercentage, []byte{50}, 1},
		{docsis.KindPowerQuarterDB, []byte{24}, 1},
		{docsis.KindOID, []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x09}, docsis.Unlimited},
		{docsis.KindVendorOUI, []byte{0x00, 0x10, 0x95}, 3},
		{docsis.KindMarker, []byte{}, 0},
		{docsis.KindHexString, []byte{0xDE, 0xAD, 0xBE, 0xEF}, docsis.Unlimited},
		{docsis.KindBinary, []byte{0x01, 0x02, 0x03}, docsis.Unlimited},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			roundTrip(t, c.kind, c.raw, c.maxLength)
		})
	}
}

func TestFrequencyScalesToMHz(t *testing.T) {
	human, err := ToHuman(docsis.KindFrequency, []byte{0x23, 0x39, 0xF1, 0xC0})
	if err != nil {
		t.Fatal(err)
	}
	if human != "591 MHz" {
		t.Fatalf("human = %v", human)
	}
	back, err := FromHuman(docsis.KindFrequency, human, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, []byte{0x23, 0x39, 0xF1, 0xC0}) {
		t.Fatalf("back = % X", back)
	}
}

func TestBandwidthScalesToMbps(t *testing.T) {
	human, err := ToHuman(docsis.KindBandwidth, []byte{0x05, 0xF5, 0xE1, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if human != "100 Mbps" {
		t.Fatalf("human = %v", human)
	}
}

func TestDurationScalesToNamedUnits(t *testing.T) {
	human, err := ToHuman(docsis.KindDuration, []byte{0x00, 0x00, 0x0E, 0x10})
	if err != nil {
		t.Fatal(err)
	}
	if human != "1 hours" {
		t.Fatalf("human = %v", human)
	}
	human, err = ToHuman(docsis.KindDuration, []byte{0x00, 0x1E})
	if err != nil {
		t.Fatal(err)
	}
	if human != "30 seconds" {
		t.Fatalf("human = %v", human)
	}
}

func TestBooleanHumanFormIsEnabledDisabled(t *testing.T) {
	human, err := ToHuman(docsis.KindBoolean, []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if human != "enabled" {
		t.Fatalf("human = %v", human)
	}
	for _, alias := range []string{"on", "ON", "true", "1", "enabled"} {
		back, err := FromHuman(docsis.KindBoolean, alias, 1)
		if err != nil || back[0] != 1 {
			t.Fatalf("alias %q: back = %v, err = %v", alias, back, err)
		}
	}
	for _, alias := range []string{"off", "false", "0", "disabled"} {
		back, err := FromHuman(docsis.KindBoolean, alias, 1)
		if err != nil || back[0] != 0 {
			t.Fatalf("alias %q: back = %v, err = %v", alias, back, err)
		}
	}
}

func TestServiceFlowRefRoundTrip(t *testing.T) {
	raw := []byte{0x00, 0x01}
	human, err := ToHuman(docsis.KindServiceFlowRef, raw)
	if err != nil {
		t.Fatal(err)
	}
	if human != "1" {
		t.Fatalf("human = %v", human)
	}
	back, err := FromHuman(docsis.KindServiceFlowRef, human, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, raw) {
		t.Fatalf("back = % X", back)
	}
}

func TestOIDHumanForm(t *testing.T) {
	raw := []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x09}
	human, err := ToHuman(docsis.KindOID, raw)
	if err != nil {
		t.Fatal(err)
	}
	if human != "1.3.6.1.4.1.9" {
		t.Fatalf("human = %v", human)
	}
}

func TestUintMismatchDowngradable(t *testing.T) {
	_, err := ToHuman(docsis.KindUint16, []byte{1})
	if _, ok := err.(*docsis.ValueKindMismatchError); !ok {
		t.Fatalf("error %v is not a ValueKindMismatchError", err)
	}
}

func TestPercentageRejectsOutOfRange(t *testing.T) {
	if _, err := ToHuman(docsis.KindPercentage, []byte{101}); err == nil {
		t.Fatal("expected error for percentage > 100")
	}
	if _, err := FromHuman(docsis.KindPercentage, 150, 1); err == nil {
		t.Fatal("expected error for percentage > 100")
	}
}

func TestMarkerAlwaysEmptyRegardlessOfInput(t *testing.T) {
	raw, err := FromHuman(docsis.KindMarker, "anything", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 0 {
		t.Fatalf("raw = % X", raw)
	}
}
