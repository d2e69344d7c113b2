package enrich

import (
	"testing"

	"github.com/tlvkit/docsis"
)

func TestEnrichAtomicScalar(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 3, Length: 1, Value: []byte{1}}}
	got := Enrich(nodes)
	if len(got) != 1 {
		t.Fatalf("got %d nodes", len(got))
	}
	n := got[0]
	if n.Name != "Network Access Control" || n.ValueKind != docsis.KindBoolean {
		t.Fatalf("n = %+v", n)
	}
	if n.IsCompound() {
		t.Fatal("expected an atomic node")
	}
	if n.FormattedValue != "enabled" {
		t.Fatalf("FormattedValue = %v", n.FormattedValue)
	}
	if n.MetadataSource != docsis.SourceTopLevel {
		t.Fatalf("MetadataSource = %v", n.MetadataSource)
	}
}

func TestEnrichCompound(t *testing.T) {
	// TLV 4 (Class of Service) with sub-TLV 1 (Class ID = 1).
	cosValue := []byte{1, 1, 1}
	nodes := []docsis.PlainTLV{{Type: 4, Length: len(cosValue), Value: cosValue}}
	got := Enrich(nodes)
	n := got[0]
	if !n.IsCompound() {
		t.Fatal("expected a compound node")
	}
	if len(n.SubTLVs) != 1 || n.SubTLVs[0].Name != "Class ID" {
		t.Fatalf("SubTLVs = %+v", n.SubTLVs)
	}
	if n.SubTLVs[0].FormattedValue != uint8(1) {
		t.Fatalf("sub value = %v", n.SubTLVs[0].FormattedValue)
	}
}

func TestEnrichUnknownTLVDowngradesToHexString(t *testing.T) {
	nodes := []docsis.PlainTLV{{Type: 21, Length: 2, Value: []byte{0xAB, 0xCD}}}
	n := Enrich(nodes)[0]
	if n.ValueKind != docsis.KindHexString {
		t.Fatalf("ValueKind = %v", n.ValueKind)
	}
	if n.MetadataSource != docsis.SourceUnknown {
		t.Fatalf("MetadataSource = %v", n.MetadataSource)
	}
	if n.FormattedValue != "AB CD" {
		t.Fatalf("FormattedValue = %v", n.FormattedValue)
	}
}

func TestEnrichLengthMismatchDowngradesToHexString(t *testing.T) {
	// TLV 3 declares a 1-byte boolean; feed it 3 bytes.
	nodes := []docsis.PlainTLV{{Type: 3, Length: 3, Value: []byte{1, 2, 3}}}
	n := Enrich(nodes)[0]
	if n.ValueKind != docsis.KindHexString {
		t.Fatalf("ValueKind = %v", n.ValueKind)
	}
	if n.Name != "Network Access Control" {
		t.Fatal("the name/metadata should still reflect the real spec even though the kind was downgraded")
	}
}

func TestEnrichASN1DERNeverRecursed(t *testing.T) {
	// Bytes that would decode as valid sibling TLVs if parsed as a stream
	// (type 1 length 1 value 0x01, type 2 length 1 value 0x02) but must be
	// kept atomic because TLV 32 is asn1_der.
	derLooking := []byte{1, 1, 0x01, 2, 1, 0x02}
	nodes := []docsis.PlainTLV{{Type: 32, Length: len(derLooking), Value: derLooking}}
	n := Enrich(nodes)[0]
	if n.IsCompound() {
		t.Fatal("asn1_der must never be recursed into, even if it looks TLV-shaped")
	}
	if n.ValueKind != docsis.KindASN1DER {
		t.Fatalf("ValueKind = %v", n.ValueKind)
	}
}

func TestUnenrichRoundTrip(t *testing.T) {
	nodes := []docsis.PlainTLV{
		{Type: 3, Length: 1, Value: []byte{1}},
		{Type: 4, Length: 3, Value: []byte{1, 1, 1}},
	}
	enriched := Enrich(nodes)
	back := Unenrich(enriched)
	if len(back) != len(nodes) {
		t.Fatalf("back = %+v", back)
	}
	for i := range nodes {
		if back[i].Type != nodes[i].Type || string(back[i].Value) != string(nodes[i].Value) {
			t.Fatalf("node %d: got %+v, want %+v", i, back[i], nodes[i])
		}
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	raw := []byte{3, 1, 1, 4, 3, 1, 1, 1, 0xFF}
	if err := VerifyRoundTrip(raw); err != nil {
		t.Fatal(err)
	}
}
