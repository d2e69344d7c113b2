package docsis

import "testing"

func TestValueKindStringRoundTrip(t *testing.T) {
	kinds := []ValueKind{
		KindUint8, KindUint16, KindUint32, KindUint64,
		KindInt8, KindInt16, KindInt32,
		KindBoolean, KindString, KindIPv4, KindIPv6, KindMACAddress,
		KindFrequency, KindBandwidth, KindDuration, KindPercentage,
		KindPowerQuarterDB, KindOID, KindASN1DER, KindServiceFlowRef,
		KindVendorOUI, KindMarker, KindHexString, KindCompound, KindBinary,
	}
	for _, k := range kinds {
		name := k.String()
		got, ok := ParseValueKind(name)
		if !ok {
			t.Fatalf("ParseValueKind(%q) not found", name)
		}
		if got != k {
			t.Fatalf("ParseValueKind(%q) = %v, want %v", name, got, k)
		}
	}
}

func TestParseValueKindUnknown(t *testing.T) {
	if _, ok := ParseValueKind("not_a_kind"); ok {
		t.Fatal("expected ok=false for unknown kind name")
	}
}

func TestAtomicKind(t *testing.T) {
	if KindCompound.AtomicKind() {
		t.Fatal("compound must not be atomic")
	}
	if !KindUint8.AtomicKind() {
		t.Fatal("uint8 must be atomic")
	}
}

func TestEnrichedTLVIsCompound(t *testing.T) {
	leaf := EnrichedTLV{FormattedValue: "1"}
	if leaf.IsCompound() {
		t.Fatal("leaf should not be compound")
	}
	compound := EnrichedTLV{SubTLVs: []EnrichedTLV{{}}}
	if !compound.IsCompound() {
		t.Fatal("node with sub-tlvs should be compound")
	}
}
