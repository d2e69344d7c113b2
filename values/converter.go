// Package values implements the Value Converter: per-[docsis.ValueKind]
// bidirectional conversion between wire bytes and human-readable forms,
// subject to the round-trip law from_human(to_human(b)) == b for every
// legal b of the declared kind.
//
// Converters are grounded on the teacher's per-type BER codecs
// (codello.dev/asn1/ber/types.go: boolCodec, intCodec, oidCodec, ...) but
// operate directly on byte slices rather than a streaming BER reader/writer,
// since DOCSIS TLV values carry no ASN.1 tag/class/constructed framing of
// their own.
package values

import "github.com/tlvkit/docsis"

// ToHuman converts raw wire bytes of the given kind to their human-readable
// form. It returns a *docsis.ValueKindMismatchError if raw's length is
// incompatible with kind's declared width; callers (the Enricher) are
// expected to downgrade to hex_string on that error rather than propagate
// it as a hard failure.
func ToHuman(kind docsis.ValueKind, raw []byte) (any, error) {
	switch kind {
	case docsis.KindUint8, docsis.KindUint16, docsis.KindUint32, docsis.KindUint64:
		return uintToHuman(kind, raw)
	case docsis.KindInt8, docsis.KindInt16, docsis.KindInt32:
		return intToHuman(kind, raw)
	case docsis.KindBoolean:
		return boolToHuman(raw)
	case docsis.KindString:
		return stringToHuman(raw)
	case docsis.KindIPv4:
		return ipv4ToHuman(raw)
	case docsis.KindIPv6:
		return ipv6ToHuman(raw)
	case docsis.KindMACAddress:
		return macToHuman(raw)
	case docsis.KindFrequency:
		return frequencyToHuman(raw)
	case docsis.KindBandwidth:
		return bandwidthToHuman(raw)
	case docsis.KindDuration:
		return durationToHuman(raw)
	case docsis.KindPercentage:
		return percentageToHuman(raw)
	case docsis.KindPowerQuarterDB:
		return powerQuarterDBToHuman(raw)
	case docsis.KindOID:
		return oidToHuman(raw)
	case docsis.KindASN1DER:
		return hexStringToHuman(raw)
	case docsis.KindServiceFlowRef:
		return serviceFlowRefToHuman(raw)
	case docsis.KindVendorOUI:
		return vendorOUIToHuman(raw)
	case docsis.KindMarker:
		return markerToHuman(raw)
	case docsis.KindHexString:
		return hexStringToHuman(raw)
	case docsis.KindBinary:
		return hexStringToHuman(raw)
	case docsis.KindCompound:
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: -1, ActualWidth: len(raw)}
	default:
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: -1, ActualWidth: len(raw)}
	}
}

// FromHuman converts a human-readable form back to exactly the wire bytes
// it would have round-tripped from. maxLength bounds the length of a string
// value and selects the wire width of a duration or service_flow_ref value;
// every other kind takes its width from the kind or from the input itself.
// Pass docsis.Unlimited when there is no declared maximum.
func FromHuman(kind docsis.ValueKind, human any, maxLength int) ([]byte, error) {
	switch kind {
	case docsis.KindUint8, docsis.KindUint16, docsis.KindUint32, docsis.KindUint64:
		return uintFromHuman(kind, human)
	case docsis.KindInt8, docsis.KindInt16, docsis.KindInt32:
		return intFromHuman(kind, human)
	case docsis.KindBoolean:
		return boolFromHuman(human)
	case docsis.KindString:
		return stringFromHuman(human, maxLength)
	case docsis.KindIPv4:
		return ipv4FromHuman(human)
	case docsis.KindIPv6:
		return ipv6FromHuman(human)
	case docsis.KindMACAddress:
		return macFromHuman(human)
	case docsis.KindFrequency:
		return frequencyFromHuman(human)
	case docsis.KindBandwidth:
		return bandwidthFromHuman(human)
	case docsis.KindDuration:
		return durationFromHuman(human, maxLength)
	case docsis.KindPercentage:
		return percentageFromHuman(human)
	case docsis.KindPowerQuarterDB:
		return powerQuarterDBFromHuman(human)
	case docsis.KindOID:
		return oidFromHuman(human)
	case docsis.KindASN1DER:
		return hexStringFromHuman(human)
	case docsis.KindServiceFlowRef:
		return serviceFlowRefFromHuman(human, maxLength)
	case docsis.KindVendorOUI:
		return vendorOUIFromHuman(human)
	case docsis.KindMarker:
		return markerFromHuman(human)
	case docsis.KindHexString:
		return hexStringFromHuman(human)
	case docsis.KindBinary:
		return hexStringFromHuman(human)
	default:
		return nil, &docsis.HumanFormParseError{Kind: kind, Input: stringify(human)}
	}
}

func stringify(human any) string {
	if s, ok := human.(string); ok {
		return s
	}
	return ""
}
