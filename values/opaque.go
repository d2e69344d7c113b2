package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvkit/docsis"
)

// serviceFlowRefToHuman renders a service flow reference (or ID, at whatever
// width the enclosing sub-TLV declares) as a plain decimal string. Widths of
// 1-8 bytes are accepted since the same kind is reused across references
// and the wider identifier fields.
func serviceFlowRefToHuman(raw []byte) (any, error) {
	if len(raw) == 0 || len(raw) > 8 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 2, ActualWidth: len(raw)}
	}
	return strconv.FormatUint(readUint(raw), 10), nil
}

func serviceFlowRefFromHuman(human any, maxLength int) ([]byte, error) {
	v, err := toUint64(human)
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindServiceFlowRef, Input: fmt.Sprint(human)}
	}
	width := maxLength
	if width == docsis.Unlimited || width <= 0 {
		width = 2
	}
	return writeUint(v, width), nil
}

// vendorOUIToHuman renders a 3-byte IEEE OUI as colon-separated hex octets,
// e.g. "00:10:95".
func vendorOUIToHuman(raw []byte) (any, error) {
	if len(raw) != 3 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 3, ActualWidth: len(raw)}
	}
	return fmt.Sprintf("%02X:%02X:%02X", raw[0], raw[1], raw[2]), nil
}

func vendorOUIFromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindVendorOUI, Input: fmt.Sprint(human)}
	}
	hexOnly := strings.NewReplacer(":", "", "-", "").Replace(s)
	if len(hexOnly) != 6 {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindVendorOUI, Input: s}
	}
	raw := make([]byte, 3)
	for i := 0; i < 3; i++ {
		b, err := strconv.ParseUint(hexOnly[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, &docsis.HumanFormParseError{Kind: docsis.KindVendorOUI, Input: s}
		}
		raw[i] = byte(b)
	}
	return raw, nil
}

// markerToHuman represents a zero-length sentinel TLV whose mere presence
// is the signal it carries; it has no content to convert.
func markerToHuman(raw []byte) (any, error) {
	if len(raw) != 0 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 0, ActualWidth: len(raw)}
	}
	return "present", nil
}

func markerFromHuman(any) ([]byte, error) {
	return []byte{}, nil
}
