package values

import (
	"fmt"
	"strings"

	"github.com/tlvkit/docsis"
)

// boolToHuman follows the DOCSIS convention that a single-byte boolean TLV
// is 1 for true and 0 for false; any other byte value is still decodable
// (treated as true) since some vendors emit non-canonical truthy values,
// but FromHuman always re-emits the canonical 0x01/0x00. The human form is
// the wire vocabulary "enabled"/"disabled", not a bare Go bool.
func boolToHuman(raw []byte) (any, error) {
	if len(raw) != 1 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 1, ActualWidth: len(raw)}
	}
	if raw[0] != 0 {
		return "enabled", nil
	}
	return "disabled", nil
}

// boolFromHuman accepts a native Go bool for callers that build a tree
// programmatically, and case-insensitively accepts the wire spellings
// enabled/disabled, on/off, true/false and 1/0 for callers round-tripping
// through JSON/YAML text.
func boolFromHuman(human any) ([]byte, error) {
	switch v := human.(type) {
	case bool:
		return boolBytes(v), nil
	case string:
		b, ok := parseBoolString(v)
		if !ok {
			return nil, &docsis.HumanFormParseError{Kind: docsis.KindBoolean, Input: v}
		}
		return boolBytes(b), nil
	default:
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindBoolean, Input: fmt.Sprint(human)}
	}
}

func parseBoolString(s string) (b bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled", "on", "true", "1":
		return true, true
	case "disabled", "off", "false", "0":
		return false, true
	default:
		return false, false
	}
}

func boolBytes(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}
