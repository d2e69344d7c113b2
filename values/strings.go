package values

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tlvkit/docsis"
)

// stringToHuman treats the wire bytes as ASCII/UTF-8 text, verbatim: a
// trailing NUL is part of the value, not padding, since stripping it would
// make from_human(to_human(b)) != b for any string TLV that legitimately
// ends in a NUL byte.
func stringToHuman(raw []byte) (any, error) {
	return string(raw), nil
}

func stringFromHuman(human any, maxLength int) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindString, Input: fmt.Sprint(human)}
	}
	if maxLength != docsis.Unlimited && len(s) > maxLength {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindString, Input: s}
	}
	return []byte(s), nil
}

// hexStringToHuman renders raw bytes as space-separated uppercase octets,
// the textual form used for both the hex_string kind and as the fallback
// diagnostic rendering of binary/asn1_der values.
func hexStringToHuman(raw []byte) (any, error) {
	if len(raw) == 0 {
		return "", nil
	}
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " "), nil
}

func hexStringFromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindHexString, Input: fmt.Sprint(human)}
	}
	s = strings.Join(strings.Fields(s), "")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindHexString, Input: fmt.Sprint(human)}
	}
	return raw, nil
}
