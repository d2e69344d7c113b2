package values

import (
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/tlvkit/docsis"
)

func ipv4ToHuman(raw []byte) (any, error) {
	if len(raw) != 4 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 4, ActualWidth: len(raw)}
	}
	return net.IP(raw).String(), nil
}

func ipv4FromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindIPv4, Input: fmt.Sprint(human)}
	}
	ip := net.ParseIP(s)
	v4 := ip.To4()
	if v4 == nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindIPv4, Input: s}
	}
	return []byte(v4), nil
}

func ipv6ToHuman(raw []byte) (any, error) {
	if len(raw) != 16 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 16, ActualWidth: len(raw)}
	}
	return net.IP(raw).String(), nil
}

func ipv6FromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindIPv6, Input: fmt.Sprint(human)}
	}
	ip := net.ParseIP(s)
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindIPv6, Input: s}
	}
	return []byte(v6), nil
}

func macToHuman(raw []byte) (any, error) {
	if len(raw) != 6 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: 6, ActualWidth: len(raw)}
	}
	return net.HardwareAddr(raw).String(), nil
}

// macFromHuman accepts net.ParseMAC's colon and dash forms, and also falls
// back to bare 12-digit hex (no separators) for input that didn't come
// through net's formatting.
func macFromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindMACAddress, Input: fmt.Sprint(human)}
	}
	if hw, err := net.ParseMAC(s); err == nil && len(hw) == 6 {
		return []byte(hw), nil
	}
	raw, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil || len(raw) != 6 {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindMACAddress, Input: s}
	}
	return raw, nil
}
