package values

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvkit/docsis"
	"github.com/tlvkit/docsis/internal/vlq"
)

// oidToHuman decodes the wire form of the oid kind: the ASN.1 DER content
// octets of an OBJECT IDENTIFIER (the first two arcs packed as 40*X+Y,
// remaining arcs as base-128 VLQs), into dotted-decimal human form, e.g.
// "1.3.6.1.4.1.9".
func oidToHuman(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: -1, ActualWidth: 0}
	}
	r := bytes.NewReader(raw)
	first, err := vlq.Read[uint64](r)
	if err != nil {
		return nil, &docsis.ValueKindMismatchError{ExpectedWidth: -1, ActualWidth: len(raw)}
	}
	// X is 0, 1 or 2, and only X = 2 allows Y >= 40.
	x, y := first/40, first%40
	if x > 2 {
		x, y = 2, first-80
	}
	arcs := []uint64{x, y}
	for r.Len() > 0 {
		arc, err := vlq.Read[uint64](r)
		if err != nil {
			return nil, &docsis.ValueKindMismatchError{ExpectedWidth: -1, ActualWidth: len(raw)}
		}
		arcs = append(arcs, arc)
	}
	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	return strings.Join(parts, "."), nil
}

func oidFromHuman(human any) ([]byte, error) {
	s, ok := human.(string)
	if !ok {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindOID, Input: fmt.Sprint(human)}
	}
	fields := strings.Split(s, ".")
	if len(fields) < 2 {
		return nil, &docsis.HumanFormParseError{Kind: docsis.KindOID, Input: s}
	}
	arcs := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, &docsis.HumanFormParseError{Kind: docsis.KindOID, Input: s}
		}
		arcs[i] = n
	}
	var buf bytes.Buffer
	if _, err := vlq.Write(&buf, arcs[0]*40+arcs[1]); err != nil {
		return nil, err
	}
	for _, a := range arcs[2:] {
		if _, err := vlq.Write(&buf, a); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
