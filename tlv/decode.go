package tlv

import "github.com/tlvkit/docsis"

// Decode parses a flat, ordered sequence of sibling TLVs from buf starting
// at offset. It stops when it encounters a type-0xFF terminator (which is
// consumed but not returned as a node) or when it runs out of input. The
// second return value is the offset immediately following the consumed
// input: the byte after the terminator, or len(buf) if no terminator was
// present.
//
// Decode never looks inside a node's Value for nested TLVs; that recursion
// is the caller's choice once it knows (via the Spec Registry) whether a
// given type is compound.
func Decode(buf []byte, offset int) ([]docsis.PlainTLV, int, error) {
	var nodes []docsis.PlainTLV
	for offset < len(buf) {
		typ := buf[offset]
		if typ == 0xFF {
			return nodes, offset + 1, nil
		}

		length, next, err := decodeLength(buf, offset+1)
		if err != nil {
			return nil, 0, err
		}

		valueStart := next
		valueEnd := valueStart + length
		if valueEnd > len(buf) {
			return nil, 0, &docsis.OverlongValueError{
				Declared:  length,
				Available: len(buf) - valueStart,
			}
		}

		value := make([]byte, length)
		copy(value, buf[valueStart:valueEnd])
		nodes = append(nodes, docsis.PlainTLV{Type: typ, Length: length, Value: value})
		offset = valueEnd
	}
	return nodes, offset, nil
}

// decodeLength reads the length field starting at offset (the byte right
// after a TLV's type octet) and returns the decoded length and the offset
// of the first value byte.
func decodeLength(buf []byte, offset int) (length int, next int, err error) {
	if offset >= len(buf) {
		return 0, 0, &docsis.TruncatedInputError{AtOffset: offset}
	}
	b := buf[offset]
	offset++

	if b <= 127 {
		return int(b), offset, nil
	}

	var followBytes int
	switch b {
	case extLen1:
		followBytes = 1
	case extLen2:
		followBytes = 2
	case extLen4:
		followBytes = 4
	default:
		// Any other high-bit byte (0x80, 0x83, 0x85..0xFE) is a literal
		// one-byte length in [128, 255], never a length-of-length prefix.
		return int(b), offset, nil
	}

	if offset+followBytes > len(buf) {
		return 0, 0, &docsis.TruncatedInputError{AtOffset: offset}
	}
	length = 0
	for i := 0; i < followBytes; i++ {
		length = length<<8 | int(buf[offset+i])
	}
	return length, offset + followBytes, nil
}
