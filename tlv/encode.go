package tlv

import "github.com/tlvkit/docsis"

// Encode concatenates the wire encoding of nodes in order, each using the
// shortest legal length encoding, optionally followed by a 0xFF
// terminator. Encoding is deterministic: the same input always produces
// the same bytes.
func Encode(nodes []docsis.PlainTLV, terminate bool) []byte {
	size := 0
	for _, n := range nodes {
		size += 1 + lengthFieldSize(n.Length) + n.Length
	}
	if terminate {
		size++
	}

	out := make([]byte, 0, size)
	for _, n := range nodes {
		out = append(out, n.Type)
		out = appendLength(out, n.Length)
		out = append(out, n.Value...)
	}
	if terminate {
		out = append(out, 0xFF)
	}
	return out
}

// lengthFieldSize returns the number of bytes appendLength will emit for
// the given length.
func lengthFieldSize(length int) int {
	switch {
	case length <= 255:
		return 1
	case length <= 65535:
		return 3 // 0x82 + 2 bytes
	default:
		return 5 // 0x84 + 4 bytes
	}
}

// appendLength appends the shortest legal length encoding of length to b.
// 0x81 (one-byte extended length) is accepted on decode for interop but is
// never emitted here, since it collides with the literal [128,255] range.
func appendLength(b []byte, length int) []byte {
	switch {
	case length <= 255:
		return append(b, byte(length))
	case length <= 65535:
		return append(b, extLen2, byte(length>>8), byte(length))
	default:
		return append(b,
			extLen4,
			byte(length>>24), byte(length>>16), byte(length>>8), byte(length))
	}
}
