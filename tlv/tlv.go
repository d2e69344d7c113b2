// Package tlv implements the wire framing for DOCSIS/PacketCable
// Type-Length-Value streams: one type octet, a variable-width length, and
// exactly length value octets, optionally terminated by a 0xFF marker.
//
// Unlike ASN.1 BER/DER, a DOCSIS TLV type is a plain byte with no
// class/tag/constructed bit-packing, and the codec itself never recurses
// into a value's bytes as a nested TLV stream — that decision belongs to
// the enrichment layer, which knows from the Spec Registry whether a given
// TLV's value is compound. This package only ever produces a flat,
// ordered list of siblings for whatever byte range it is given.
package tlv

import "github.com/tlvkit/docsis"

// extended-length prefix bytes. Only these three values are interpreted as
// length-of-length indicators; every other byte with the high bit set
// (0x80, 0x83, 0x85..0xFE) is a literal one-byte length in [128, 255].
const (
	extLen1 = 0x81
	extLen2 = 0x82
	extLen4 = 0x84
)

// Node is an alias for the shared plain TLV record, kept local for
// readability within this package.
type Node = docsis.PlainTLV
