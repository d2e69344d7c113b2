// Package enrich implements the Enricher and Unenricher: the pipeline
// stage that walks a flat [docsis.PlainTLV] tree into an annotated
// [docsis.EnrichedTLV] tree (attaching registry metadata and a
// human-readable FormattedValue to every node) and back.
//
// Two safety rules govern the walk:
//
//   - Length-mismatch downgrade: if a node's declared kind doesn't fit its
//     actual wire width, the node is re-labeled hex_string rather than
//     failing the whole walk.
//   - ASN.1 DER atomicity: a node whose kind is asn1_der is never
//     recursed into as nested TLVs, even if its bytes happen to look like
//     a valid TLV stream.
package enrich

import (
	"bytes"
	"fmt"

	"github.com/tlvkit/docsis"
	"github.com/tlvkit/docsis/registry"
	"github.com/tlvkit/docsis/tlv"
	"github.com/tlvkit/docsis/values"
)

// Enrich walks a top-level sequence of plain TLVs into their enriched form.
func Enrich(nodes []docsis.PlainTLV) []docsis.EnrichedTLV {
	return enrichLevel(nodes, 0, true)
}

func enrichLevel(nodes []docsis.PlainTLV, parent byte, topLevel bool) []docsis.EnrichedTLV {
	out := make([]docsis.EnrichedTLV, len(nodes))
	for i, n := range nodes {
		out[i] = enrichOne(n, parent, topLevel)
	}
	return out
}

func lookup(t, parent byte, topLevel bool) (docsis.Spec, docsis.MetadataSource) {
	if topLevel {
		if s, ok := registry.LookupTopLevel(t); ok {
			return s, docsis.SourceTopLevel
		}
	} else if s, ok := registry.LookupSub(parent, t); ok {
		return s, docsis.SourceSubTLV
	}
	return docsis.Spec{
		Name:        "Unknown TLV",
		Description: "No registry entry found for this TLV number.",
		ValueKind:   docsis.KindHexString,
		MaxLength:   docsis.Unlimited,
	}, docsis.SourceUnknown
}

func enrichOne(n docsis.PlainTLV, parent byte, topLevel bool) docsis.EnrichedTLV {
	spec, source := lookup(n.Type, parent, topLevel)

	enriched := docsis.EnrichedTLV{
		Type:              n.Type,
		Name:              spec.Name,
		Description:       spec.Description,
		IntroducedVersion: string(spec.IntroducedVersion),
		ValueKind:         spec.ValueKind,
		Raw:               append([]byte(nil), n.Value...),
		MetadataSource:    source,
	}

	// asn1_der is atomic by rule, regardless of SupportsSubTLVs: a DER
	// blob can incidentally parse as a TLV stream and must never be
	// descended into.
	if spec.ValueKind != docsis.KindASN1DER && spec.SupportsSubTLVs {
		if sub, next, err := tlv.Decode(n.Value, 0); err == nil && next == len(n.Value) && bytes.Equal(tlv.Encode(sub, false), n.Value) {
			enriched.SubTLVs = enrichLevel(sub, n.Type, false)
			return enriched
		}
		// The value either doesn't decode cleanly as a sub-TLV stream, or
		// decodes using a non-canonical length encoding that wouldn't
		// re-encode byte-exact (e.g. an 0x81 one-byte extended length
		// where a plain short length would do). Either way recursing
		// would break the round trip, so this is a hard precondition on
		// the compound branch, not something to repair after the fact.
		enriched.ValueKind = docsis.KindHexString
		enriched.FormattedValue = mustHex(n.Value)
		return enriched
	}

	formatted, err := values.ToHuman(enriched.ValueKind, n.Value)
	if err != nil {
		enriched.ValueKind = docsis.KindHexString
		formatted = mustHex(n.Value)
	}
	enriched.FormattedValue = formatted
	return enriched
}

func mustHex(raw []byte) any {
	v, _ := values.ToHuman(docsis.KindHexString, raw)
	return v
}

// Unenrich reverses Enrich, regenerating the wire bytes of each node from
// its FormattedValue (for an edited tree) or recursively from its SubTLVs
// (for a compound node).
func Unenrich(nodes []docsis.EnrichedTLV) []docsis.PlainTLV {
	out := make([]docsis.PlainTLV, len(nodes))
	for i, n := range nodes {
		out[i] = unenrichOne(n)
	}
	return out
}

func unenrichOne(n docsis.EnrichedTLV) docsis.PlainTLV {
	if n.IsCompound() {
		subNodes := Unenrich(n.SubTLVs)
		value := tlv.Encode(subNodes, false)
		return docsis.PlainTLV{Type: n.Type, Length: len(value), Value: value}
	}

	widthHint := docsis.Unlimited
	if n.Raw != nil {
		widthHint = len(n.Raw)
	}
	raw, err := values.FromHuman(n.ValueKind, n.FormattedValue, widthHint)
	if err != nil {
		// Not expected for a tree this package itself produced, but an
		// edited FormattedValue from the Bridge can be malformed; fall
		// back to whatever wire bytes were last known good.
		raw = n.Raw
	}
	return docsis.PlainTLV{Type: n.Type, Length: len(raw), Value: raw}
}

// VerifyRoundTrip decodes raw, enriches and unenriches it, and re-encodes
// the result, reporting an error if the regenerated bytes don't match the
// consumed portion of raw exactly. It is a diagnostic helper, not part of
// the core pipeline contract.
func VerifyRoundTrip(raw []byte) error {
	nodes, next, err := tlv.Decode(raw, 0)
	if err != nil {
		return fmt.Errorf("enrich: decode: %w", err)
	}
	// A final 0xFF is the terminator only if the bytes before it decode on
	// their own; otherwise it is the last byte of the last value.
	terminated := false
	if next > 0 && raw[next-1] == 0xFF {
		_, bodyNext, bodyErr := tlv.Decode(raw[:next-1], 0)
		terminated = bodyErr == nil && bodyNext == next-1
	}

	enriched := Enrich(nodes)
	back := Unenrich(enriched)
	reencoded := tlv.Encode(back, terminated)

	if !bytes.Equal(reencoded, raw[:next]) {
		return fmt.Errorf("enrich: round trip mismatch: got % X, want % X", reencoded, raw[:next])
	}
	return nil
}
