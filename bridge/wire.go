// Package bridge implements the Format Bridge: lossless conversion
// between an enriched TLV tree and its JSON/YAML textual representation,
// using the standard library's encoding/json for JSON and gopkg.in/yaml.v3
// for YAML, the same YAML library the rest of the example pack's config
// loaders depend on.
package bridge

import (
	"encoding/hex"

	"github.com/tlvkit/docsis"
)

// wireNode is the on-the-wire JSON/YAML shape of one enriched TLV: type,
// name and value_type at minimum, then either formatted_value or subtlvs.
// length and raw are optional diagnostic fields, never required on ingest.
type wireNode struct {
	Type           int        `json:"type" yaml:"type"`
	Name           string     `json:"name,omitempty" yaml:"name,omitempty"`
	Description    string     `json:"description,omitempty" yaml:"description,omitempty"`
	ValueType      string     `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	FormattedValue any        `json:"formatted_value,omitempty" yaml:"formatted_value,omitempty"`
	SubTLVs        []wireNode `json:"subtlvs,omitempty" yaml:"subtlvs,omitempty"`
	Length         int        `json:"length,omitempty" yaml:"length,omitempty"`
	Raw            string     `json:"raw,omitempty" yaml:"raw,omitempty"`
}

func toWire(n docsis.EnrichedTLV) wireNode {
	w := wireNode{
		Type:        int(n.Type),
		Name:        n.Name,
		Description: n.Description,
		ValueType:   n.ValueKind.String(),
		Length:      len(n.Raw),
	}
	if len(n.Raw) > 0 {
		w.Raw = hex.EncodeToString(n.Raw)
	}
	if n.IsCompound() {
		w.SubTLVs = make([]wireNode, len(n.SubTLVs))
		for i, sub := range n.SubTLVs {
			w.SubTLVs[i] = toWire(sub)
		}
		return w
	}
	w.FormattedValue = n.FormattedValue
	return w
}

