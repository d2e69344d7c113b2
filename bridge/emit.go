package bridge

import (
	"encoding/json"

	"github.com/tlvkit/docsis"
	"gopkg.in/yaml.v3"
)

// EmitJSON serializes an enriched tree as an ordered JSON array, preserving
// sibling order at every level.
func EmitJSON(nodes []docsis.EnrichedTLV) ([]byte, error) {
	wire := make([]wireNode, len(nodes))
	for i, n := range nodes {
		wire[i] = toWire(n)
	}
	return json.MarshalIndent(wire, "", "  ")
}

// EmitYAML is EmitJSON's YAML counterpart.
func EmitYAML(nodes []docsis.EnrichedTLV) ([]byte, error) {
	wire := make([]wireNode, len(nodes))
	for i, n := range nodes {
		wire[i] = toWire(n)
	}
	return yaml.Marshal(wire)
}
