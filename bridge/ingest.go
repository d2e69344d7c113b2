package bridge

import (
	"encoding/json"

	"github.com/tlvkit/docsis"
	"github.com/tlvkit/docsis/registry"
	"github.com/tlvkit/docsis/tlv"
	"github.com/tlvkit/docsis/values"
	"gopkg.in/yaml.v3"
)

// IngestJSON parses a JSON document produced by [EmitJSON] (or authored by
// hand) into plain TLV nodes ready for the wire codec.
func IngestJSON(data []byte) ([]docsis.PlainTLV, error) {
	var wire []wireNode
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	return ingestLevel(wire, 0, true)
}

// IngestYAML is IngestJSON's YAML counterpart.
func IngestYAML(data []byte) ([]docsis.PlainTLV, error) {
	var wire []wireNode
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	return ingestLevel(wire, 0, true)
}

func ingestLevel(wire []wireNode, parent byte, topLevel bool) ([]docsis.PlainTLV, error) {
	out := make([]docsis.PlainTLV, len(wire))
	for i, w := range wire {
		n, err := ingestOne(w, parent, topLevel)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func ingestOne(w wireNode, parent byte, topLevel bool) (docsis.PlainTLV, error) {
	t := byte(w.Type)

	if len(w.SubTLVs) > 0 {
		children, err := ingestLevel(w.SubTLVs, t, false)
		if err != nil {
			return docsis.PlainTLV{}, err
		}
		value := tlv.Encode(children, false)
		return docsis.PlainTLV{Type: t, Length: len(value), Value: value}, nil
	}

	kind, maxLength, err := resolveKind(w, t, parent, topLevel)
	if err != nil {
		return docsis.PlainTLV{}, err
	}
	// The diagnostic length field, when present, disambiguates kinds like
	// duration and service_flow_ref that DOCSIS encodes at more than one
	// wire width depending on which sub-TLV carries them.
	if w.Length > 0 && (kind == docsis.KindDuration || kind == docsis.KindServiceFlowRef) {
		maxLength = w.Length
	}

	raw, err := values.FromHuman(kind, w.FormattedValue, maxLength)
	if err != nil {
		return docsis.PlainTLV{}, err
	}
	return docsis.PlainTLV{Type: t, Length: len(raw), Value: raw}, nil
}

// resolveKind implements the Bridge's fallback rule: an explicit
// value_type string is authoritative; only when it is omitted does the
// Bridge consult the Spec Registry for the TLV's declared kind. The
// Bridge never uses the registry to second-guess an explicit value_type,
// and never validates length against the registry either way -- it trusts
// whatever from_human produces.
func resolveKind(w wireNode, t, parent byte, topLevel bool) (docsis.ValueKind, int, error) {
	if w.ValueType != "" {
		kind, ok := docsis.ParseValueKind(w.ValueType)
		if !ok {
			return 0, 0, &UnknownValueKindError{Type: w.Type, ValueType: w.ValueType}
		}
		return kind, docsis.Unlimited, nil
	}

	var spec docsis.Spec
	var ok bool
	if topLevel {
		spec, ok = registry.LookupTopLevel(t)
	} else {
		spec, ok = registry.LookupSub(parent, t)
	}
	if !ok {
		return 0, 0, &UnknownValueKindError{Type: w.Type, ValueType: ""}
	}
	maxLength := docsis.Unlimited
	if spec.FixedLength > 0 {
		maxLength = spec.FixedLength
	}
	return spec.ValueKind, maxLength, nil
}
