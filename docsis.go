// Package docsis implements the core data model for DOCSIS and
// PacketCable/MTA cable-modem configuration files: a Type-Length-Value
// stream carrying network-access policy, class-of-service parameters,
// service flows, SNMP objects, and the two HMAC-MD5 integrity checks that
// gate acceptance of a config file.
//
// Subpackages implement the pipeline stages that operate on the types
// defined here:
//
//   - [github.com/tlvkit/docsis/tlv] decodes and encodes the wire framing.
//   - [github.com/tlvkit/docsis/registry] resolves a (type, parent) pair to
//     a [Spec].
//   - [github.com/tlvkit/docsis/values] converts between wire bytes and
//     human-readable forms for each [ValueKind].
//   - [github.com/tlvkit/docsis/enrich] walks a plain tree into an
//     enriched one and back.
//   - [github.com/tlvkit/docsis/mic] computes and validates the CM/CMTS
//     message integrity checks.
//   - [github.com/tlvkit/docsis/bridge] serializes an enriched tree to and
//     from JSON/YAML.
package docsis

// PlainTLV is the minimum record produced by the wire codec: a type octet,
// the exact length of Value, and the value bytes themselves. Order among
// siblings in a containing slice is significant and is never reordered by
// any operation in this module.
type PlainTLV struct {
	Type   byte
	Length int
	Value  []byte
}

// MetadataSource identifies which half of the [Spec Registry] produced the
// metadata attached to an [EnrichedTLV].
type MetadataSource int

const (
	// SourceUnknown means no registry entry was found and a synthetic
	// default spec was used.
	SourceUnknown MetadataSource = iota
	// SourceTopLevel means the spec came from the top-level TLV table.
	SourceTopLevel
	// SourceSubTLV means the spec came from a per-parent sub-TLV table.
	SourceSubTLV
)

func (s MetadataSource) String() string {
	switch s {
	case SourceTopLevel:
		return "top_level"
	case SourceSubTLV:
		return "sub_tlv"
	default:
		return "unknown"
	}
}

// EnrichedTLV augments a [PlainTLV] with the metadata produced by the Spec
// Registry and the Value Converter. Exactly one of FormattedValue or
// SubTLVs is populated: a node decoded as atomic carries FormattedValue
// with SubTLVs nil, a node decoded as compound carries SubTLVs with
// FormattedValue nil. The raw bytes of the underlying PlainTLV are always
// retained in Raw, so every enriched node carries enough information to
// regenerate the exact input bytes via Unenrich.
type EnrichedTLV struct {
	Type               byte
	Name               string
	Description        string
	IntroducedVersion  string
	ValueKind          ValueKind
	FormattedValue     any
	SubTLVs            []EnrichedTLV
	Raw                []byte
	MetadataSource     MetadataSource
}

// IsCompound reports whether n was enriched as a compound node, i.e. its
// value was parsed as a nested TLV stream rather than converted to a
// scalar human form.
func (n EnrichedTLV) IsCompound() bool {
	return n.SubTLVs != nil
}

// Version identifies a DOCSIS or PacketCable specification revision used to
// gate TLV availability in the registry (SPEC_FULL.md §4, DOCSIS version
// gating).
type Version string

// Known specification versions. Spec entries carry the version in which a
// TLV number was introduced; registry lookups can be filtered against one
// of these.
const (
	Version1_0  Version = "1.0"
	Version1_1  Version = "1.1"
	Version2_0  Version = "2.0"
	Version3_0  Version = "3.0"
	Version3_1  Version = "3.1"
	VersionMTA  Version = "mta"
	VersionAny  Version = ""
)

// Spec is a static registry entry describing one TLV number within a
// namespace (either the top-level namespace or a specific parent's
// sub-TLV namespace).
type Spec struct {
	Name              string
	Description       string
	ValueKind         ValueKind
	MaxLength         int // -1 means unlimited
	FixedLength       int // 0 means not fixed-width
	IntroducedVersion Version
	SupportsSubTLVs   bool
	EnumValues        map[int]string
}

// Unlimited is the sentinel MaxLength value meaning "no declared maximum".
const Unlimited = -1
