package docsis

// ValueKind identifies the semantic type of a TLV's value. The set is
// closed: the Value Converter and the Format Bridge both switch over it
// exhaustively and reject any kind name outside this list.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindBoolean
	KindString
	KindIPv4
	KindIPv6
	KindMACAddress
	KindFrequency
	KindBandwidth
	KindDuration
	KindPercentage
	KindPowerQuarterDB
	KindOID
	KindASN1DER
	KindServiceFlowRef
	KindVendorOUI
	KindMarker
	KindHexString
	KindCompound
	KindBinary
)

// kindNames holds the lowercase snake_case spelling used on the wire (JSON
// "value_type" field) and in diagnostics, in declaration order.
var kindNames = [...]string{
	KindUnknown:        "unknown",
	KindUint8:          "uint8",
	KindUint16:         "uint16",
	KindUint32:         "uint32",
	KindUint64:         "uint64",
	KindInt8:           "int8",
	KindInt16:          "int16",
	KindInt32:          "int32",
	KindBoolean:        "boolean",
	KindString:         "string",
	KindIPv4:           "ipv4",
	KindIPv6:           "ipv6",
	KindMACAddress:     "mac_address",
	KindFrequency:      "frequency",
	KindBandwidth:      "bandwidth",
	KindDuration:       "duration",
	KindPercentage:     "percentage",
	KindPowerQuarterDB: "power_quarter_db",
	KindOID:            "oid",
	KindASN1DER:        "asn1_der",
	KindServiceFlowRef: "service_flow_ref",
	KindVendorOUI:      "vendor_oui",
	KindMarker:         "marker",
	KindHexString:      "hex_string",
	KindCompound:       "compound",
	KindBinary:         "binary",
}

// String returns the lowercase snake_case spelling of k.
func (k ValueKind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// kindByName is the inverse of [ValueKind.String], built once at init.
var kindByName map[string]ValueKind

func init() {
	kindByName = make(map[string]ValueKind, len(kindNames))
	for k, name := range kindNames {
		kindByName[name] = ValueKind(k)
	}
}

// ParseValueKind resolves the wire spelling of a value kind (as found in a
// JSON/YAML "value_type" field) back to a [ValueKind]. It returns false if
// name is not one of the closed set of kinds.
func ParseValueKind(name string) (ValueKind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// AtomicKind reports whether k is decoded as a scalar leaf rather than
// recursed into as a nested TLV stream. Every kind except [KindCompound] is
// atomic.
func (k ValueKind) AtomicKind() bool {
	return k != KindCompound
}
