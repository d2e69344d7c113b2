package registry

import "github.com/tlvkit/docsis"

// classOfServiceSubTLVs is the sub-TLV namespace under top-level TLV 4
// (Class of Service).
var classOfServiceSubTLVs = map[byte]docsis.Spec{
	1: {Name: "Class ID", ValueKind: docsis.KindUint8, FixedLength: 1},
	2: {Name: "Maximum Downstream Rate", ValueKind: docsis.KindBandwidth, FixedLength: 4},
	3: {Name: "Maximum Upstream Rate", ValueKind: docsis.KindBandwidth, FixedLength: 4},
	4: {Name: "Upstream Channel Priority", ValueKind: docsis.KindUint8, FixedLength: 1},
	5: {Name: "Guaranteed Minimum Upstream Rate", ValueKind: docsis.KindBandwidth, FixedLength: 4},
	6: {Name: "Maximum Upstream Channel Burst", ValueKind: docsis.KindUint16, FixedLength: 2},
	7: {Name: "Class of Service Privacy Enable", ValueKind: docsis.KindBoolean, FixedLength: 1},
}

// modemCapabilitiesSubTLVs is the sub-TLV namespace under top-level TLV 5
// (Modem Capabilities).
var modemCapabilitiesSubTLVs = map[byte]docsis.Spec{
	1: {Name: "Concatenation Support", ValueKind: docsis.KindBoolean, FixedLength: 1},
	2: {Name: "DOCSIS Version", ValueKind: docsis.KindUint8, FixedLength: 1,
		EnumValues: map[int]string{1: "1.0", 2: "1.1", 3: "2.0", 4: "3.0", 5: "3.1"}},
	3: {Name: "Fragmentation Support", ValueKind: docsis.KindBoolean, FixedLength: 1},
	4: {Name: "Payload Header Suppression Support", ValueKind: docsis.KindBoolean, FixedLength: 1},
	5: {Name: "IGMP Support", ValueKind: docsis.KindBoolean, FixedLength: 1},
	6: {Name: "Privacy Support", ValueKind: docsis.KindUint8, FixedLength: 1},
	7: {Name: "Download Protocol Support", ValueKind: docsis.KindUint8, FixedLength: 1},
	8: {Name: "Transmit Equalizer Taps per Symbol", ValueKind: docsis.KindUint8, FixedLength: 1},
	9: {Name: "Number of Transmit Equalizer Taps", ValueKind: docsis.KindUint8, FixedLength: 1},
	10: {Name: "DCC Support", ValueKind: docsis.KindBoolean, FixedLength: 1},
	11: {Name: "Maximum Upstream Transmit Power Adjustment", ValueKind: docsis.KindPowerQuarterDB, FixedLength: 1},
}

// baselinePrivacySubTLVs is the sub-TLV namespace under top-level TLV 15
// (Baseline Privacy Configuration).
var baselinePrivacySubTLVs = map[byte]docsis.Spec{
	1: {Name: "Authorize Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	2: {Name: "Reauthorize Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	3: {Name: "Authorization Grace Time", ValueKind: docsis.KindDuration, FixedLength: 4},
	4: {Name: "Operational Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	5: {Name: "Rekey Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	6: {Name: "TEK Grace Time", ValueKind: docsis.KindDuration, FixedLength: 4},
	7: {Name: "Authorize Reject Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	8: {Name: "SA Map Wait Timeout", ValueKind: docsis.KindDuration, FixedLength: 4},
	9: {Name: "SA Map Max Retries", ValueKind: docsis.KindUint8, FixedLength: 1},
}

// subscriberManagementSubTLVs is the sub-TLV namespace under top-level TLV
// 20 (Subscriber Management Control).
var subscriberManagementSubTLVs = map[byte]docsis.Spec{
	1: {Name: "Subscriber Management Enable", ValueKind: docsis.KindBoolean, FixedLength: 1},
	2: {Name: "Subscriber Management Filter Group", ValueKind: docsis.KindUint32, FixedLength: 4},
	3: {Name: "Bandwidth Utilization Alarm Threshold", ValueKind: docsis.KindPercentage, FixedLength: 1},
}

// classifierSubTLVs is the shared sub-TLV namespace under top-level TLVs
// 22 and 23 (Upstream/Downstream Packet Classification). Both directions
// use the same classifier encoding.
var classifierSubTLVs = map[byte]docsis.Spec{
	1: {Name: "Classifier Reference", ValueKind: docsis.KindUint8, FixedLength: 1},
	2: {Name: "Classifier ID", ValueKind: docsis.KindUint16, FixedLength: 2},
	3: {Name: "Service Flow Reference", ValueKind: docsis.KindServiceFlowRef, FixedLength: 2},
	4: {Name: "Service Flow ID", ValueKind: docsis.KindUint32, FixedLength: 4},
	5: {Name: "Rule Priority", ValueKind: docsis.KindUint8, FixedLength: 1},
	6: {Name: "Activation State", ValueKind: docsis.KindBoolean, FixedLength: 1},
	7: {Name: "Dynamic Service Change Action", ValueKind: docsis.KindUint8, FixedLength: 1,
		EnumValues: map[int]string{0: "add", 1: "replace", 2: "delete"}},
	9: {Name: "IP Classifier", ValueKind: docsis.KindCompound, SupportsSubTLVs: true, MaxLength: docsis.Unlimited},
}

// serviceFlowSubTLVs is the shared sub-TLV namespace under top-level TLVs
// 24 and 25 (Upstream/Downstream Service Flow).
var serviceFlowSubTLVs = map[byte]docsis.Spec{
	1: {Name: "Service Flow Reference", ValueKind: docsis.KindUint16, FixedLength: 2},
	2: {Name: "Service Flow Identifier", ValueKind: docsis.KindUint32, FixedLength: 4},
	3: {Name: "Service Class Name", ValueKind: docsis.KindString, MaxLength: 16},
	4: {Name: "Error Encodings", ValueKind: docsis.KindCompound, SupportsSubTLVs: true, MaxLength: docsis.Unlimited},
	6: {Name: "QoS Parameter Set Type", ValueKind: docsis.KindUint8, FixedLength: 1},
	7: {Name: "Traffic Priority", ValueKind: docsis.KindUint8, FixedLength: 1},
	8: {Name: "Maximum Sustained Traffic Rate", ValueKind: docsis.KindBandwidth, FixedLength: 4},
	9: {Name: "Maximum Traffic Burst", ValueKind: docsis.KindUint32, FixedLength: 4},
	10: {Name: "Minimum Reserved Traffic Rate", ValueKind: docsis.KindBandwidth, FixedLength: 4},
	11: {Name: "Minimum Reserved Packet Size", ValueKind: docsis.KindUint16, FixedLength: 2},
	12: {Name: "Active QoS Timeout", ValueKind: docsis.KindDuration, FixedLength: 2},
	13: {Name: "Admitted QoS Timeout", ValueKind: docsis.KindDuration, FixedLength: 2},
	16: {Name: "Maximum Concatenated Burst", ValueKind: docsis.KindUint16, FixedLength: 2},
	17: {Name: "Scheduling Type", ValueKind: docsis.KindUint8, FixedLength: 1,
		EnumValues: map[int]string{2: "best-effort", 3: "non-real-time-polling", 4: "real-time-polling", 6: "unsolicited-grant"}},
	19: {Name: "Nominal Polling Interval", ValueKind: docsis.KindUint32, FixedLength: 4},
}

// vendorSpecificSubTLVs is the sub-TLV namespace under top-level TLV 43
// (Vendor Specific Information).
var vendorSpecificSubTLVs = map[byte]docsis.Spec{
	8: {Name: "Vendor ID", ValueKind: docsis.KindVendorOUI, FixedLength: 3},
	9: {Name: "Vendor Extension Present", ValueKind: docsis.KindMarker, FixedLength: 0},
}
