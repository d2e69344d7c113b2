package registry

import "github.com/tlvkit/docsis"

func init() {
	for t, s := range topLevelTable {
		registerTopLevel(t, s)
	}
	for p, ns := range map[byte]map[byte]docsis.Spec{
		4:  classOfServiceSubTLVs,
		5:  modemCapabilitiesSubTLVs,
		15: baselinePrivacySubTLVs,
		20: subscriberManagementSubTLVs,
		22: classifierSubTLVs,
		23: classifierSubTLVs,
		24: serviceFlowSubTLVs,
		25: serviceFlowSubTLVs,
		43: vendorSpecificSubTLVs,
	} {
		registerSubTable(p, ns)
	}
	for t := 200; t <= 254; t++ {
		t := byte(t)
		if _, exists := topLevel[t]; !exists {
			registerTopLevel(t, docsis.Spec{
				Name:              "Vendor Specific Extension",
				Description:       "Reserved vendor-defined TLV range.",
				ValueKind:         docsis.KindBinary,
				MaxLength:         docsis.Unlimited,
				IntroducedVersion: docsis.VersionAny,
			})
		}
	}
}

// topLevelTable holds the root-level TLV definitions. Types not present
// here are resolved by the Enricher to a synthesized "Unknown TLV"
// default, matching the synthesis rule spec.md defines for sub-TLVs.
var topLevelTable = map[byte]docsis.Spec{
	1: {
		Name: "Downstream Frequency", ValueKind: docsis.KindFrequency,
		FixedLength: 4, IntroducedVersion: docsis.Version1_0,
		Description: "Center frequency of the downstream channel the modem should use.",
	},
	2: {
		Name: "Upstream Channel ID", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.Version1_0,
	},
	3: {
		Name: "Network Access Control", ValueKind: docsis.KindBoolean,
		FixedLength: 1, IntroducedVersion: docsis.Version1_0,
		Description: "Whether the modem is permitted to forward traffic onto the network.",
	},
	4: {
		Name: "Class of Service", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
	},
	5: {
		Name: "Modem Capabilities", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
	},
	6: {
		Name: "CM Message Integrity Check", ValueKind: docsis.KindHexString,
		FixedLength: 16, IntroducedVersion: docsis.Version1_0,
		Description: "HMAC-MD5 tag over the config file, keyed by the shared secret.",
	},
	7: {
		Name: "CMTS Message Integrity Check", ValueKind: docsis.KindHexString,
		FixedLength: 16, IntroducedVersion: docsis.Version1_0,
	},
	8: {
		Name: "Vendor ID", ValueKind: docsis.KindVendorOUI,
		FixedLength: 3, IntroducedVersion: docsis.Version1_0,
	},
	9: {
		Name: "Software Upgrade Filename", ValueKind: docsis.KindString,
		MaxLength: 255, IntroducedVersion: docsis.Version1_0,
	},
	10: {
		Name: "SNMP Write-Access Control", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.Version1_0,
		EnumValues: map[int]string{1: "read-write", 2: "read-only"},
	},
	11: {
		Name: "SNMP MIB Object", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
		Description:       "BER-encoded OID/value pair; sub-TLV layout is not standardized per-object.",
	},
	12: {
		Name: "Modem IP Address", ValueKind: docsis.KindIPv4,
		FixedLength: 4, IntroducedVersion: docsis.Version1_0,
	},
	13: {
		Name: "Service Not Available Response", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
	},
	14: {
		Name: "Software Upgrade TFTP Server", ValueKind: docsis.KindIPv4,
		FixedLength: 4, IntroducedVersion: docsis.Version1_0,
	},
	15: {
		Name: "Baseline Privacy Configuration", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
	},
	16: {
		Name: "Maximum Number of CPEs", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.Version1_0,
	},
	17: {
		Name: "Telephone Settlement Option", ValueKind: docsis.KindBoolean,
		FixedLength: 1, IntroducedVersion: docsis.Version1_0,
	},
	18: {
		Name: "Maximum Number of Classifiers", ValueKind: docsis.KindUint16,
		FixedLength: 2, IntroducedVersion: docsis.Version1_1,
	},
	19: {
		Name: "Privacy Enable", ValueKind: docsis.KindBoolean,
		FixedLength: 1, IntroducedVersion: docsis.Version1_1,
	},
	20: {
		Name: "Subscriber Management Control", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	22: {
		Name: "Upstream Packet Classification", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	23: {
		Name: "Downstream Packet Classification", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	24: {
		Name: "Upstream Service Flow", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	25: {
		Name: "Downstream Service Flow", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	28: {
		Name: "Payload Header Suppression", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_1,
	},
	29: {
		Name: "Maximum Upstream Transmit Power", ValueKind: docsis.KindPowerQuarterDB,
		FixedLength: 1, IntroducedVersion: docsis.Version1_1,
	},
	30: {
		Name: "HMAC Digest Key", ValueKind: docsis.KindHexString,
		MaxLength: docsis.Unlimited, IntroducedVersion: docsis.Version2_0,
	},
	32: {
		Name: "Manufacturer Code Verification Certificate", ValueKind: docsis.KindASN1DER,
		MaxLength: docsis.Unlimited, IntroducedVersion: docsis.Version2_0,
		Description: "X.509 certificate, DER-encoded; never parsed as nested TLVs.",
	},
	33: {
		Name: "Co-Signer Code Verification Certificate", ValueKind: docsis.KindASN1DER,
		MaxLength: docsis.Unlimited, IntroducedVersion: docsis.Version2_0,
	},
	36: {
		Name: "SNMPv3 Kickstart", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version2_0,
	},
	37: {
		Name: "CM Certificate", ValueKind: docsis.KindASN1DER,
		MaxLength: docsis.Unlimited, IntroducedVersion: docsis.Version2_0,
	},
	38: {
		Name: "Downstream Channel List", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version3_0,
	},
	41: {
		Name: "Downstream Frequency Override", ValueKind: docsis.KindFrequency,
		FixedLength: 4, IntroducedVersion: docsis.Version3_0,
	},
	43: {
		Name: "Vendor Specific Information", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version1_0,
	},
	44: {
		Name: "CM Attribute Masks", ValueKind: docsis.KindHexString,
		MaxLength: 16, IntroducedVersion: docsis.Version3_0,
	},
	45: {
		Name: "Upstream Drop Classifier Group ID", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.Version3_0,
	},
	50: {
		Name: "Downstream Service Group", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version3_0,
	},
	60: {
		Name: "Extended CMTS MIC Configuration", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version3_0,
	},
	62: {
		// Per the DOCSIS 3.1 OFDM profile open question, the sub-TLV
		// layout is intentionally left empty. A value that does not frame
		// cleanly as a TLV stream falls back to hex_string in the
		// Enricher; a value that does is split into children, each
		// resolved to the "Unknown TLV" hex_string default.
		Name: "OFDM Downstream Profile", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version3_1,
	},
	63: {
		Name: "OFDMA Upstream Profile", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.Version3_1,
	},

	// PacketCable MTA TLVs (64-85). The original material available for
	// this registry did not specify whether MTA generation uses a
	// different MIC preimage rule; the mic package documents the decision
	// to always apply the DOCSIS HMAC-MD5 rule regardless of namespace.
	64: {
		Name: "MTA DNS Server", ValueKind: docsis.KindIPv4,
		FixedLength: 4, IntroducedVersion: docsis.VersionMTA,
	},
	65: {
		Name: "MTA SNMP MIB Object", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.VersionMTA,
	},
	66: {
		Name: "MTA Provisioning Flags", ValueKind: docsis.KindUint32,
		FixedLength: 4, IntroducedVersion: docsis.VersionMTA,
	},
	67: {
		Name: "MTA Syslog Server", ValueKind: docsis.KindIPv4,
		FixedLength: 4, IntroducedVersion: docsis.VersionMTA,
	},
	68: {
		Name: "MTA Event SNMP Notification", ValueKind: docsis.KindCompound,
		SupportsSubTLVs: true, MaxLength: docsis.Unlimited,
		IntroducedVersion: docsis.VersionMTA,
	},
	69: {
		Name: "MTA Kerberos Realm", ValueKind: docsis.KindString,
		MaxLength: docsis.Unlimited, IntroducedVersion: docsis.VersionMTA,
	},
	70: {
		Name: "MTA Service Provider Domain", ValueKind: docsis.KindString,
		MaxLength: 255, IntroducedVersion: docsis.VersionMTA,
	},
	71: {
		Name: "MTA Call Management Server FQDN", ValueKind: docsis.KindString,
		MaxLength: 255, IntroducedVersion: docsis.VersionMTA,
	},
	72: {
		Name: "MTA Call Management Server Priority", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.VersionMTA,
	},
	73: {
		Name: "MTA Provisioning Timer", ValueKind: docsis.KindDuration,
		FixedLength: 2, IntroducedVersion: docsis.VersionMTA,
	},
	80: {
		Name: "MTA Syslog Facility", ValueKind: docsis.KindUint8,
		FixedLength: 1, IntroducedVersion: docsis.VersionMTA,
		EnumValues: map[int]string{16: "local0", 17: "local1", 23: "local7"},
	},
	85: {
		Name: "MTA Configuration File End Marker", ValueKind: docsis.KindMarker,
		FixedLength: 0, IntroducedVersion: docsis.VersionMTA,
	},
}
