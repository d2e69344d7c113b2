// Package mic implements the Integrity (MIC) Engine: HMAC-MD5 computation
// and verification for TLV 6 (CM MIC) and TLV 7 (CMTS MIC) over the
// preimages DOCSIS defines for each, grounded on the standard library's
// crypto/hmac and crypto/md5 the way kryptco-style pkcs11 codebases build
// a keyed MAC over an assembled buffer.
package mic

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strconv"

	"github.com/tlvkit/docsis"
	"github.com/tlvkit/docsis/internal/logging"
	"github.com/tlvkit/docsis/tlv"
)

// TypeCMMIC and TypeCMTSMIC are the two TLV numbers the MIC Engine knows
// how to compute and validate.
const (
	TypeCMMIC   byte = 6
	TypeCMTSMIC byte = 7
)

const micLength = 16

// Secret is a shared HMAC key, held opaque by the MIC Engine. It
// deliberately does not implement fmt.Stringer with its content, and its
// GoString/String forms are redacted, so that accidental use in a log
// statement or error message never leaks it.
type Secret []byte

func (Secret) String() string   { return "mic.Secret(REDACTED)" }
func (Secret) GoString() string { return "mic.Secret(REDACTED)" }

// stripType returns nodes with every entry of the given type removed,
// preserving the relative order of the rest.
func stripType(nodes []docsis.PlainTLV, t byte) []docsis.PlainTLV {
	out := make([]docsis.PlainTLV, 0, len(nodes))
	for _, n := range nodes {
		if n.Type != t {
			out = append(out, n)
		}
	}
	return out
}

func lastOccurrence(nodes []docsis.PlainTLV, t byte) (docsis.PlainTLV, bool) {
	found := false
	var last docsis.PlainTLV
	for _, n := range nodes {
		if n.Type == t {
			last = n
			found = true
		}
	}
	return last, found
}

func placeholder(t byte) docsis.PlainTLV {
	return docsis.PlainTLV{Type: t, Length: micLength, Value: make([]byte, micLength)}
}

func hmacMD5(secret Secret, preimage []byte) [micLength]byte {
	mac := hmac.New(md5.New, secret)
	mac.Write(preimage)
	var sum [micLength]byte
	copy(sum[:], mac.Sum(nil))
	return sum
}

// ComputeCMMIC computes the CM MIC (TLV 6) tag over nodes: both TLV 6 and
// TLV 7 are stripped first, the remainder is encoded without a terminator,
// and a zero-filled TLV 6 placeholder is appended before HMAC-MD5 is
// applied. The input nodes are never mutated or reordered.
func ComputeCMMIC(nodes []docsis.PlainTLV, secret Secret) [micLength]byte {
	stripped := stripType(stripType(nodes, TypeCMMIC), TypeCMTSMIC)
	preimage := tlv.Encode(stripped, false)
	preimage = append(preimage, tlv.Encode([]docsis.PlainTLV{placeholder(TypeCMMIC)}, false)...)
	return hmacMD5(secret, preimage)
}

// ComputeCMTSMIC computes the CMTS MIC (TLV 7) tag. TLV 7 is stripped; if
// TLV 6 is absent from the remainder it is computed per ComputeCMMIC and
// appended, since the CMTS MIC preimage always covers a TLV 6 entry.
func ComputeCMTSMIC(nodes []docsis.PlainTLV, secret Secret) [micLength]byte {
	stripped := stripType(nodes, TypeCMTSMIC)
	if _, ok := lastOccurrence(stripped, TypeCMMIC); !ok {
		cmMIC := ComputeCMMIC(nodes, secret)
		stripped = append(stripped, docsis.PlainTLV{Type: TypeCMMIC, Length: micLength, Value: cmMIC[:]})
	}
	preimage := tlv.Encode(stripped, false)
	preimage = append(preimage, tlv.Encode([]docsis.PlainTLV{placeholder(TypeCMTSMIC)}, false)...)
	return hmacMD5(secret, preimage)
}

// Status is the closed set of outcomes [ValidateCM] and [ValidateCMTS] can
// report.
type Status int

const (
	StatusValid Status = iota
	StatusInvalid
	StatusMissing
	StatusWrongLength
	// StatusSkipped means no secret was supplied; validation was not
	// attempted and this is not treated as an error.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	case StatusMissing:
		return "missing"
	case StatusWrongLength:
		return "wrong_length"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result reports the outcome of validating a stored MIC against a
// recomputed one.
type Result struct {
	Status         Status
	StoredHex      string
	ComputedHex    string
	ActualLength   int
	ExpectedLength int
}

// OK reports whether the stored MIC matched.
func (r Result) OK() bool { return r.Status == StatusValid }

// Mode selects how a strict validation failure is reported.
type Mode int

const (
	// ModeStrict returns an error from ValidateCM/ValidateCMTS on an
	// invalid or wrong-length MIC. A missing MIC or a missing secret is
	// reported through the Result alone, with a nil error.
	ModeStrict Mode = iota
	// ModeWarn logs the condition through the configured [logging.Logger]
	// and returns the Result with a nil error.
	ModeWarn
)

type options struct {
	mode   Mode
	logger logging.Logger
}

// Option configures [ValidateCM] and [ValidateCMTS].
type Option func(*options)

// WithMode selects strict or warn behavior. The default is ModeStrict.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithLogger overrides the logger used in ModeWarn. The default is
// [logging.Default] (silent).
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// MicInvalidError is returned by ValidateCM/ValidateCMTS in ModeStrict when the stored
// MIC does not match the recomputed one.
type MicInvalidError struct {
	Type        byte
	StoredHex   string
	ComputedHex string
}

func (e *MicInvalidError) Error() string {
	return "mic: TLV " + hexByte(e.Type) + " mismatch: stored " + e.StoredHex + ", computed " + e.ComputedHex
}

// MicWrongLengthError is returned by ValidateCM/ValidateCMTS in ModeStrict when the
// stored MIC value is not exactly 16 bytes.
type MicWrongLengthError struct {
	Type     byte
	Actual   int
	Expected int
}

func (e *MicWrongLengthError) Error() string {
	return "mic: TLV " + hexByte(e.Type) + " has length " + strconv.Itoa(e.Actual) + ", want " + strconv.Itoa(e.Expected)
}

func hexByte(b byte) string { return hex.EncodeToString([]byte{b}) }

// ValidateCM validates TLV 6 against nodes. Duplicate TLV 6 entries are
// tolerated: the last occurrence is used and a warning is logged
// regardless of mode.
func ValidateCM(nodes []docsis.PlainTLV, secret Secret, opts ...Option) (Result, error) {
	return validate(TypeCMMIC, nodes, secret, opts...)
}

// ValidateCMTS validates TLV 7 against nodes, following the same
// duplicate-tolerance and strict/warn rules as ValidateCM.
func ValidateCMTS(nodes []docsis.PlainTLV, secret Secret, opts ...Option) (Result, error) {
	return validate(TypeCMTSMIC, nodes, secret, opts...)
}

func validate(t byte, nodes []docsis.PlainTLV, secret Secret, opts ...Option) (Result, error) {
	o := options{mode: ModeStrict, logger: logging.Default}
	for _, opt := range opts {
		opt(&o)
	}

	if len(secret) == 0 {
		return Result{Status: StatusSkipped}, nil
	}

	count := 0
	var stored docsis.PlainTLV
	found := false
	for _, n := range nodes {
		if n.Type == t {
			count++
			stored = n
			found = true
		}
	}
	if count > 1 {
		o.logger.Warnf("mic: %d duplicate TLV %d entries, using the last occurrence", count, t)
	}
	if !found {
		return Result{Status: StatusMissing}, nil
	}
	if len(stored.Value) != micLength {
		result := Result{Status: StatusWrongLength, ActualLength: len(stored.Value), ExpectedLength: micLength}
		if o.mode == ModeStrict {
			return result, &MicWrongLengthError{Type: t, Actual: len(stored.Value), Expected: micLength}
		}
		o.logger.Warnf("mic: TLV %d has length %d, want %d", t, len(stored.Value), micLength)
		return result, nil
	}

	var computed [micLength]byte
	if t == TypeCMMIC {
		computed = ComputeCMMIC(nodes, secret)
	} else {
		computed = ComputeCMTSMIC(nodes, secret)
	}

	storedHex := hex.EncodeToString(stored.Value)
	computedHex := hex.EncodeToString(computed[:])

	if !hmac.Equal(stored.Value, computed[:]) {
		result := Result{Status: StatusInvalid, StoredHex: storedHex, ComputedHex: computedHex}
		if o.mode == ModeStrict {
			return result, &MicInvalidError{Type: t, StoredHex: storedHex, ComputedHex: computedHex}
		}
		o.logger.Warnf("mic: TLV %d mismatch: stored %s, computed %s", t, storedHex, computedHex)
		return result, nil
	}

	return Result{Status: StatusValid, StoredHex: storedHex, ComputedHex: computedHex}, nil
}
