package docsis

import "strconv"

// TruncatedInputError indicates the decoder ran out of bytes mid-field.
type TruncatedInputError struct {
	AtOffset int
}

func (e *TruncatedInputError) Error() string {
	return "docsis: truncated input at offset " + strconv.Itoa(e.AtOffset)
}

// InvalidLengthEncodingError indicates an extended-length prefix with an
// unrecognized number of follow bytes.
type InvalidLengthEncodingError struct {
	AtOffset int
}

func (e *InvalidLengthEncodingError) Error() string {
	return "docsis: invalid length encoding at offset " + strconv.Itoa(e.AtOffset)
}

// OverlongValueError indicates a declared length that exceeds the
// remaining input.
type OverlongValueError struct {
	Declared  int
	Available int
}

func (e *OverlongValueError) Error() string {
	return "docsis: declared length " + strconv.Itoa(e.Declared) +
		" exceeds available " + strconv.Itoa(e.Available) + " bytes"
}

// ValueKindMismatchError indicates a converter could not represent a value
// at its declared kind because the wire width did not match. The Enricher
// handles this by downgrading the node to hex_string rather than failing;
// the Value Converter only reports it.
type ValueKindMismatchError struct {
	Type          byte
	ExpectedWidth int
	ActualWidth   int
}

func (e *ValueKindMismatchError) Error() string {
	return "docsis: TLV " + strconv.Itoa(int(e.Type)) + " expected width " +
		strconv.Itoa(e.ExpectedWidth) + ", got " + strconv.Itoa(e.ActualWidth)
}

// HumanFormParseError indicates from_human could not recognize the
// supplied human-readable input.
type HumanFormParseError struct {
	Kind  ValueKind
	Input string
}

func (e *HumanFormParseError) Error() string {
	return "docsis: cannot parse " + e.Kind.String() + " value " + strconv.Quote(e.Input)
}

// SyntaxError wraps a structural decoding error with the byte offset and
// surrounding TLV type at which it occurred, grounded on the teacher's
// tlv.SyntaxError.
type SyntaxError struct {
	Err        error
	ByteOffset int
	Type       byte
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	s := "docsis: syntax error in TLV " + strconv.Itoa(int(e.Type)) +
		" at offset " + strconv.Itoa(e.ByteOffset)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
