package bridge

import "strconv"

// UnknownValueKindError indicates an ingest document named a value_type
// string outside the closed ValueKind set, or omitted value_type for a TLV
// the Spec Registry has no entry for (ValueType is then empty).
type UnknownValueKindError struct {
	Type      int
	ValueType string
}

func (e *UnknownValueKindError) Error() string {
	return "bridge: TLV " + strconv.Itoa(e.Type) + " has unrecognized value_type " + strconv.Quote(e.ValueType)
}
