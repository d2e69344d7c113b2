package values

import (
	"fmt"
	"strconv"
)

// toUint64 and toInt64 accept the numeric shapes that reach a converter
// from two different directions: native Go integers set by code calling
// FromHuman directly, and the untyped numbers produced by unmarshaling
// JSON (float64) or YAML (int/uint64) ingest documents.
func toUint64(human any) (uint64, error) {
	switch v := human.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	case float64:
		return uint64(v), nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		return n, err
	default:
		return 0, fmt.Errorf("values: cannot interpret %T as an unsigned integer", human)
	}
}

func toInt64(human any) (int64, error) {
	switch v := human.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err
	default:
		return 0, fmt.Errorf("values: cannot interpret %T as a signed integer", human)
	}
}
