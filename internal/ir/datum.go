package ir

import (
	"fmt"
	"strconv"
)

// Datum is a sealed interface representing constant values.
// Only DatumInt, DatumString, and DatumBool implement this.
// NO DatumFloat - floats are forbidden in the IR (breaks determinism).
type Datum interface {
	datum() // Sealed - only these types implement it

	// String returns the default textual form of the datum, used when
	// no output conversion is registered for the constant's type.
	String() string
}

// DatumInt represents an integer value. Always int64, never float64.
type DatumInt int64

func (DatumInt) datum() {}

func (d DatumInt) String() string {
	return strconv.FormatInt(int64(d), 10)
}

// DatumString represents a string value.
type DatumString string

func (DatumString) datum() {}

func (d DatumString) String() string {
	return string(d)
}

// DatumBool represents a boolean value.
type DatumBool bool

func (DatumBool) datum() {}

func (d DatumBool) String() string {
	if d {
		return "true"
	}
	return "false"
}

// ToDatum converts a decoded fixture value to a Datum.
// Accepts the scalar types produced by the YAML and JSON decoders.
// Floats are rejected rather than rounded.
func ToDatum(v any) (Datum, error) {
	switch val := v.(type) {
	case Datum:
		return val, nil
	case string:
		return DatumString(val), nil
	case bool:
		return DatumBool(val), nil
	case int:
		return DatumInt(val), nil
	case int64:
		return DatumInt(val), nil
	case uint64:
		if val > uint64(1)<<63-1 {
			return nil, fmt.Errorf("integer value %d overflows int64", val)
		}
		return DatumInt(int64(val)), nil
	case float64, float32:
		return nil, fmt.Errorf("floats are forbidden in constant values: %v", val)
	case nil:
		return nil, fmt.Errorf("nil value: use the null flag for NULL constants")
	default:
		return nil, fmt.Errorf("unsupported constant value type: %T", v)
	}
}
