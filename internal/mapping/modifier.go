package mapping

import (
	"fmt"
	"math"
	"strings"
)

// Modifier selects the transform applied to a raw metadata value before it
// is written to the template. Each modifier is a pure function with a
// declared precondition on the raw value's type; a value that fails the
// precondition yields no result rather than a wrong one.
type Modifier int

const (
	// LoadFrom passes the value through unchanged.
	LoadFrom Modifier = iota
	// LoadFromRadToDeg multiplies a numeric value by 180/pi; the source
	// is assumed to be in radians.
	LoadFromRadToDeg
	// LoadFromLowerCase lower-cases a text value; lower-casing anything
	// else is undefined and yields no result.
	LoadFromLowerCase
)

// String returns the modifier's configuration name.
func (m Modifier) String() string {
	switch m {
	case LoadFrom:
		return "load_from"
	case LoadFromRadToDeg:
		return "load_from_rad_to_deg"
	case LoadFromLowerCase:
		return "load_from_lower_case"
	default:
		return "unknown"
	}
}

// ParseModifier resolves a configuration name to a Modifier. An
// unrecognized name is a configuration error, not a silent no-op.
func ParseModifier(name string) (Modifier, error) {
	switch name {
	case "load_from":
		return LoadFrom, nil
	case "load_from_rad_to_deg":
		return LoadFromRadToDeg, nil
	case "load_from_lower_case":
		return LoadFromLowerCase, nil
	default:
		return 0, fmt.Errorf("unrecognized modifier %q", name)
	}
}

// GetNexusValue resolves the value to be written for quantity name under
// the given modifier. An absent name is the dominant, expected miss and
// reports ok=false, as does a value failing the modifier's precondition.
func GetNexusValue(modifier Modifier, name string, metadata Metadata) (any, bool) {
	raw, ok := metadata[name]
	if !ok {
		return nil, false
	}

	switch modifier {
	case LoadFrom:
		return raw, true
	case LoadFromRadToDeg:
		v, ok := toFloat64(raw)
		if !ok {
			return nil, false
		}

		return v / math.Pi * 180.0, true
	case LoadFromLowerCase:
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}

		return strings.ToLower(s), true
	default:
		return nil, false
	}
}

// toFloat64 widens the numeric types flattened metadata can carry.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
