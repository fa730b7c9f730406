package gatan

import (
	"fmt"
	"strings"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
	"github.com/FAIRmat-NFDI/nxem/internal/units"
)

// Axis is one calibration axis as serialized by DigitalMicrograph.
type Axis map[string]any

// axisKeys is the exact key set a well-formed axis carries.
var axisKeys = []string{"name", "size", "index_in_array", "scale", "offset", "units", "navigate"}

func wellFormed(a Axis) bool {
	if len(a) != len(axisKeys) {
		return false
	}

	for _, k := range axisKeys {
		if _, ok := a[k]; !ok {
			return false
		}
	}

	return true
}

// Signature encodes the sequence of axis units as base-dimension categories
// joined with "_", e.g. "m_m" for a two-dimensional image or "eV" for a
// point spectrum. An axis with an undefined unit makes the whole sequence
// unclassifiable and yields "".
func Signature(axes []Axis, reg *units.Registry, diags *diagnostic.Diagnostics) string {
	if len(axes) == 0 {
		return ""
	}

	tokens := make([]string, 0, len(axes))

	for _, axis := range axes {
		if !wellFormed(axis) {
			diags.AddWarning(diagnostic.CodeAxisShapeUnexpected,
				fmt.Sprintf("axis %v does not carry exactly the expected keys", axis), "", "")
			continue
		}

		symbol, _ := axis["units"].(string)
		if symbol == "" {
			tokens = append(tokens, "unitless")
			continue
		}

		tokens = append(tokens, symbol)
	}

	if len(tokens) == 0 {
		return ""
	}

	categories := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if token == "unitless" {
			categories = append(categories, token)
			continue
		}

		u, ok := reg.Lookup(token)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnitUndefined,
				fmt.Sprintf("axis unit %q is not defined", token), "", "")
			return ""
		}

		switch {
		case u.Dims.IsLength():
			categories = append(categories, "m")
		case u.Dims.IsReciprocalLength():
			categories = append(categories, "1/m")
		case u.Dims.IsEnergy():
			categories = append(categories, "eV")
		default:
			diags.AddWarning(diagnostic.CodeUnitUncategorized,
				fmt.Sprintf("axis unit %q has an uncategorized base dimension", token), "", "")
		}
	}

	return strings.Join(categories, "_")
}

// Classification names the NXem set a dataset belongs to and the axis names
// to document for it, slowest varying dimension first.
type Classification struct {
	Class     string
	AxisNames []string
}

// WhichSpectrum resolves the spectrum class for an axis unit signature.
var WhichSpectrum = map[string]Classification{
	"eV":     {"spectrum_0d", []string{"axis_energy"}},
	"eV_m":   {"spectrum_1d", []string{"axis_i", "axis_energy"}},
	"eV_m_m": {"spectrum_2d", []string{"axis_j", "axis_i", "axis_energy"}},
}

// WhichImage resolves the image class for an axis unit signature. Real and
// reciprocal space images share the same layout.
var WhichImage = map[string]Classification{
	"m":       {"image_1d", []string{"axis_i"}},
	"1/m":     {"image_1d", []string{"axis_i"}},
	"m_m":     {"image_2d", []string{"axis_j", "axis_i"}},
	"1/m_1/m": {"image_2d", []string{"axis_j", "axis_i"}},
}
