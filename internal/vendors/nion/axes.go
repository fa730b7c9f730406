package nion

import (
	"fmt"
	"strings"

	"github.com/FAIRmat-NFDI/nxem/internal/diagnostic"
)

// Axis is one dimensional calibration as serialized by nionswift.
type Axis map[string]any

var axisKeys = []string{"offset", "scale", "units"}

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

// Signature joins the axes' unit tokens with "_", e.g. "nm_nm" for a
// two-dimensional image or "unitless_nm_eV" for a stack of spectra. Unlike
// DigitalMicrograph content, nionswift records its calibrations in a fixed
// unit per dimension kind, so the tokens are matched verbatim.
func Signature(axes []Axis, diags *diagnostic.Diagnostics) string {
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

	return strings.Join(tokens, "_")
}

// Classification names the NXem set a dataset belongs to and the axis names
// to document for it, slowest varying dimension first.
type Classification struct {
	Class     string
	AxisNames []string
}

// WhichSpectrum resolves the spectrum class for an axis unit signature.
var WhichSpectrum = map[string]Classification{
	"eV":          {"spectrum_0d", []string{"axis_energy"}},
	"nm_eV":       {"spectrum_1d", []string{"axis_i", "axis_energy"}},
	"nm_nm_eV":    {"spectrum_2d", []string{"axis_j", "axis_i", "axis_energy"}},
	"nm_nm_nm_eV": {"spectrum_3d", []string{"axis_k", "axis_j", "axis_i", "axis_energy"}},
	"unitless_eV": {"stack_0d", []string{"spectrum_identifier", "axis_energy"}},
	"unitless_nm_eV": {
		"stack_1d",
		[]string{"spectrum_identifier", "axis_energy"},
	},
	"unitless_nm_nm_eV": {
		"stack_2d",
		[]string{"spectrum_identifier", "axis_j", "axis_i", "axis_energy"},
	},
	"unitless_nm_nm_nm_eV": {
		"stack_3d",
		[]string{"spectrum_identifier", "axis_k", "axis_j", "axis_i", "axis_energy"},
	},
}

// WhichImage resolves the image class for an axis unit signature.
var WhichImage = map[string]Classification{
	"nm":          {"image_1d", []string{"axis_i"}},
	"nm_nm":       {"image_2d", []string{"axis_j", "axis_i"}},
	"nm_nm_nm":    {"image_3d", []string{"axis_k", "axis_j", "axis_i"}},
	"unitless_nm": {"stack_1d", []string{"image_identifier", "axis_i"}},
	"unitless_nm_nm": {
		"stack_2d",
		[]string{"image_identifier", "axis_j", "axis_i"},
	},
	"unitless_nm_nm_nm": {
		"stack_3d",
		[]string{"image_identifier", "axis_k", "axis_j", "axis_i"},
	},
}
