package convention

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

func textFields(names ...string) []mapping.Field {
	fields := make([]mapping.Field, 0, len(names))
	for _, n := range names {
		fields = append(fields, mapping.Plain(n))
	}

	return fields
}

// RotationsTable maps the documented rotation conventions.
var RotationsTable = mapping.Table{
	Name:      "conventions.rotations",
	PrefixTrg: "/ENTRY[entry*]/coordinate_system_set",
	PrefixSrc: []string{"rotation_conventions/"},
	MapToStr: textFields(
		"rotation_handedness",
		"rotation_convention",
		"euler_angle_convention",
		"axis_angle_convention",
		"sign_convention",
	),
}

func referenceFrameTable(name, frame string) mapping.Table {
	return mapping.Table{
		Name:      name,
		PrefixTrg: "/ENTRY[entry*]/coordinate_system_set/" + frame,
		PrefixSrc: []string{frame + "/"},
		MapToStr: textFields(
			"type",
			"handedness",
			"origin",
			"x_alias",
			"x_direction",
			"y_alias",
			"y_direction",
			"z_alias",
			"z_direction",
		),
	}
}

// ProcessingFrameTable maps the processing reference frame.
var ProcessingFrameTable = referenceFrameTable(
	"conventions.processing_frame", "processing_reference_frame")

// SampleFrameTable maps the sample reference frame.
var SampleFrameTable = referenceFrameTable(
	"conventions.sample_frame", "sample_reference_frame")

// DetectorFrameTable maps the detector reference frame.
var DetectorFrameTable = mapping.Table{
	Name:      "conventions.detector_frame",
	PrefixTrg: "/ENTRY[entry*]/coordinate_system_set/COORDINATE_SYSTEM[detector_reference_frame1]",
	PrefixSrc: []string{"detector_reference_frame/"},
	MapToStr: textFields(
		"type",
		"handedness",
		"origin",
		"x_alias",
		"x_direction",
		"y_alias",
		"y_direction",
		"z_alias",
		"z_direction",
	),
}

// GnomonicFrameTable maps the gnomonic projection reference frame used for
// diffraction pattern indexing.
var GnomonicFrameTable = mapping.Table{
	Name:      "conventions.gnomonic_frame",
	PrefixTrg: "/ENTRY[entry*]/ROI[roi*]/ebsd/gnomonic_reference_frame",
	PrefixSrc: []string{"gnomonic_reference_frame/"},
	MapToStr: textFields(
		"type",
		"handedness",
		"origin",
		"x_direction",
		"y_direction",
		"z_direction",
	),
}

// PatternCentreTable maps the pattern centre boundary and normalization
// conventions.
var PatternCentreTable = mapping.Table{
	Name:      "conventions.pattern_centre",
	PrefixTrg: "/ENTRY[entry*]/ROI[roi*]/ebsd/pattern_centre",
	PrefixSrc: []string{"pattern_centre/"},
	MapToStr: textFields(
		"x_boundary_convention",
		"x_normalization_direction",
		"y_boundary_convention",
		"y_normalization_direction",
	),
}

// Tables returns all convention mapping tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{
		&RotationsTable,
		&ProcessingFrameTable,
		&SampleFrameTable,
		&DetectorFrameTable,
		&GnomonicFrameTable,
		&PatternCentreTable,
	}
}
