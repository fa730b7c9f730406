package nion

import (
	"github.com/FAIRmat-NFDI/nxem/internal/mapping"
	"github.com/FAIRmat-NFDI/nxem/internal/template"
)

// metadataPrefixes lists the places different nionswift generations store
// the autostem instrument state, tried in order.
var metadataPrefixes = []string{
	"metadata/hardware_source/ImageRonchigram/",
	"metadata/hardware_source/autostem/ImageRonchigram/",
	"metadata/hardware_source/autostem/ImageScanned/",
	"metadata/instrument/ImageRonchigram/",
	"metadata/instrument/ImageScanned/",
	"metadata/instrument/autostem/ImageRonchigram/",
	"metadata/instrument/autostem/ImageScanned/",
	"metadata/scan/scan_device_properties/ImageScanned:",
	"metadata/scan_detector/autostem/ImageScanned/",
}

// DynamicAberrationTable maps the measured aberration coefficients of the
// probe corrector. Only the rotationally symmetric coefficients carry a
// documented unit.
var DynamicAberrationTable = mapping.Table{
	Name:      "nion.dynamic_aberration",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]/em_lab/ebeam_column/corrector_cs/tableauID[tableau1]",
	PrefixSrc: metadataPrefixes,
	MapToF8: []mapping.Field{
		mapping.WithUnitConv("c_1_0/magnitude", "m", "C10", "m"),
		mapping.Renamed("c_1_2_a/magnitude", "C12.a"),
		mapping.Renamed("c_1_2_b/magnitude", "C12.b"),
		mapping.Renamed("c_2_1_a/magnitude", "C21.a"),
		mapping.Renamed("c_2_1_b/magnitude", "C21.b"),
		mapping.Renamed("c_2_3_a/magnitude", "C23.a"),
		mapping.Renamed("c_2_3_b/magnitude", "C23.b"),
		mapping.WithUnitConv("c_3_0/magnitude", "m", "C30", "m"),
		mapping.Renamed("c_3_2_a/magnitude", "C32.a"),
		mapping.Renamed("c_3_2_b/magnitude", "C32.b"),
		mapping.Renamed("c_3_4_a/magnitude", "C34.a"),
		mapping.Renamed("c_3_4_b/magnitude", "C34.b"),
		mapping.WithUnitConv("c_5_0/magnitude", "m", "C50", "m"),
	},
}

// DynamicVariousTable maps the per-event electron optical state.
var DynamicVariousTable = mapping.Table{
	Name:      "nion.dynamic_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]/em_lab",
	PrefixSrc: metadataPrefixes,
	MapToF8: []mapping.Field{
		mapping.WithUnitConv("ebeam_column/electron_source/voltage", "V", "EHT", "V"),
		mapping.WithUnitConv("ebeam_column/BEAM[beam]/diameter", "m", "GeometricProbeSize", "m"),
		mapping.WithUnitConv("OPTICAL_SETUP_EM[optical_setup]/semi_convergence_angle", "rad", "probe_ha", "rad"),
		mapping.WithUnitConv("OPTICAL_SETUP_EM[optical_setup]/probe_current", "A", "SuperFEG.^EmissionCurrent", "A"),
		mapping.WithUnitConv("OPTICAL_SETUP_EM[optical_setup]/field_of_view", "m", "fov_nm", "nm"),
	},
}

// DynamicStageTable maps the per-event stage tilts; the position vector is
// assembled separately by StagePosition.
var DynamicStageTable = mapping.Table{
	Name:      "nion.dynamic_stage",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]/em_lab/STAGE_LAB[stage]",
	PrefixSrc: metadataPrefixes,
	MapToF8: []mapping.Field{
		mapping.WithUnitConv("tilt1", "rad", "StageOutA", "rad"),
		mapping.WithUnitConv("tilt2", "rad", "StageOutB", "rad"),
	},
}

// DynamicLensTable maps the condenser and objective lens excitations. All
// examples of the last years showed only these four lenses.
var DynamicLensTable = mapping.Table{
	Name:      "nion.dynamic_lens",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]/em_lab/ebeam_column",
	PrefixSrc: metadataPrefixes,
	Use: []mapping.Field{
		mapping.Constant("operation_mode",
			"Currently, nionswift stores the operation mode relevant settings via multiple metadata keywords and none of them in my opinion fit quite with this concept. The community should decide how to solve this."),
	},
	MapToF8: []mapping.Field{
		mapping.Renamed("lensID[lens1]/value", "C1 ConstW"),
		mapping.Renamed("lensID[lens2]/value", "C2 ConstW"),
		mapping.Renamed("lensID[lens3]/value", "C3 ConstW"),
		mapping.Renamed("lensID[lens4]/value", "MajorOL"),
	},
}

// DynamicScanTable maps the scan controller settings. ac_line_sync appears
// as 1.0, 2.0, True, and False across datasets, so it passes through
// untyped while ac_frame_sync is interpreted strictly.
var DynamicScanTable = mapping.Table{
	Name:      "nion.dynamic_scan",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]/em_lab/scan_controller",
	PrefixSrc: []string{
		"metadata/hardware_source/",
		"metadata/scan/scan_device_parameters/",
		"metadata/scan/scan_device_properties/",
	},
	Use: []mapping.Field{
		mapping.Constant("scan_schema",
			"Currently, nionswift stores scan_schema relevant settings via multiple metadata keywords. The community should decide which of this is required."),
	},
	Map: []mapping.Field{
		mapping.Plain("ac_line_sync"),
		mapping.Plain("calibration_style"),
		mapping.Renamed("scan_schema", "channel_modifier"),
		mapping.Renamed("external_trigger_mode", "external_clock_mode"),
	},
	MapToBool: []mapping.Field{
		mapping.Plain("ac_frame_sync"),
	},
	MapToF8: []mapping.Field{
		mapping.WithUnitConv("flyback_time", "s", "flyback_time_us", "us"),
		mapping.WithUnitConv("line_time", "s", "line_time_us", "us"),
		mapping.WithUnitConv("dwell_time", "s", "pixel_time_us", "us"),
		mapping.WithUnitConv("rotation", "rad", "rotation_rad", "rad"),
		mapping.WithUnitConv("external_trigger_max_wait_time", "s", "external_clock_wait_time_ms", "ms"),
	},
}

// Tables returns all tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{
		&DynamicAberrationTable,
		&DynamicVariousTable,
		&DynamicStageTable,
		&DynamicLensTable,
		&DynamicScanTable,
	}
}

// StagePosition assembles the stage position vector from its per-axis
// metadata keys; all three must be present for the vector to be written.
func StagePosition(meta mapping.Metadata, ids []int, tpl *template.Template) {
	position := make([]float64, 0, 3)

	for _, src := range []string{"StageOutX", "StageOutY", "StageOutZ"} {
		v, ok := stageLookup(meta, src)
		if !ok {
			return
		}

		position = append(position, v)
	}

	trg, ok := template.ResolveVariadic(DynamicStageTable.PrefixTrg+"/position", ids)
	if !ok {
		return
	}

	tpl.Set(trg, position)
	tpl.Set(trg+"/@units", "m")
}

func stageLookup(meta mapping.Metadata, src string) (float64, bool) {
	for _, prefix := range metadataPrefixes {
		if raw, ok := meta[prefix+src]; ok {
			if f, isFloat := raw.(float64); isFloat {
				return f, true
			}
		}
	}

	return 0, false
}
