package tfs

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// DetectorStaticTable maps the detector identification.
var DetectorStaticTable = mapping.Table{
	Name:      "tfs.detector_static",
	PrefixTrg: "/ENTRY[entry*]/measurement/em_lab/DETECTOR[detector*]",
	Map: []mapping.Field{
		mapping.Renamed("local_name", "Detectors/Name"),
	},
}

// ApertureStaticTable maps the selected beam aperture. The diameter is
// recorded in meter by the acquisition software.
var ApertureStaticTable = mapping.Table{
	Name:      "tfs.aperture_static",
	PrefixTrg: "/ENTRY[entry*]/measurement/em_lab/EBEAM_COLUMN[ebeam_column]/APERTURE_EM[aperture_em*]",
	Use: []mapping.Field{
		mapping.Constant("value/@units", "m"),
	},
	Map: []mapping.Field{
		mapping.Renamed("description", "Beam/Aperture"),
		mapping.Renamed("value", "EBeam/ApertureDiameter"),
	},
}

// VariousStaticTable maps instrument fabrication details.
var VariousStaticTable = mapping.Table{
	Name:      "tfs.various_static",
	PrefixTrg: "/ENTRY[entry*]/measurement/em_lab",
	Use: []mapping.Field{
		mapping.Constant("FABRICATION[fabrication]/vendor", "FEI"),
	},
	Map: []mapping.Field{
		mapping.Renamed("FABRICATION[fabrication]/model", "System/SystemType"),
		mapping.Renamed("FABRICATION[fabrication]/identifier", "System/BuildNr"),
		mapping.Renamed("EBEAM_COLUMN[ebeam_column]/electron_source/emitter_type", "System/Source"),
	},
}

// OpticsDynamicTable maps per-event optical system settings.
var OpticsDynamicTable = mapping.Table{
	Name:      "tfs.optics_dynamic",
	PrefixTrg: "/ENTRY[entry*]/measurement/EVENT_DATA_EM_SET[event_data_em_set]/EVENT_DATA_EM[event_data_em*]/em_lab/OPTICAL_SYSTEM_EM[optical_system_em]",
	MapToF8: []mapping.Field{
		mapping.WithUnit("beam_current", "A", "EBeam/BeamCurrent"),
		mapping.WithUnit("working_distance", "m", "EBeam/WD"),
	},
}

// StageDynamicTable maps per-event stage tilts. The software stores the
// tilts in radian; NXem asks for degree.
var StageDynamicTable = mapping.Table{
	Name:      "tfs.stage_dynamic",
	PrefixTrg: "/ENTRY[entry*]/measurement/EVENT_DATA_EM_SET[event_data_em_set]/EVENT_DATA_EM[event_data_em*]/em_lab/STAGE_LAB[stage_lab]",
	MapToF8: []mapping.Field{
		mapping.WithUnitConv("tilt1", "deg", "EBeam/StageTa", "rad"),
		mapping.WithUnitConv("tilt2", "deg", "EBeam/StageTb", "rad"),
	},
}

// ScanDynamicTable maps per-event scan settings.
var ScanDynamicTable = mapping.Table{
	Name:      "tfs.scan_dynamic",
	PrefixTrg: "/ENTRY[entry*]/measurement/EVENT_DATA_EM_SET[event_data_em_set]/EVENT_DATA_EM[event_data_em*]/em_lab/SCANBOX_EM[scanbox_em]",
	Use: []mapping.Field{
		mapping.Constant("dwell_time/@units", "s"),
	},
	Map: []mapping.Field{
		mapping.Renamed("dwell_time", "Scan/Dwelltime"),
		mapping.Renamed("scan_schema", "System/Scan"),
	},
}

// VariousDynamicTable maps the remaining per-event settings. The event type
// is reported under the key of whichever detector segment was active, hence
// the repeated targets.
var VariousDynamicTable = mapping.Table{
	Name:      "tfs.various_dynamic",
	PrefixTrg: "/ENTRY[entry*]/measurement/EVENT_DATA_EM_SET[event_data_em_set]/EVENT_DATA_EM[event_data_em*]",
	Use: []mapping.Field{
		mapping.Constant("em_lab/EBEAM_COLUMN[ebeam_column]/electron_source/voltage/@units", "V"),
	},
	Map: []mapping.Field{
		mapping.Renamed("em_lab/DETECTOR[detector*]/mode", "Detectors/Mode"),
		mapping.Renamed("em_lab/EBEAM_COLUMN[ebeam_column]/operation_mode", "EBeam/UseCase"),
		mapping.Renamed("em_lab/EBEAM_COLUMN[ebeam_column]/electron_source/voltage", "EBeam/HV"),
		mapping.Renamed("event_type", "T1/Signal"),
		mapping.Renamed("event_type", "T2/Signal"),
		mapping.Renamed("event_type", "T3/Signal"),
		mapping.Renamed("event_type", "ETD/Signal"),
	},
}

// Tables returns all tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{
		&DetectorStaticTable,
		&ApertureStaticTable,
		&VariousStaticTable,
		&OpticsDynamicTable,
		&StageDynamicTable,
		&ScanDynamicTable,
		&VariousDynamicTable,
	}
}
