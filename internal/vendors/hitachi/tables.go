package hitachi

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// DynamicVariousTable maps per-event settings; all numeric keys are already
// recorded in SI units.
var DynamicVariousTable = mapping.Table{
	Name:      "hitachi.dynamic_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/event_data_em_set/EVENT_DATA_EM[event_data_em*]",
	MapToF8: []mapping.Field{
		mapping.Renamed("em_lab/OPTICAL_SYSTEM_EM[optical_system_em]/magnification", "Magnification"),
		mapping.WithUnit("em_lab/OPTICAL_SYSTEM_EM[optical_system_em]/working_distance", "m", "WorkingDistance"),
		mapping.WithUnit("em_lab/EBEAM_COLUMN[ebeam_column]/electron_source/voltage", "V", "AcceleratingVoltage"),
		mapping.WithUnit("em_lab/EBEAM_COLUMN[ebeam_column]/electron_source/filament_current", "A", "FilamentCurrent"),
		mapping.WithUnit("em_lab/EBEAM_COLUMN[ebeam_column]/electron_source/emission_current", "A", "EmissionCurrent"),
	},
}

// StaticVariousTable maps instrument fabrication details. The model name
// appears under either spelling depending on the software generation.
var StaticVariousTable = mapping.Table{
	Name:      "hitachi.static_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/em_lab",
	Use: []mapping.Field{
		mapping.Constant("FABRICATION[fabrication]/vendor", "Hitachi"),
	},
	Map: []mapping.Field{
		mapping.Renamed("FABRICATION[fabrication]/model", "InstructName"),
		mapping.Renamed("FABRICATION[fabrication]/model", "Instrument name"),
		mapping.Renamed("FABRICATION[fabrication]/identifier", "SerialNumber"),
	},
}

// Tables returns all tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{&DynamicVariousTable, &StaticVariousTable}
}
