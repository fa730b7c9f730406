package jeol

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// DynamicVariousTable maps per-event settings. Working distance comes in
// millimeter and the acceleration voltage in kilovolt.
var DynamicVariousTable = mapping.Table{
	Name:      "jeol.dynamic_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/events/EVENT_DATA_EM[event_data_em*]",
	MapToF8: []mapping.Field{
		mapping.Renamed("instrument/optics/magnification", "CM_MAG"),
		mapping.WithUnitConv("instrument/optics/working_distance", "m", "SM_WD", "mm"),
		mapping.WithUnitConv("instrument/ebeam_column/electron_source/voltage", "V", "CM_ACCEL_VOLTAGE", "kV"),
	},
}

// StaticVariousTable maps instrument fabrication details.
var StaticVariousTable = mapping.Table{
	Name:      "jeol.static_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/instrument/fabrication",
	Use: []mapping.Field{
		mapping.Constant("vendor", "JEOL"),
	},
	Map: []mapping.Field{
		mapping.Renamed("model", "CM_INSTRUMENT"),
	},
}

// Tables returns all tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{&DynamicVariousTable, &StaticVariousTable}
}
