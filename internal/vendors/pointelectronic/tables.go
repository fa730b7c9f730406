package pointelectronic

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// DynamicVariousTable maps per-event settings. DISS stores value and unit
// of a quantity under sibling keys, so the unit is looked up at apply time.
var DynamicVariousTable = mapping.Table{
	Name:      "pointelectronic.dynamic_various",
	PrefixTrg: "/ENTRY[entry*]/measurement/events/EVENT_DATA_EM[event_data_em*]",
	MapToF8: []mapping.Field{
		mapping.Renamed("instrument/optics/magnification", "Mag"),
		mapping.WithUnitKey("instrument/optics/working_distance", "m", "WD/value", "WD/Unit"),
		mapping.WithUnitKey("instrument/ebeam_column/electron_source/voltage", "V", "HV/value", "HV/Unit"),
	},
}

// Tables returns all tables in application order.
func Tables() []*mapping.Table {
	return []*mapping.Table{&DynamicVariousTable}
}
