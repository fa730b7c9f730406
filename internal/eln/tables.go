package eln

import "github.com/FAIRmat-NFDI/nxem/internal/mapping"

// EntryTable maps the experiment header.
var EntryTable = mapping.Table{
	Name:      "eln.entry",
	PrefixTrg: "/ENTRY[entry*]",
	PrefixSrc: []string{"entry/"},
	Map: []mapping.Field{
		mapping.Plain("experiment_alias"),
		mapping.Plain("start_time"),
		mapping.Plain("end_time"),
		mapping.Plain("experiment_description"),
	},
}

// SampleTable maps the sample description. Thickness arrives as a value and
// unit pair chosen by the user.
var SampleTable = mapping.Table{
	Name:      "eln.sample",
	PrefixTrg: "/ENTRY[entry*]/sample",
	PrefixSrc: []string{"sample/"},
	Map: []mapping.Field{
		mapping.Renamed("type", "method"),
		mapping.Plain("name"),
		mapping.Plain("atom_types"),
		mapping.Plain("preparation_date"),
		mapping.Plain("identifier/identifier"),
		mapping.Plain("identifier/service"),
	},
	MapToF8: []mapping.Field{
		mapping.WithUnitKey("thickness", "m", "thickness/value", "thickness/unit"),
	},
	MapToBool: []mapping.Field{
		mapping.Plain("identifier/is_persistent"),
	},
}

// UserTable maps one user of the user list.
var UserTable = mapping.Table{
	Name:      "eln.user",
	PrefixTrg: "/ENTRY[entry*]/USER[user*]",
	Map: []mapping.Field{
		mapping.Plain("name"),
		mapping.Plain("affiliation"),
		mapping.Plain("address"),
		mapping.Plain("email"),
		mapping.Plain("telephone_number"),
		mapping.Plain("role"),
	},
}

// UserIdentifierTable maps a user's ORCID when one was given.
var UserIdentifierTable = mapping.Table{
	Name:      "eln.user_identifier",
	PrefixTrg: "/ENTRY[entry*]/USER[user*]",
	Use: []mapping.Field{
		mapping.Constant("identifier/service", "orcid"),
		mapping.Constant("identifier/is_persistent", true),
	},
	Map: []mapping.Field{
		mapping.Renamed("identifier/identifier", "orcid"),
	},
}

// CoordinateSystemTable maps one deployment-defined coordinate system.
var CoordinateSystemTable = mapping.Table{
	Name:      "oasis.coordinate_system",
	PrefixTrg: "/ENTRY[entry*]/COORDINATE_SYSTEM[coordinate_system*]",
	MapToStr: []mapping.Field{
		mapping.Plain("alias"),
		mapping.Plain("type"),
		mapping.Plain("handedness"),
		mapping.Renamed("x_direction", "xaxis_direction"),
		mapping.Renamed("x_alias", "xaxis_alias"),
		mapping.Renamed("y_direction", "yaxis_direction"),
		mapping.Renamed("y_alias", "yaxis_alias"),
		mapping.Renamed("z_direction", "zaxis_direction"),
		mapping.Renamed("z_alias", "zaxis_alias"),
		mapping.Plain("origin"),
	},
}

// CitationTable maps one citation of the deployment's citation list.
var CitationTable = mapping.Table{
	Name:      "oasis.citation",
	PrefixTrg: "/ENTRY[entry*]/CITE[cite*]",
	MapToStr: []mapping.Field{
		mapping.Plain("authors"),
		mapping.Plain("doi"),
		mapping.Plain("description"),
		mapping.Plain("url"),
	},
}
