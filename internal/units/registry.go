package units

import (
	"fmt"
	"math"
	"strings"
)

// Dimensions is the exponent vector of a unit over the SI base dimensions
// used in this domain: length, mass, time, electric current.
type Dimensions struct {
	Length  int8
	Mass    int8
	Time    int8
	Current int8
}

// IsZero reports whether all exponents are zero.
func (d Dimensions) IsZero() bool {
	return d == Dimensions{}
}

// Invert negates all exponents, e.g. meter -> 1/meter.
func (d Dimensions) Invert() Dimensions {
	return Dimensions{
		Length:  -d.Length,
		Mass:    -d.Mass,
		Time:    -d.Time,
		Current: -d.Current,
	}
}

// IsLength reports whether the dimensions are those of a plain length.
func (d Dimensions) IsLength() bool {
	return d == Dimensions{Length: 1}
}

// IsReciprocalLength reports whether the dimensions are those of 1/length.
func (d Dimensions) IsReciprocalLength() bool {
	return d == Dimensions{Length: -1}
}

// IsEnergy reports whether the dimensions are those of an energy.
func (d Dimensions) IsEnergy() bool {
	return d == Dimensions{Mass: 1, Length: 2, Time: -2}
}

// Unit is a named scaling of a base-dimension vector. Scale converts a
// magnitude in this unit to the coherent SI value for the same dimensions.
type Unit struct {
	Name    string
	Scale   float64
	Dims    Dimensions
	special bool
}

// IsSpecial reports whether the unit is one of the NeXus sentinel
// categories rather than a physical unit.
func (u Unit) IsSpecial() bool {
	return u.special
}

// Equal reports unit identity. Sentinel categories are equal only to
// themselves: a value tagged unitless is never equal to one tagged
// dimensionless even though both render without a suffix.
func (u Unit) Equal(other Unit) bool {
	if u.special || other.special {
		return u.special == other.special && u.Name == other.Name
	}

	return u.Dims == other.Dims && sameScale(u.Scale, other.Scale)
}

// String renders the unit symbol; sentinel categories render empty.
func (u Unit) String() string {
	if u.special {
		return ""
	}

	return u.Name
}

func sameScale(a, b float64) bool {
	if a == b {
		return true
	}

	// Tolerate float drift from chained alias definitions.
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

// Names of the sentinel categories within a registry.
const (
	NameUnitless      = "nx_unitless"
	NameDimensionless = "nx_dimensionless"
	NameAny           = "nx_any"
)

// Registry resolves unit symbols to units. Construct one per conversion
// run (or per test) with NewRegistry.
type Registry struct {
	units map[string]Unit
}

// NewRegistry builds a registry pre-loaded with the SI units, prefixes, and
// vendor aliases the mapping tables use, plus the NeXus sentinel
// categories.
func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]Unit)}

	length := Dimensions{Length: 1}
	timeDim := Dimensions{Time: 1}
	current := Dimensions{Current: 1}
	voltage := Dimensions{Mass: 1, Length: 2, Time: -3, Current: -1}
	energy := Dimensions{Mass: 1, Length: 2, Time: -2}
	area := Dimensions{Length: 2}

	base := []Unit{
		{Name: "m", Scale: 1, Dims: length},
		{Name: "mm", Scale: 1e-3, Dims: length},
		{Name: "um", Scale: 1e-6, Dims: length},
		{Name: "nm", Scale: 1e-9, Dims: length},
		{Name: "s", Scale: 1, Dims: timeDim},
		{Name: "ms", Scale: 1e-3, Dims: timeDim},
		{Name: "us", Scale: 1e-6, Dims: timeDim},
		{Name: "h", Scale: 3600, Dims: timeDim},
		{Name: "A", Scale: 1, Dims: current},
		{Name: "V", Scale: 1, Dims: voltage},
		{Name: "kV", Scale: 1e3, Dims: voltage},
		{Name: "eV", Scale: 1.602176634e-19, Dims: energy},
		{Name: "keV", Scale: 1.602176634e-16, Dims: energy},
		{Name: "J", Scale: 1, Dims: energy},
		{Name: "um2", Scale: 1e-12, Dims: area},
		// Angles carry no base dimension; rad and deg stay convertible
		// into each other through their scales.
		{Name: "rad", Scale: 1},
		{Name: "deg", Scale: math.Pi / 180.0},
	}

	for _, u := range base {
		r.units[u.Name] = u
	}

	// Long-form and vendor spellings.
	aliases := map[string]string{
		"meter":        "m",
		"millimeter":   "mm",
		"micrometer":   "um",
		"nanometer":    "nm",
		"second":       "s",
		"millisecond":  "ms",
		"microsecond":  "us",
		"volt":         "V",
		"kilovolt":     "kV",
		"ampere":       "A",
		"radian":       "rad",
		"degree":       "deg",
		"electronvolt": "eV",
		// Zeiss tag spellings.
		"Hours": "h",
		"Secs":  "s",
		"Volt":  "V",
	}

	for name, of := range aliases {
		r.units[name] = r.units[of]
	}

	r.units[NameUnitless] = Unit{Name: NameUnitless, Scale: 1, special: true}
	r.units[NameDimensionless] = Unit{Name: NameDimensionless, Scale: 1, special: true}
	r.units[NameAny] = Unit{Name: NameAny, Scale: 1, special: true}

	return r
}

// Unitless returns the sentinel for "no unit exists".
func (r *Registry) Unitless() Unit {
	return r.units[NameUnitless]
}

// Dimensionless returns the sentinel for "units cancelled out".
func (r *Registry) Dimensionless() Unit {
	return r.units[NameDimensionless]
}

// Any returns the sentinel for "any unit acceptable".
func (r *Registry) Any() Unit {
	return r.units[NameAny]
}

// Define registers a unit under name, overwriting any previous definition.
func (r *Registry) Define(name string, u Unit) {
	u.Name = name
	r.units[name] = u
}

// DefineAlias registers name as factor times an already known unit.
func (r *Registry) DefineAlias(name, of string, factor float64) error {
	base, ok := r.units[of]
	if !ok {
		return fmt.Errorf("define alias %s: unknown unit %q", name, of)
	}

	r.units[name] = Unit{Name: name, Scale: factor * base.Scale, Dims: base.Dims}

	return nil
}

// Lookup resolves a unit symbol. Reciprocals written as "1/<unit>" resolve
// against the non-inverted symbol.
func (r *Registry) Lookup(symbol string) (Unit, bool) {
	if u, ok := r.units[symbol]; ok {
		return u, true
	}

	if rest, ok := strings.CutPrefix(symbol, "1/"); ok {
		base, found := r.units[rest]
		if !found || base.special {
			return Unit{}, false
		}

		return Unit{
			Name:  symbol,
			Scale: 1 / base.Scale,
			Dims:  base.Dims.Invert(),
		}, true
	}

	return Unit{}, false
}

// MustLookup resolves a unit symbol known at configuration time; an unknown
// symbol is a configuration error and panics.
func (r *Registry) MustLookup(symbol string) Unit {
	u, ok := r.Lookup(symbol)
	if !ok {
		panic(fmt.Sprintf("units: unknown unit symbol %q", symbol))
	}

	return u
}
