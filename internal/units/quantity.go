package units

import "fmt"

// Quantity is a magnitude tagged with a unit.
type Quantity struct {
	Magnitude float64
	Unit      Unit
}

// NewQuantity constructs a quantity from a magnitude and a unit symbol
// resolved against the registry.
func (r *Registry) NewQuantity(magnitude float64, symbol string) (Quantity, error) {
	u, ok := r.Lookup(symbol)
	if !ok {
		return Quantity{}, fmt.Errorf("unknown unit symbol %q", symbol)
	}

	return Quantity{Magnitude: magnitude, Unit: u}, nil
}

// Convert re-expresses the quantity in the target unit. Both units must be
// physical and share the same dimensions; sentinel categories never
// convert.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if q.Unit.IsSpecial() || to.IsSpecial() {
		return Quantity{}, fmt.Errorf("cannot convert between %q and %q: sentinel unit categories do not convert", q.Unit.Name, to.Name)
	}

	if q.Unit.Dims != to.Dims {
		return Quantity{}, fmt.Errorf("cannot convert %q to %q: incompatible dimensions", q.Unit.Name, to.Name)
	}

	return Quantity{
		Magnitude: q.Magnitude * q.Unit.Scale / to.Scale,
		Unit:      to,
	}, nil
}

// ToBase re-expresses the quantity in coherent SI units for its
// dimensions. Sentinel categories pass through unchanged.
func (q Quantity) ToBase() Quantity {
	if q.Unit.IsSpecial() {
		return q
	}

	return Quantity{
		Magnitude: q.Magnitude * q.Unit.Scale,
		Unit:      Unit{Name: baseName(q.Unit.Dims), Scale: 1, Dims: q.Unit.Dims},
	}
}

// baseName renders a canonical symbol for a base-dimension vector.
func baseName(d Dimensions) string {
	switch {
	case d.IsZero():
		return ""
	case d.IsLength():
		return "m"
	case d.IsReciprocalLength():
		return "1/m"
	case d.IsEnergy():
		return "kg*m^2/s^2"
	default:
		return fmt.Sprintf("L%d M%d T%d I%d", d.Length, d.Mass, d.Time, d.Current)
	}
}
