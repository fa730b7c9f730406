package convention

// Handedness values a reference frame may declare.
const (
	RightHanded = "right_handed"
	LeftHanded  = "left_handed"
)

// AxisDirections lists the recognized base direction tokens for reference
// frame axes.
var AxisDirections = []string{"north", "east", "south", "west", "in", "out"}

var oppositeDirection = map[string]string{
	"north": "south",
	"south": "north",
	"east":  "west",
	"west":  "east",
	"in":    "out",
	"out":   "in",
}

// WellDefinedCartesian reports whether a handedness plus three axis base
// directions describe an unambiguous Cartesian frame. The handedness and
// every direction must be recognized tokens, and no two directions may be
// parallel or antiparallel.
func WellDefinedCartesian(handedness string, directions []string) bool {
	if handedness != RightHanded && handedness != LeftHanded {
		return false
	}

	if len(directions) != 3 {
		return false
	}

	for i, dir := range directions {
		opposite, ok := oppositeDirection[dir]
		if !ok {
			return false
		}

		for _, other := range directions[i+1:] {
			if other == dir || other == opposite {
				return false
			}
		}
	}

	return true
}
