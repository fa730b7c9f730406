package convention

// Consistency is the verdict of comparing a documented convention set with
// the community suggestion.
type Consistency string

const (
	// Unclear means at least one convention field was left undocumented.
	Unclear Consistency = "unclear"
	// Inconsistent means a documented field differs from the suggestion.
	Inconsistent Consistency = "inconsistent"
	// Consistent means all fields are documented and match.
	Consistent Consistency = "consistent"
)

// msmseFields lists the convention fields in their checking order.
var msmseFields = []string{
	"rotation_handedness",
	"rotation_convention",
	"euler_angle_convention",
	"axis_angle_convention",
}

// MSMSEConvention is the convention set suggested to the EBSD community by
// Rowenhorst et al. The sign convention is mentioned in the paper but left
// as a parameter there ("sign_convention": "p_minus_one").
var MSMSEConvention = map[string]string{
	"rotation_handedness":    "counter_clockwise",
	"rotation_convention":    "passive",
	"euler_angle_convention": "zxz",
	"axis_angle_convention":  "rotation_angle_on_interval_zero_to_pi",
}

// ConsistencyWithMSMSE compares a documented convention set against the
// community suggestion. The first undocumented field decides Unclear; the
// first documented mismatch decides Inconsistent.
func ConsistencyWithMSMSE(used map[string]any) Consistency {
	for _, field := range msmseFields {
		v, ok := used[field]
		if !ok {
			return Unclear
		}

		if v != any(MSMSEConvention[field]) {
			return Inconsistent
		}
	}

	return Consistent
}
