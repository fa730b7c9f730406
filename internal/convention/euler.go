package convention

// Record describes one three-letter Euler axis sequence.
type Record struct {
	// IsProper is false for the degenerate sequences that repeat a single
	// axis three times and thus cannot parameterize every orientation.
	IsProper bool
	// NamedAfter credits the author the sequence is commonly named after.
	NamedAfter string
	// Family tags the sequence family where established ("proper").
	Family string
}

// EulerAngleConventions enumerates all 27 axis sequences. In materials
// science the zxz sequence of H.-J. Bunge is used most frequently.
var EulerAngleConventions = map[string]Record{
	"xxx": {IsProper: false},
	"xxy": {IsProper: true},
	"xxz": {IsProper: true},
	"xyx": {IsProper: true},
	"xyy": {IsProper: true},
	"xyz": {IsProper: true},
	"xzx": {IsProper: true},
	"xzy": {IsProper: true},
	"xzz": {IsProper: true},
	"yxx": {IsProper: true},
	"yxy": {IsProper: true},
	"yxz": {IsProper: true},
	"yyx": {IsProper: true},
	"yyy": {IsProper: false},
	"yyz": {IsProper: true},
	"yzx": {IsProper: true},
	"yzy": {IsProper: true},
	"yzz": {IsProper: true},
	"zxx": {IsProper: true},
	"zxy": {IsProper: true},
	"zxz": {IsProper: true, NamedAfter: "Bunge", Family: "proper"},
	"zyx": {IsProper: true},
	"zyy": {IsProper: true},
	"zyz": {IsProper: true},
	"zzx": {IsProper: true},
	"zzy": {IsProper: true},
	"zzz": {IsProper: false},
}

// LookupEuler resolves a sequence name like "zxz".
func LookupEuler(sequence string) (Record, bool) {
	r, ok := EulerAngleConventions[sequence]
	return r, ok
}
