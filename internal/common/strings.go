package common

import (
	"math"
	"strconv"
	"strings"
)

// StringToNumber converts a string holding a serialized quantity back to a
// number. Integral values come back as int64, other numbers as float64, and
// anything that does not parse as a number is returned unchanged.
func StringToNumber(arg string) any {
	val, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return arg
	}

	if val == math.Trunc(val) && !math.IsInf(val, 0) && math.Abs(val) < 1e15 {
		return int64(val)
	}

	return val
}

// RChop removes suffix from the end of s if present.
func RChop(s, suffix string) string {
	if suffix != "" && strings.HasSuffix(s, suffix) {
		return s[:len(s)-len(suffix)]
	}

	return s
}
