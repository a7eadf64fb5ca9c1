package valuetable

import "math"

// isNonFinite reports whether v is NaN or ±Inf (spec.md §7,
// NumericDegenerate: "never propagate NaN into the value table").
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
