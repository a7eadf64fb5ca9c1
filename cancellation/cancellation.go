// Package cancellation implements the completion-probability model
// (spec.md §4.3): a monotone map from pickup distance to the probability a
// matched ride is not cancelled before pickup.
//
// This model has no counterpart in the original prototype — its
// `# TODO: penalize cancellation rate` was never implemented there (see
// SPEC_FULL.md §4, item 4) — so it is grounded directly on spec.md's
// closed-form definition rather than on any teacher source file.
package cancellation

import "math"

// Coefficients of the completion-rate curve (spec.md §4.3):
//
//	completion_rate(d) = 1 - clip(scaleCoefficient * exp(decayRate * d), 0, 1)
const (
	scaleCoefficient = 0.02880619
	decayRate        = 0.00075371
)

// CompletionRate returns the probability in [0, 1] that a ride is not
// cancelled given a pickup distance d in metres. It is monotone
// non-increasing in d, CompletionRate(0) ≈ 0.971, and tends to 0 as d
// grows (spec.md §4.3, §8 property 5).
func CompletionRate(d float64) float64 {
	cancelProb := scaleCoefficient * math.Exp(decayRate*d)
	return 1 - clip01(cancelProb)
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
