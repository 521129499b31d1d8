package insights

import "math"

// pct converts a count over its cohort size to a percentage in [0, 100].
// Guarding the denominator here is a hard invariant: no percentage in the
// summary may ever be NaN or Inf.
func pct(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(count) / float64(total) * 100
	return clampPct(p)
}

func clampPct(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// round1 rounds to one decimal place for presentation.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// safeDiv divides, returning 0 for a zero denominator.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
