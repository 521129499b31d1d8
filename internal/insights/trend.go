package insights

import "math"

// Classification thresholds. These are applied uniformly by every metric that
// reports a trend so the direction/significance vocabulary means the same
// thing across the whole summary. They are named constants, not buried magic
// numbers, so they can be tuned and tested independently.
const (
	// StableChangePct is the percentage band inside which a change is
	// reported as stable/negligible.
	StableChangePct = 2.0

	// SignificantChangePct is the percentage beyond which a change is
	// reported as significant rather than minor.
	SignificantChangePct = 10.0

	// RatingStableDelta is the star-delta band for average-rating direction.
	// Rating deltas are measured in stars, not percent, so the rating
	// calculator uses this instead of StableChangePct.
	RatingStableDelta = 0.1
)

const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStable = "stable"

	SignificanceSignificant = "significant"
	SignificanceMinor       = "minor"
	SignificanceNegligible  = "negligible"
)

// Trend classifies the movement from previous to current. A zero previous
// value maps to 100% when current is positive and 0% otherwise, so newly
// appearing activity reads as a significant upward move.
func Trend(current, previous float64) TrendCalculation {
	change := current - previous

	var changePct float64
	if previous == 0 {
		if current > 0 {
			changePct = 100
		}
	} else {
		changePct = change / previous * 100
	}

	out := TrendCalculation{
		Current:          current,
		Previous:         previous,
		Change:           change,
		ChangePercentage: changePct,
	}

	if math.Abs(changePct) < StableChangePct {
		out.Direction = DirectionStable
		out.Significance = SignificanceNegligible
		return out
	}

	if changePct > 0 {
		out.Direction = DirectionUp
	} else {
		out.Direction = DirectionDown
	}
	if math.Abs(changePct) > SignificantChangePct {
		out.Significance = SignificanceSignificant
	} else {
		out.Significance = SignificanceMinor
	}
	return out
}
