package insights

import (
	"math"

	"reviews-backend/internal/reviews"
)

// AnalyzeRatings computes the star distribution, period-over-period average
// movement and the named benchmarks. previous may be nil when no comparison
// window applies.
func AnalyzeRatings(current []reviews.Review, previous []reviews.Review) RatingAnalysis {
	distribution := make(map[int]RatingBucket, 5)
	counts := [6]int{}
	total := 0
	ratingSum := 0
	for _, r := range current {
		if r.Rating < 1 || r.Rating > 5 {
			continue // malformed rating, excluded from averages and counts
		}
		counts[r.Rating]++
		ratingSum += r.Rating
		total++
	}
	// Bucket percentages stay unrounded so they sum to exactly 100 for any
	// non-empty cohort; rounding each bucket independently lets the sum
	// drift by up to 0.25.
	for star := 1; star <= 5; star++ {
		distribution[star] = RatingBucket{
			Count:      counts[star],
			Percentage: pct(counts[star], total),
		}
	}

	prevAvg, prevCount := averageRating(previous)
	avg := RatingAverage{
		Current:  safeDiv(float64(ratingSum), float64(total)),
		Previous: prevAvg,
	}
	switch {
	case prevCount == 0:
		// No comparison cohort, so there is no movement to report.
		avg.Direction = DirectionStable
	default:
		avg.Change = avg.Current - avg.Previous
		switch {
		case math.Abs(avg.Change) <= RatingStableDelta:
			avg.Direction = DirectionStable
		case avg.Change > 0:
			avg.Direction = DirectionUp
		default:
			avg.Direction = DirectionDown
		}
	}

	excellent := pct(counts[4]+counts[5], total)
	benchmarks := RatingBenchmarks{
		Excellent:        round1(excellent),
		Good:             round1(clampPct(excellent + pct(counts[3], total))),
		NeedsImprovement: round1(pct(counts[1]+counts[2], total)),
	}

	return RatingAnalysis{
		Distribution: distribution,
		Average:      avg,
		Benchmarks:   benchmarks,
	}
}

func averageRating(revs []reviews.Review) (float64, int) {
	sum := 0
	n := 0
	for _, r := range revs {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		sum += r.Rating
		n++
	}
	return safeDiv(float64(sum), float64(n)), n
}
