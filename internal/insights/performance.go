package insights

import (
	"sort"
	"strconv"
	"time"

	"reviews-backend/internal/reviews"
)

// Performance heuristics. SeasonalPattern is a coarse classification over
// monthly counts, not a fitted seasonal model.
const (
	// GrowthSeasonalPct is the growth-rate band beyond which the pattern is
	// classified growing/declining.
	GrowthSeasonalPct = 20.0

	// GrowingTrendPct is the growth rate above which Trends.IsGrowing is set.
	GrowingTrendPct = 5.0

	// SeasonalVarianceFactor flags a seasonal pattern when the variance of
	// monthly counts exceeds this multiple of the mean monthly rate.
	SeasonalVarianceFactor = 2.0
)

// AnalyzePerformance computes volume metrics over the full collection.
// currentCount and previousCount are the comparison-window sizes; a zero
// previous window guards the growth rate to 0 rather than infinity.
func AnalyzePerformance(all []reviews.Review, currentCount, previousCount int, now time.Time) PerformanceMetrics {
	now = now.UTC()
	metrics := PerformanceMetrics{TotalReviews: len(all)}

	monthly := make(map[monthKey]int)
	var earliest, latest time.Time
	for _, r := range all {
		t, ok := reviewDate(r)
		if !ok {
			continue
		}
		monthly[monthKey{t.Year(), t.Month()}]++
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
		if latest.IsZero() || t.After(latest) {
			latest = t
		}

		age := now.Sub(t)
		if age >= 0 {
			if t.After(now.AddDate(0, -3, 0)) {
				metrics.RecentActivity.Last3Months++
			}
			if t.After(now.AddDate(0, -6, 0)) {
				metrics.RecentActivity.Last6Months++
			}
			if t.After(now.AddDate(0, -12, 0)) {
				metrics.RecentActivity.Last12Months++
			}
		}
	}

	span := monthSpan(earliest, latest)
	metrics.ReviewsPerMonth = round1(float64(len(all)) / float64(span))

	if previousCount > 0 {
		metrics.GrowthRate = round1(float64(currentCount-previousCount) / float64(previousCount) * 100)
	}
	metrics.Trends.IsGrowing = metrics.GrowthRate > GrowingTrendPct

	metrics.PeakMonth = peakMonth(monthly)
	metrics.SeasonalPattern = seasonalPattern(metrics.GrowthRate, monthly, span)
	return metrics
}

type monthKey struct {
	year  int
	month time.Month
}

// monthSpan is the inclusive number of calendar months between two dates,
// never less than 1 so it is always a safe denominator.
func monthSpan(earliest, latest time.Time) int {
	if earliest.IsZero() || latest.IsZero() || latest.Before(earliest) {
		return 1
	}
	span := (latest.Year()-earliest.Year())*12 + int(latest.Month()) - int(earliest.Month()) + 1
	if span < 1 {
		return 1
	}
	return span
}

func peakMonth(monthly map[monthKey]int) string {
	if len(monthly) == 0 {
		return ""
	}
	keys := make([]monthKey, 0, len(monthly))
	for key := range monthly {
		keys = append(keys, key)
	}
	// Chronological order makes the earliest peak win ties deterministically.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	best := keys[0]
	for _, key := range keys[1:] {
		if monthly[key] > monthly[best] {
			best = key
		}
	}
	return best.month.String() + " " + strconv.Itoa(best.year)
}

func seasonalPattern(growthRate float64, monthly map[monthKey]int, span int) string {
	switch {
	case growthRate > GrowthSeasonalPct:
		return "growing"
	case growthRate < -GrowthSeasonalPct:
		return "declining"
	}

	if len(monthly) > 1 {
		total := 0
		for _, count := range monthly {
			total += count
		}
		mean := float64(total) / float64(span)
		variance := 0.0
		for _, count := range monthly {
			d := float64(count) - mean
			variance += d * d
		}
		variance /= float64(len(monthly))
		if variance > SeasonalVarianceFactor*mean {
			return "seasonal"
		}
	}
	return "stable"
}

