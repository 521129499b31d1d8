package insights

import (
	"time"

	"reviews-backend/internal/reviews"
)

// Contains reports whether t falls inside the half-open [Start, End) window.
// A zero Start means the window is unbounded on the left.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	return t.Before(p.End)
}

// Duration returns the window length, 0 for unbounded windows.
func (p Period) Duration() time.Duration {
	if p.Start.IsZero() || !p.End.After(p.Start) {
		return 0
	}
	return p.End.Sub(p.Start)
}

// ResolvePeriods turns the config into concrete current and previous windows
// anchored at now. Previous is nil when the comparison is "none" or when no
// meaningful previous window exists (the "all" preset has no previous).
func ResolvePeriods(cfg AnalysisConfig, now time.Time) (Period, *Period) {
	now = now.UTC()
	var current Period

	switch cfg.TimePeriod {
	case PeriodLast30Days:
		current = Period{Start: now.AddDate(0, 0, -30), End: now}
	case PeriodLast90Days:
		current = Period{Start: now.AddDate(0, 0, -90), End: now}
	case PeriodLast6Months:
		current = Period{Start: now.AddDate(0, -6, 0), End: now}
	case PeriodLast12Months:
		current = Period{Start: now.AddDate(0, -12, 0), End: now}
	case PeriodCustom:
		if cfg.CustomRange != nil {
			current = Period{Start: cfg.CustomRange.Start.UTC(), End: cfg.CustomRange.End.UTC()}
		} else {
			current = Period{End: now}
		}
	default: // PeriodAll and anything unrecognized
		current = Period{End: now}
	}

	if cfg.ComparisonPeriod == CompareNone || current.Start.IsZero() {
		return current, nil
	}

	var previous Period
	switch cfg.ComparisonPeriod {
	case CompareYearOverYear:
		previous = Period{Start: current.Start.AddDate(-1, 0, 0), End: current.End.AddDate(-1, 0, 0)}
	default: // ComparePrevious and unset
		d := current.Duration()
		if d <= 0 {
			return current, nil
		}
		previous = Period{Start: current.Start.Add(-d), End: current.Start}
	}
	return current, &previous
}

// FilterByPeriod returns the subset of reviews whose parsed timestamp falls
// inside the window. Records with absent or unparsable timestamps are
// excluded, never surfaced as errors. Zero-length and inverted windows yield
// an empty subset.
func FilterByPeriod(revs []reviews.Review, p Period) []reviews.Review {
	if !p.Start.IsZero() && !p.End.After(p.Start) {
		return []reviews.Review{}
	}
	out := make([]reviews.Review, 0, len(revs))
	for _, r := range revs {
		t, ok := reviewDate(r)
		if !ok {
			continue
		}
		if p.Contains(t) {
			out = append(out, r)
		}
	}
	return out
}

// NewPeriodData builds the ephemeral per-window view with its precomputed
// scalars. Every ratio is guarded: an empty window yields zeros, not NaN.
func NewPeriodData(p Period, revs []reviews.Review) PeriodData {
	data := PeriodData{
		Period:      p,
		Reviews:     revs,
		ReviewCount: len(revs),
	}
	if len(revs) == 0 {
		return data
	}

	ratingSum := 0
	responded := 0
	sentimentSum := 0.0
	for _, r := range revs {
		ratingSum += r.Rating
		if hasResponse(r) {
			responded++
		}
		switch sentimentLabel(r) {
		case "positive":
			sentimentSum += 100
		case "neutral":
			sentimentSum += 50
		}
	}

	n := float64(len(revs))
	data.AverageRating = float64(ratingSum) / n
	data.ResponseRate = float64(responded) / n * 100
	data.SentimentScore = sentimentSum / n
	return data
}
