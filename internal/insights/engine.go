package insights

import (
	"time"

	"reviews-backend/internal/reviews"
)

// Engine is the public entry point of the analysis summary computation.
// Generate is pure given its inputs plus the injected clock; the optional
// Cache memoizes whole summaries by content fingerprint.
type Engine struct {
	Cache *Cache
	Now   func() time.Time
}

// NewEngine constructs an Engine. cache may be nil to disable memoization
// and now may be nil to use the wall clock.
func NewEngine(cache *Cache, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{Cache: cache, Now: now}
}

// Generate computes the full analysis summary for a review set. It returns
// ErrNoReviews for an empty set; no other error can escape it, since
// malformed records are excluded rather than surfaced.
func (e *Engine) Generate(revs []reviews.Review, cfg AnalysisConfig) (AnalysisSummaryData, error) {
	if len(revs) == 0 {
		return AnalysisSummaryData{}, ErrNoReviews
	}

	key := fingerprint(revs, cfg)
	if cached, ok := e.Cache.Get(key); ok {
		return cached, nil
	}

	now := e.Now().UTC()
	currentPeriod, previousPeriod := ResolvePeriods(cfg, now)

	// The "all" preset keeps undated reviews in scope; bounded windows
	// exclude them via the period filter.
	var current []reviews.Review
	if cfg.TimePeriod == PeriodAll || cfg.TimePeriod == "" {
		current = revs
	} else {
		current = FilterByPeriod(revs, currentPeriod)
	}

	currentData := NewPeriodData(currentPeriod, current)
	var previousData *PeriodData
	var previous []reviews.Review
	if previousPeriod != nil {
		previous = FilterByPeriod(revs, *previousPeriod)
		pd := NewPeriodData(*previousPeriod, previous)
		previousData = &pd
	}

	// Response and sentiment run before the health score, which consumes
	// the period scalars they are derived from.
	responseAnalytics := AnalyzeResponses(current)
	sentimentAnalysis := AnalyzeSentiment(current)
	ratingAnalysis := AnalyzeRatings(current, previous)
	performance := AnalyzePerformance(revs, currentData.ReviewCount, periodCount(previousData), now)
	health := HealthScore(currentData, previousData)

	summary := AnalysisSummaryData{
		HealthScore:        health,
		PerformanceMetrics: performance,
		RatingAnalysis:     ratingAnalysis,
		ResponseAnalytics:  responseAnalytics,
		SentimentAnalysis:  sentimentAnalysis,
		Operational:        AnalyzeOperations(current),
		TimePeriod: ResolvedPeriod{
			TimePeriod: normalizePeriod(cfg.TimePeriod),
			Comparison: normalizeComparison(cfg.ComparisonPeriod),
			Current:    currentPeriod,
			Previous:   previousPeriod,
		},
		GeneratedAt: now,
	}

	if cfg.IncludeThematicAnalysis || cfg.IncludeActionItems {
		thematic := AnalyzeThemes(current)
		if cfg.IncludeThematicAnalysis {
			summary.ThematicAnalysis = &thematic
		}
		if cfg.IncludeActionItems {
			summary.ActionItems = SynthesizeActions(current, thematic)
		}
	}
	if cfg.IncludeStaffAnalysis {
		staff := AnalyzeStaff(current, previous)
		summary.StaffInsights = &staff
	}

	e.Cache.Put(key, summary)
	return summary, nil
}

func periodCount(data *PeriodData) int {
	if data == nil {
		return 0
	}
	return data.ReviewCount
}

func normalizePeriod(tp TimePeriod) TimePeriod {
	switch tp {
	case PeriodLast30Days, PeriodLast90Days, PeriodLast6Months, PeriodLast12Months, PeriodCustom:
		return tp
	default:
		return PeriodAll
	}
}

func normalizeComparison(cp ComparisonPeriod) ComparisonPeriod {
	switch cp {
	case CompareYearOverYear, CompareNone:
		return cp
	default:
		return ComparePrevious
	}
}
