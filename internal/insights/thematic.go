package insights

import (
	"sort"

	"reviews-backend/internal/reviews"
)

// Thematic thresholds, exported so they can be tuned and tested on their own.
const (
	// AttentionAvgRating is the average rating below which a theme becomes
	// an attention area.
	AttentionAvgRating = 3.5

	// UrgencyHighRating and UrgencyMediumRating split attention areas into
	// urgency bands.
	UrgencyHighRating   = 2.5
	UrgencyMediumRating = 3.0

	// TrendingRisingRatio and TrendingDecliningRatio classify a theme's
	// recent share against its overall share.
	TrendingRisingRatio    = 1.2
	TrendingDecliningRatio = 0.8

	// trendingRecentFraction and trendingRecentMin size the recent window:
	// the most recent 30% of reviews or the last 50, whichever is larger.
	trendingRecentFraction = 0.3
	trendingRecentMin      = 50

	topCategoryLimit = 10
)

// AnalyzeThemes clusters theme tags into categories with per-category stats,
// flags attention areas and classifies trending topics.
func AnalyzeThemes(revs []reviews.Review) ThematicAnalysis {
	type themeStats struct {
		count     int
		ratingSum int
	}
	stats := make(map[string]*themeStats)
	for _, r := range revs {
		for _, theme := range themeNames(r) {
			s := stats[theme]
			if s == nil {
				s = &themeStats{}
				stats[theme] = s
			}
			s.count++
			s.ratingSum += r.Rating
		}
	}

	categories := make([]ThemeCategory, 0, len(stats))
	for name, s := range stats {
		avg := safeDiv(float64(s.ratingSum), float64(s.count))
		categories = append(categories, ThemeCategory{
			Name:          name,
			Count:         s.count,
			Percentage:    round1(pct(s.count, len(revs))),
			AverageRating: round1(avg),
			Sentiment:     ratingSentiment(avg),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Name < categories[j].Name
	})

	attention := attentionAreas(categories)
	trending := trendingTopics(revs, categories)

	if len(categories) > topCategoryLimit {
		categories = categories[:topCategoryLimit]
	}
	return ThematicAnalysis{
		TopCategories:  categories,
		AttentionAreas: attention,
		TrendingTopics: trending,
	}
}

// ratingSentiment maps an average star rating onto a sentiment label.
func ratingSentiment(avg float64) string {
	switch {
	case avg >= 4:
		return "positive"
	case avg <= 2 && avg > 0:
		return "negative"
	default:
		return "neutral"
	}
}

func attentionAreas(categories []ThemeCategory) []AttentionArea {
	out := []AttentionArea{}
	for _, cat := range categories {
		if cat.AverageRating >= AttentionAvgRating {
			continue
		}
		urgency := "low"
		switch {
		case cat.AverageRating < UrgencyHighRating:
			urgency = "high"
		case cat.AverageRating < UrgencyMediumRating:
			urgency = "medium"
		}
		out = append(out, AttentionArea{
			Theme:         cat.Name,
			Count:         cat.Count,
			AverageRating: cat.AverageRating,
			Urgency:       urgency,
		})
	}
	// Worst ratings first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating < out[j].AverageRating
		}
		return out[i].Theme < out[j].Theme
	})
	return out
}

func trendingTopics(revs []reviews.Review, categories []ThemeCategory) []TrendingTopic {
	dated := make([]reviews.Review, 0, len(revs))
	for _, r := range revs {
		if _, ok := reviewDate(r); ok {
			dated = append(dated, r)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		ti, _ := reviewDate(dated[i])
		tj, _ := reviewDate(dated[j])
		return ti.Before(tj)
	})

	window := int(float64(len(dated)) * trendingRecentFraction)
	if window < trendingRecentMin {
		window = trendingRecentMin
	}
	if window > len(dated) {
		window = len(dated)
	}
	recent := dated[len(dated)-window:]

	recentCounts := make(map[string]int)
	for _, r := range recent {
		for _, theme := range themeNames(r) {
			recentCounts[theme]++
		}
	}

	out := make([]TrendingTopic, 0, len(categories))
	for _, cat := range categories {
		overallShare := safeDiv(float64(cat.Count), float64(len(revs)))
		recentShare := safeDiv(float64(recentCounts[cat.Name]), float64(len(recent)))
		trend := "stable"
		switch {
		case overallShare > 0 && recentShare > TrendingRisingRatio*overallShare:
			trend = "rising"
		case overallShare > 0 && recentShare < TrendingDecliningRatio*overallShare:
			trend = "declining"
		}
		out = append(out, TrendingTopic{
			Theme:        cat.Name,
			RecentShare:  round1(clampPct(recentShare * 100)),
			OverallShare: round1(clampPct(overallShare * 100)),
			Trend:        trend,
		})
	}
	return out
}
