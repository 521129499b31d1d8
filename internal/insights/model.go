package insights

import (
	"time"

	"reviews-backend/internal/reviews"
)

// TimePeriod selects the analysis window.
type TimePeriod string

const (
	PeriodLast30Days   TimePeriod = "last30days"
	PeriodLast90Days   TimePeriod = "last90days"
	PeriodLast6Months  TimePeriod = "last6months"
	PeriodLast12Months TimePeriod = "last12months"
	PeriodAll          TimePeriod = "all"
	PeriodCustom       TimePeriod = "custom"
)

// ComparisonPeriod selects which previous window a summary is compared against.
type ComparisonPeriod string

const (
	ComparePrevious     ComparisonPeriod = "previous"
	CompareYearOverYear ComparisonPeriod = "yearOverYear"
	CompareNone         ComparisonPeriod = "none"
)

// DateRange is a half-open [Start, End) interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AnalysisConfig controls what a summary computes and over which window.
type AnalysisConfig struct {
	TimePeriod              TimePeriod       `json:"timePeriod"`
	CustomRange             *DateRange       `json:"customRange,omitempty"`
	IncludeStaffAnalysis    bool             `json:"includeStaffAnalysis"`
	IncludeThematicAnalysis bool             `json:"includeThematicAnalysis"`
	IncludeActionItems      bool             `json:"includeActionItems"`
	ComparisonPeriod        ComparisonPeriod `json:"comparisonPeriod"`
}

// Period is a half-open [Start, End) date interval.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PeriodData is the ephemeral view of one analysis window: the reviews inside
// it plus a few precomputed scalars. Built fresh per call, never persisted.
type PeriodData struct {
	Period         Period           `json:"period"`
	Reviews        []reviews.Review `json:"-"`
	ReviewCount    int              `json:"reviewCount"`
	AverageRating  float64          `json:"averageRating"`
	SentimentScore float64          `json:"sentimentScore"`
	ResponseRate   float64          `json:"responseRate"`
}

// TrendCalculation classifies the movement between two scalar observations.
type TrendCalculation struct {
	Current          float64 `json:"current"`
	Previous         float64 `json:"previous"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
	Direction        string  `json:"direction"`    // up | down | stable
	Significance     string  `json:"significance"` // significant | minor | negligible
}

// RatingBucket is one star level of the rating distribution.
type RatingBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RatingBenchmarks are named cut lines over the distribution.
type RatingBenchmarks struct {
	Excellent        float64 `json:"excellent"`        // % of 4-5 star reviews
	Good             float64 `json:"good"`             // excellent + % of 3 star
	NeedsImprovement float64 `json:"needsImprovement"` // % of 1-2 star reviews
}

// RatingAverage compares average ratings across periods. Direction uses a
// star-delta threshold rather than the percentage thresholds of
// TrendCalculation, because rating deltas are measured in stars.
type RatingAverage struct {
	Current   float64 `json:"current"`
	Previous  float64 `json:"previous"`
	Change    float64 `json:"change"`
	Direction string  `json:"direction"`
}

// RatingAnalysis is the output of the rating calculator.
type RatingAnalysis struct {
	Distribution map[int]RatingBucket `json:"distribution"`
	Average      RatingAverage        `json:"average"`
	Benchmarks   RatingBenchmarks     `json:"benchmarks"`
}

// ResponseBreakdown is the owner-response rate for one star level.
type ResponseBreakdown struct {
	Total     int     `json:"total"`
	Responded int     `json:"responded"`
	Rate      float64 `json:"rate"`
}

// ResponseEffectiveness is a derived heuristic, not a causal measurement.
// CustomerSatisfactionImpact is min(responseRate/10, 10) and
// ImprovedSubsequentRatings is responseRate > 50; neither is backed by
// outcome data and they must not be read as such.
type ResponseEffectiveness struct {
	CustomerSatisfactionImpact float64 `json:"customerSatisfactionImpact"`
	ImprovedSubsequentRatings  bool    `json:"improvedSubsequentRatings"`
	Heuristic                  bool    `json:"heuristic"`
}

// ResponseAnalytics is the output of the response calculator.
type ResponseAnalytics struct {
	ResponseRate      float64                   `json:"responseRate"`
	ResponsesByRating map[int]ResponseBreakdown `json:"responsesByRating"`
	Effectiveness     ResponseEffectiveness     `json:"effectiveness"`
}

// SentimentBucket is one label of the aggregate sentiment distribution.
type SentimentBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SentimentDistribution covers the three sentiment labels.
type SentimentDistribution struct {
	Positive SentimentBucket `json:"positive"`
	Neutral  SentimentBucket `json:"neutral"`
	Negative SentimentBucket `json:"negative"`
}

// SentimentQuarter is one "Q<n> <year>" bucket of the sentiment timeline.
type SentimentQuarter struct {
	Label    string  `json:"label"`
	Total    int     `json:"total"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// SentimentCorrelation compares sentiment among high- and low-rated cohorts.
type SentimentCorrelation struct {
	HighRated SentimentDistribution `json:"highRated"` // 4-5 star reviews
	LowRated  SentimentDistribution `json:"lowRated"`  // 1-2 star reviews
}

// SentimentAnalysis is the output of the sentiment calculator.
type SentimentAnalysis struct {
	Distribution SentimentDistribution `json:"distribution"`
	Timeline     []SentimentQuarter    `json:"timeline"`
	Correlation  SentimentCorrelation  `json:"correlation"`
}

// RecentActivity counts reviews in trailing windows from "now".
type RecentActivity struct {
	Last3Months  int `json:"last3Months"`
	Last6Months  int `json:"last6Months"`
	Last12Months int `json:"last12Months"`
}

// VolumeTrends holds derived boolean views of the growth rate.
type VolumeTrends struct {
	IsGrowing bool `json:"isGrowing"`
}

// PerformanceMetrics is the output of the performance calculator.
// SeasonalPattern is a coarse heuristic classification, not a fitted model.
type PerformanceMetrics struct {
	TotalReviews    int            `json:"totalReviews"`
	ReviewsPerMonth float64        `json:"reviewsPerMonth"`
	GrowthRate      float64        `json:"growthRate"`
	PeakMonth       string         `json:"peakMonth"`
	RecentActivity  RecentActivity `json:"recentActivity"`
	SeasonalPattern string         `json:"seasonalPattern"` // growing | declining | seasonal | stable
	Trends          VolumeTrends   `json:"trends"`
}

// ThemeCategory is one clustered theme with its derived stats.
type ThemeCategory struct {
	Name          string  `json:"name"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
	AverageRating float64 `json:"averageRating"`
	Sentiment     string  `json:"sentiment"`
}

// AttentionArea is a theme whose average rating warrants prioritized action.
type AttentionArea struct {
	Theme         string  `json:"theme"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"averageRating"`
	Urgency       string  `json:"urgency"` // high | medium | low
}

// TrendingTopic classifies a theme's recent share against its overall share.
type TrendingTopic struct {
	Theme        string  `json:"theme"`
	RecentShare  float64 `json:"recentShare"`
	OverallShare float64 `json:"overallShare"`
	Trend        string  `json:"trend"` // rising | declining | stable
}

// ThematicAnalysis is the output of the thematic calculator.
type ThematicAnalysis struct {
	TopCategories  []ThemeCategory `json:"topCategories"`
	AttentionAreas []AttentionArea `json:"attentionAreas"`
	TrendingTopics []TrendingTopic `json:"trendingTopics"`
}

// StaffMention aggregates reviews naming one staff member.
type StaffMention struct {
	Name          string           `json:"name"`
	Count         int              `json:"count"`
	AverageRating float64          `json:"averageRating"`
	Sentiment     string           `json:"sentiment"`
	Trend         TrendCalculation `json:"trend"`
}

// StaffInsights is the output of the staff calculator.
type StaffInsights struct {
	Mentions      []StaffMention `json:"mentions"`
	TopPerformers []string       `json:"topPerformers"`
}

// OperationalInsights holds cheap always-on operational counters.
type OperationalInsights struct {
	Languages           map[string]int `json:"languages"`
	BusiestWeekday      string         `json:"busiestWeekday"`
	BusiestMonth        string         `json:"busiestMonth"`
	UnrespondedNegative int            `json:"unrespondedNegative"`
}

// BusinessHealthScore is the 0-100 composite. Components are rounded for
// presentation; Overall is computed from the unrounded components.
type BusinessHealthScore struct {
	Overall        int `json:"overall"`
	RatingScore    int `json:"ratingScore"`
	SentimentScore int `json:"sentimentScore"`
	ResponseScore  int `json:"responseScore"`
	VolumeTrend    int `json:"volumeTrend"`
}

// ActionItem is one prioritized, rule-derived follow-up.
type ActionItem struct {
	Category    string `json:"category"` // urgent | improvement | strength
	Title       string `json:"title"`
	Description string `json:"description"`
	Theme       string `json:"theme,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// ResolvedPeriod records the windows a summary was computed over.
type ResolvedPeriod struct {
	TimePeriod TimePeriod       `json:"timePeriod"`
	Comparison ComparisonPeriod `json:"comparison"`
	Current    Period           `json:"current"`
	Previous   *Period          `json:"previous,omitempty"`
}

// AnalysisSummaryData is the engine's single output. Immutable after
// construction; safe to cache and serve to multiple callers.
type AnalysisSummaryData struct {
	HealthScore        BusinessHealthScore  `json:"healthScore"`
	PerformanceMetrics PerformanceMetrics   `json:"performanceMetrics"`
	RatingAnalysis     RatingAnalysis       `json:"ratingAnalysis"`
	ResponseAnalytics  ResponseAnalytics    `json:"responseAnalytics"`
	SentimentAnalysis  SentimentAnalysis    `json:"sentimentAnalysis"`
	ThematicAnalysis   *ThematicAnalysis    `json:"thematicAnalysis,omitempty"`
	StaffInsights      *StaffInsights       `json:"staffInsights,omitempty"`
	Operational        OperationalInsights  `json:"operational"`
	ActionItems        []ActionItem         `json:"actionItems,omitempty"`
	TimePeriod         ResolvedPeriod       `json:"timePeriod"`
	GeneratedAt        time.Time            `json:"generatedAt"`
}
