package insights

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"reviews-backend/internal/reviews"
)

func testEngine() *Engine {
	return NewEngine(NewCache(5*time.Minute, fakeClock(fixedNow)), fakeClock(fixedNow))
}

func fullConfig() AnalysisConfig {
	return AnalysisConfig{
		TimePeriod:              PeriodLast30Days,
		ComparisonPeriod:        ComparePrevious,
		IncludeStaffAnalysis:    true,
		IncludeThematicAnalysis: true,
		IncludeActionItems:      true,
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	_, err := testEngine().Generate(nil, fullConfig())
	if !errors.Is(err, ErrNoReviews) {
		t.Fatalf("err = %v, want ErrNoReviews", err)
	}
}

func TestGenerateUnrespondedHighAndLowBenchmarks(t *testing.T) {
	// 8 reviews at 4+ stars, 2 at 1-2 stars, none responded.
	revs := makeRatedSet(t, []int{5, 5, 5, 5, 4, 4, 4, 4, 1, 1})

	got, err := testEngine().Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.ResponseAnalytics.ResponseRate != 0 {
		t.Fatalf("responseRate = %v, want 0", got.ResponseAnalytics.ResponseRate)
	}
	if got.RatingAnalysis.Benchmarks.Excellent != 80 {
		t.Fatalf("excellent = %v, want 80", got.RatingAnalysis.Benchmarks.Excellent)
	}
	if got.RatingAnalysis.Benchmarks.NeedsImprovement != 20 {
		t.Fatalf("needsImprovement = %v, want 20", got.RatingAnalysis.Benchmarks.NeedsImprovement)
	}
}

func TestGenerateAllReviewsOutsideWindow(t *testing.T) {
	var revs []reviews.Review
	for i := 0; i < 5; i++ {
		revs = append(revs, makeReview(5, withDate(fixedNow.AddDate(-2, 0, -i))))
	}

	got, err := testEngine().Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.ResponseAnalytics.ResponseRate != 0 {
		t.Fatalf("responseRate = %v, want 0", got.ResponseAnalytics.ResponseRate)
	}
	for star := 1; star <= 5; star++ {
		if p := got.RatingAnalysis.Distribution[star].Percentage; p != 0 || math.IsNaN(p) {
			t.Fatalf("star %d percentage = %v, want 0", star, p)
		}
	}
	if got.HealthScore.Overall != 0 {
		t.Fatalf("healthScore = %d, want 0 for an empty window", got.HealthScore.Overall)
	}
}

func TestGenerateSingleThemeAllFiveStars(t *testing.T) {
	var revs []reviews.Review
	for i := 0; i < 12; i++ {
		revs = append(revs, makeReview(5, withThemes("service"), withDate(fixedNow.AddDate(0, 0, -(i+1)))))
	}

	got, err := testEngine().Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.ThematicAnalysis == nil || len(got.ThematicAnalysis.TopCategories) == 0 {
		t.Fatal("expected thematic analysis")
	}
	if got.ThematicAnalysis.TopCategories[0].Sentiment != "positive" {
		t.Fatalf("sentiment = %q, want positive", got.ThematicAnalysis.TopCategories[0].Sentiment)
	}
	if len(got.ThematicAnalysis.AttentionAreas) != 0 {
		t.Fatalf("attention areas = %+v, want none", got.ThematicAnalysis.AttentionAreas)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4, 3, 2, 1, 5, 4},
		withThemes("service, coffee"), withStaff("Maria"))
	engine := testEngine()

	first, err := engine.Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := engine.Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatal("identical inputs must produce bit-identical output")
	}
}

func TestGenerateIdempotentWithoutCache(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4, 3}, withThemes("service"))
	engine := NewEngine(nil, fakeClock(fixedNow))

	first, _ := engine.Generate(revs, fullConfig())
	second, _ := engine.Generate(revs, fullConfig())
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatal("recomputation must match the cached result")
	}
}

func TestGenerateTogglesOmitSections(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4}, withThemes("service"), withStaff("Maria"))
	cfg := AnalysisConfig{TimePeriod: PeriodLast30Days, ComparisonPeriod: CompareNone}

	got, err := testEngine().Generate(revs, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.ThematicAnalysis != nil || got.StaffInsights != nil || got.ActionItems != nil {
		t.Fatalf("disabled sections must be omitted: %+v", got)
	}
	if got.TimePeriod.Previous != nil {
		t.Fatal("comparison none must not resolve a previous window")
	}
}

func TestGenerateHealthScoreWithinBoundsOnExtremes(t *testing.T) {
	extremes := [][]int{
		{1, 1, 1, 1, 1},
		{5, 5, 5, 5, 5},
	}
	for _, ratings := range extremes {
		revs := makeRatedSet(t, ratings)
		got, err := testEngine().Generate(revs, fullConfig())
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if got.HealthScore.Overall < 0 || got.HealthScore.Overall > 100 {
			t.Fatalf("overall = %d out of range for ratings %v", got.HealthScore.Overall, ratings)
		}
	}
}

func TestGenerateJSONRoundTrip(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4, 3, 2, 1}, withThemes("service"))
	got, err := testEngine().Generate(revs, fullConfig())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("summary must be JSON-serializable: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("round-trip: %v", err)
	}
	for _, key := range []string{"healthScore", "performanceMetrics", "ratingAnalysis", "responseAnalytics", "sentimentAnalysis", "timePeriod", "generatedAt"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing %q in serialized summary", key)
		}
	}
}

func TestGenerateUsesCacheAcrossCalls(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4, 3})
	cache := NewCache(5*time.Minute, fakeClock(fixedNow))
	engine := NewEngine(cache, fakeClock(fixedNow))

	if _, err := engine.Generate(revs, fullConfig()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache len = %d, want 1", cache.Len())
	}
	if _, err := engine.Generate(revs, fullConfig()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache len = %d after second call, want 1", cache.Len())
	}
}
