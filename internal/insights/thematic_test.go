package insights

import (
	"testing"
	"time"

	"reviews-backend/internal/reviews"
)

func TestAnalyzeThemesCategories(t *testing.T) {
	revs := []reviews.Review{
		makeReview(5, withThemes("service, coffee quality")),
		makeReview(4, withThemes("Service")),
		makeReview(1, withThemes("parking")),
	}
	got := AnalyzeThemes(revs)

	if len(got.TopCategories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got.TopCategories))
	}
	top := got.TopCategories[0]
	if top.Name != "service" || top.Count != 2 {
		t.Fatalf("top category = %+v", top)
	}
	if top.AverageRating != 4.5 || top.Sentiment != "positive" {
		t.Fatalf("service stats = %+v", top)
	}
}

func TestAnalyzeThemesAttentionAreas(t *testing.T) {
	revs := []reviews.Review{
		makeReview(1, withThemes("parking")),
		makeReview(2, withThemes("parking")),
		makeReview(3, withThemes("wait time")),
		makeReview(3, withThemes("wait time")),
		makeReview(4, withThemes("wait time")),
		makeReview(5, withThemes("coffee")),
	}
	got := AnalyzeThemes(revs)

	if len(got.AttentionAreas) != 2 {
		t.Fatalf("attention areas = %+v", got.AttentionAreas)
	}
	// Ranked ascending by rating: parking (1.5) before wait time (3.3).
	if got.AttentionAreas[0].Theme != "parking" || got.AttentionAreas[0].Urgency != "high" {
		t.Fatalf("first area = %+v", got.AttentionAreas[0])
	}
	if got.AttentionAreas[1].Theme != "wait time" || got.AttentionAreas[1].Urgency != "low" {
		t.Fatalf("second area = %+v", got.AttentionAreas[1])
	}
}

func TestAnalyzeThemesUrgencyBands(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    string
	}{
		{name: "below_2_5_is_high", ratings: []int{2, 2}, want: "high"},
		{name: "below_3_0_is_medium", ratings: []int{3, 2, 3}, want: "medium"},
		{name: "below_3_5_is_low", ratings: []int{3, 4, 3}, want: "low"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var revs []reviews.Review
			for _, rating := range tc.ratings {
				revs = append(revs, makeReview(rating, withThemes("theme")))
			}
			got := AnalyzeThemes(revs)
			if len(got.AttentionAreas) != 1 || got.AttentionAreas[0].Urgency != tc.want {
				t.Fatalf("got %+v, want urgency %q", got.AttentionAreas, tc.want)
			}
		})
	}
}

func TestAnalyzeThemesFiveStarThemeNeverAttention(t *testing.T) {
	var revs []reviews.Review
	for i := 0; i < 20; i++ {
		revs = append(revs, makeReview(5, withThemes("service"), withDate(fixedNow.AddDate(0, 0, -i))))
	}
	got := AnalyzeThemes(revs)
	if got.TopCategories[0].Sentiment != "positive" {
		t.Fatalf("sentiment = %q, want positive", got.TopCategories[0].Sentiment)
	}
	if len(got.AttentionAreas) != 0 {
		t.Fatalf("a 5-star theme must never be an attention area: %+v", got.AttentionAreas)
	}
}

func TestAnalyzeThemesTrendingTopics(t *testing.T) {
	var revs []reviews.Review
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	// 200 dated reviews; "wifi" appears only in the newest 60 (the recent
	// window, max(30% of 200, 50) = 60), "decor" only in the oldest 140.
	for i := 0; i < 200; i++ {
		theme := "decor"
		if i >= 140 {
			theme = "wifi"
		}
		revs = append(revs, makeReview(4, withThemes(theme+", ambiance"), withDate(base.AddDate(0, 0, i))))
	}
	got := AnalyzeThemes(revs)

	trends := map[string]string{}
	for _, topic := range got.TrendingTopics {
		trends[topic.Theme] = topic.Trend
	}
	if trends["wifi"] != "rising" {
		t.Fatalf("wifi trend = %q, want rising", trends["wifi"])
	}
	if trends["decor"] != "declining" {
		t.Fatalf("decor trend = %q, want declining", trends["decor"])
	}
	if trends["ambiance"] != "stable" {
		t.Fatalf("ambiance trend = %q, want stable", trends["ambiance"])
	}
}

func TestAnalyzeThemesNoThemes(t *testing.T) {
	got := AnalyzeThemes(makeRatedSet(t, []int{5, 4}))
	if len(got.TopCategories) != 0 || len(got.AttentionAreas) != 0 {
		t.Fatalf("no tags must yield empty analysis: %+v", got)
	}
}
