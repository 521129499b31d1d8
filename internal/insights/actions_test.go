package insights

import (
	"reflect"
	"testing"

	"reviews-backend/internal/reviews"
)

func TestSynthesizeActionsUrgent(t *testing.T) {
	revs := []reviews.Review{
		makeReview(1),
		makeReview(2),
		makeReview(2, withResponse("sorry!")),
		makeReview(5),
	}
	items := SynthesizeActions(revs, ThematicAnalysis{})

	if len(items) != 1 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Category != "urgent" || items[0].Count != 2 {
		t.Fatalf("urgent item = %+v", items[0])
	}
}

func TestSynthesizeActionsImprovementAndStrength(t *testing.T) {
	thematic := ThematicAnalysis{
		TopCategories: []ThemeCategory{
			{Name: "coffee", Count: 12, AverageRating: 4.8, Sentiment: "positive"},
			{Name: "pastries", Count: 8, AverageRating: 4.2, Sentiment: "positive"},
			{Name: "parking", Count: 5, AverageRating: 2.1, Sentiment: "neutral"},
			{Name: "service", Count: 5, AverageRating: 4.5, Sentiment: "positive"},
			{Name: "music", Count: 3, AverageRating: 4.1, Sentiment: "positive"},
		},
		AttentionAreas: []AttentionArea{
			{Theme: "parking", Count: 5, AverageRating: 2.1, Urgency: "high"},
		},
	}
	items := SynthesizeActions(nil, thematic)

	var improvements, strengths []ActionItem
	for _, item := range items {
		switch item.Category {
		case "improvement":
			improvements = append(improvements, item)
		case "strength":
			strengths = append(strengths, item)
		}
	}
	if len(improvements) != 1 || improvements[0].Theme != "parking" {
		t.Fatalf("improvements = %+v", improvements)
	}
	// Only the top 3 positive themes become strengths.
	if len(strengths) != 3 {
		t.Fatalf("strengths = %+v", strengths)
	}
	if strengths[0].Theme != "coffee" || strengths[1].Theme != "pastries" || strengths[2].Theme != "service" {
		t.Fatalf("strength order = %+v", strengths)
	}
}

func TestSynthesizeActionsReproducible(t *testing.T) {
	revs := []reviews.Review{makeReview(1), makeReview(5, withThemes("coffee"))}
	thematic := AnalyzeThemes(revs)

	first := SynthesizeActions(revs, thematic)
	second := SynthesizeActions(revs, thematic)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("action items must be reproducible for identical inputs")
	}
}

func TestSynthesizeActionsNoFindings(t *testing.T) {
	items := SynthesizeActions([]reviews.Review{makeReview(5)}, ThematicAnalysis{})
	if len(items) != 0 {
		t.Fatalf("expected no items, got %+v", items)
	}
}
