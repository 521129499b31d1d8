package insights

import (
	"reflect"
	"testing"

	"reviews-backend/internal/reviews"
)

func TestAnalyzeStaffAggregation(t *testing.T) {
	current := []reviews.Review{
		makeReview(5, withStaff("Maria")),
		makeReview(4, withStaff("maria, Tom")),
		makeReview(1, withStaff("Tom")),
	}
	got := AnalyzeStaff(current, nil)

	if len(got.Mentions) != 2 {
		t.Fatalf("mentions = %+v", got.Mentions)
	}
	maria := got.Mentions[0]
	if maria.Count != 2 || maria.AverageRating != 4.5 || maria.Sentiment != "positive" {
		t.Fatalf("maria = %+v", maria)
	}
	tom := got.Mentions[1]
	if tom.Count != 2 || tom.AverageRating != 2.5 {
		t.Fatalf("tom = %+v", tom)
	}
	if got.TopPerformers[0] != "Maria" {
		t.Fatalf("topPerformers = %v", got.TopPerformers)
	}
}

func TestAnalyzeStaffTrendAgainstPrevious(t *testing.T) {
	current := []reviews.Review{
		makeReview(5, withStaff("Maria")),
		makeReview(5, withStaff("Maria")),
		makeReview(5, withStaff("Maria")),
	}
	previous := []reviews.Review{
		makeReview(4, withStaff("Maria")),
	}
	got := AnalyzeStaff(current, previous)
	trend := got.Mentions[0].Trend
	if trend.Direction != DirectionUp || trend.Significance != SignificanceSignificant {
		t.Fatalf("trend = %+v", trend)
	}
	if trend.Current != 3 || trend.Previous != 1 {
		t.Fatalf("trend counts = %+v", trend)
	}
}

func TestAnalyzeStaffDeterministic(t *testing.T) {
	current := []reviews.Review{
		makeReview(5, withStaff("Ana, Ben, Cal")),
		makeReview(4, withStaff("Ben")),
	}
	first := AnalyzeStaff(current, nil)
	second := AnalyzeStaff(current, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected deterministic staff insights")
	}
}

func TestAnalyzeStaffNoMentions(t *testing.T) {
	got := AnalyzeStaff(makeRatedSet(t, []int{5, 4}), nil)
	if len(got.Mentions) != 0 || len(got.TopPerformers) != 0 {
		t.Fatalf("expected empty insights, got %+v", got)
	}
}
