package insights

import "testing"

func TestAnalyzeResponsesRate(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 4, 3, 2})
	revs[0].OwnerResponse = "thank you"
	revs[1].LegacyResponse = "appreciated" // legacy field must count too

	got := AnalyzeResponses(revs)
	if got.ResponseRate != 50 {
		t.Fatalf("responseRate = %v, want 50", got.ResponseRate)
	}
}

func TestAnalyzeResponsesByRatingGuardsZeroCohorts(t *testing.T) {
	revs := makeRatedSet(t, []int{5, 5})
	revs[0].OwnerResponse = "thanks"

	got := AnalyzeResponses(revs)
	five := got.ResponsesByRating[5]
	if five.Total != 2 || five.Responded != 1 || five.Rate != 50 {
		t.Fatalf("five-star breakdown = %+v", five)
	}
	for star := 1; star <= 4; star++ {
		b := got.ResponsesByRating[star]
		if b.Total != 0 || b.Rate != 0 {
			t.Fatalf("empty %d-star cohort must be zero, got %+v", star, b)
		}
	}
}

func TestAnalyzeResponsesEffectivenessHeuristic(t *testing.T) {
	all := makeRatedSet(t, []int{5, 5, 5, 5}, withResponse("ok"))
	got := AnalyzeResponses(all)
	if got.Effectiveness.CustomerSatisfactionImpact != 10 {
		t.Fatalf("impact must cap at 10, got %v", got.Effectiveness.CustomerSatisfactionImpact)
	}
	if !got.Effectiveness.ImprovedSubsequentRatings {
		t.Fatal("100%% response rate must report improvedSubsequentRatings")
	}
	if !got.Effectiveness.Heuristic {
		t.Fatal("effectiveness must be flagged as heuristic")
	}

	half := makeRatedSet(t, []int{5, 5})
	half[0].OwnerResponse = "ok"
	got = AnalyzeResponses(half)
	if got.Effectiveness.ImprovedSubsequentRatings {
		t.Fatal("exactly 50%% must not report improvement (threshold is strict)")
	}
	if got.Effectiveness.CustomerSatisfactionImpact != 5 {
		t.Fatalf("impact = %v, want 5", got.Effectiveness.CustomerSatisfactionImpact)
	}
}

func TestAnalyzeResponsesEmptyInput(t *testing.T) {
	got := AnalyzeResponses(nil)
	if got.ResponseRate != 0 {
		t.Fatalf("responseRate = %v, want 0", got.ResponseRate)
	}
	if got.Effectiveness.ImprovedSubsequentRatings {
		t.Fatal("no reviews cannot report improvement")
	}
}
