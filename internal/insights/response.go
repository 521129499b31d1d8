package insights

import "reviews-backend/internal/reviews"

// Response-effectiveness heuristic constants. These produce derived,
// non-causal indicators; the Heuristic flag on the output marks them as such.
const (
	// ResponseImpactDivisor scales the response rate onto a 0-10 impact axis.
	ResponseImpactDivisor = 10.0

	// ResponseImpactCap bounds the impact score.
	ResponseImpactCap = 10.0

	// ResponseImprovementRate is the response-rate percentage above which
	// ImprovedSubsequentRatings is reported true.
	ResponseImprovementRate = 50.0
)

// AnalyzeResponses computes the owner-response rate, its per-star breakdown
// and the effectiveness heuristic. Response presence is resolved through the
// field accessors so both schema generations count.
func AnalyzeResponses(revs []reviews.Review) ResponseAnalytics {
	byRating := make(map[int]ResponseBreakdown, 5)
	totals := [6]int{}
	respondedBy := [6]int{}
	responded := 0
	for _, r := range revs {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		totals[r.Rating]++
		if hasResponse(r) {
			respondedBy[r.Rating]++
			responded++
		}
	}

	total := 0
	for star := 1; star <= 5; star++ {
		total += totals[star]
		byRating[star] = ResponseBreakdown{
			Total:     totals[star],
			Responded: respondedBy[star],
			Rate:      round1(pct(respondedBy[star], totals[star])),
		}
	}

	rate := pct(responded, total)

	impact := rate / ResponseImpactDivisor
	if impact > ResponseImpactCap {
		impact = ResponseImpactCap
	}

	return ResponseAnalytics{
		ResponseRate:      round1(rate),
		ResponsesByRating: byRating,
		Effectiveness: ResponseEffectiveness{
			CustomerSatisfactionImpact: round1(impact),
			ImprovedSubsequentRatings:  rate > ResponseImprovementRate,
			Heuristic:                  true,
		},
	}
}
