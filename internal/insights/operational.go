package insights

import (
	"sort"
	"time"

	"reviews-backend/internal/reviews"
)

// AnalyzeOperations computes cheap always-on counters: language mix, the
// busiest weekday and calendar month, and the unresponded-negative backlog.
func AnalyzeOperations(revs []reviews.Review) OperationalInsights {
	out := OperationalInsights{Languages: make(map[string]int)}

	weekdays := make(map[time.Weekday]int)
	months := make(map[time.Month]int)
	for _, r := range revs {
		out.Languages[language(r)]++
		if r.Rating >= 1 && r.Rating <= 2 && !hasResponse(r) {
			out.UnrespondedNegative++
		}
		t, ok := reviewDate(r)
		if !ok {
			continue
		}
		weekdays[t.Weekday()]++
		months[t.Month()]++
	}

	out.BusiestWeekday = busiestWeekday(weekdays)
	out.BusiestMonth = busiestMonth(months)
	return out
}

func busiestWeekday(counts map[time.Weekday]int) string {
	best := time.Weekday(-1)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if counts[d] == 0 {
			continue
		}
		if best < 0 || counts[d] > counts[best] {
			best = d
		}
	}
	if best < 0 {
		return ""
	}
	return best.String()
}

func busiestMonth(counts map[time.Month]int) string {
	keys := make([]time.Month, 0, len(counts))
	for m := range counts {
		keys = append(keys, m)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	best := keys[0]
	for _, m := range keys[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best.String()
}
