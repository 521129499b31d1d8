package insights

import (
	"sort"
	"strings"

	"reviews-backend/internal/reviews"
)

// topPerformerLimit bounds the ranked top-performer list.
const topPerformerLimit = 3

// AnalyzeStaff aggregates reviews by mentioned staff member. The trend on
// each mention compares current-window mention counts against the previous
// window through the shared trend calculator.
func AnalyzeStaff(current []reviews.Review, previous []reviews.Review) StaffInsights {
	type staffStats struct {
		name      string
		count     int
		ratingSum int
	}
	stats := make(map[string]*staffStats)
	for _, r := range current {
		for _, name := range staffNames(r) {
			key := strings.ToLower(name)
			s := stats[key]
			if s == nil {
				s = &staffStats{name: name}
				stats[key] = s
			}
			s.count++
			s.ratingSum += r.Rating
		}
	}

	previousCounts := make(map[string]int)
	for _, r := range previous {
		for _, name := range staffNames(r) {
			previousCounts[strings.ToLower(name)]++
		}
	}

	mentions := make([]StaffMention, 0, len(stats))
	for key, s := range stats {
		avg := safeDiv(float64(s.ratingSum), float64(s.count))
		mentions = append(mentions, StaffMention{
			Name:          s.name,
			Count:         s.count,
			AverageRating: round1(avg),
			Sentiment:     ratingSentiment(avg),
			Trend:         Trend(float64(s.count), float64(previousCounts[key])),
		})
	}
	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].Count != mentions[j].Count {
			return mentions[i].Count > mentions[j].Count
		}
		return mentions[i].Name < mentions[j].Name
	})

	ranked := append([]StaffMention(nil), mentions...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	top := make([]string, 0, topPerformerLimit)
	for _, m := range ranked {
		if len(top) == topPerformerLimit {
			break
		}
		top = append(top, m.Name)
	}

	return StaffInsights{Mentions: mentions, TopPerformers: top}
}
