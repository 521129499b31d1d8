package insights

import (
	"fmt"

	"reviews-backend/internal/reviews"
)

// strengthLimit bounds the number of strength items derived from top themes.
const strengthLimit = 3

// SynthesizeActions turns metric outputs into categorized action items.
// Purely rule-based: identical inputs always yield identical items, so the
// list is reproducible without any model call.
func SynthesizeActions(revs []reviews.Review, thematic ThematicAnalysis) []ActionItem {
	items := []ActionItem{}

	unresponded := 0
	for _, r := range revs {
		if r.Rating >= 1 && r.Rating <= 2 && !hasResponse(r) {
			unresponded++
		}
	}
	if unresponded > 0 {
		items = append(items, ActionItem{
			Category:    "urgent",
			Title:       "Respond to negative reviews",
			Description: fmt.Sprintf("%d reviews rated 2 stars or below have no owner response.", unresponded),
			Count:       unresponded,
		})
	}

	for _, area := range thematic.AttentionAreas {
		items = append(items, ActionItem{
			Category:    "improvement",
			Title:       fmt.Sprintf("Improve %s", area.Theme),
			Description: fmt.Sprintf("Reviews mentioning %q average %.1f stars (%s urgency).", area.Theme, area.AverageRating, area.Urgency),
			Theme:       area.Theme,
			Count:       area.Count,
		})
	}

	strengths := 0
	for _, cat := range thematic.TopCategories {
		if strengths == strengthLimit {
			break
		}
		if cat.Sentiment != "positive" {
			continue
		}
		items = append(items, ActionItem{
			Category:    "strength",
			Title:       fmt.Sprintf("Keep leaning on %s", cat.Name),
			Description: fmt.Sprintf("Reviews mentioning %q average %.1f stars across %d mentions.", cat.Name, cat.AverageRating, cat.Count),
			Theme:       cat.Name,
			Count:       cat.Count,
		})
		strengths++
	}

	return items
}
