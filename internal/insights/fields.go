package insights

import (
	"strings"
	"time"

	"reviews-backend/internal/reviews"
)

// Field accessors resolve the two schema generations of reviews.Review to one
// logical attribute: current field first, then legacy, then a typed default.
// All downstream calculators go through these; none read raw fields.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// reviewDate resolves and parses the published timestamp. The second return
// is false for absent or unparsable values; callers exclude those records
// from date-bounded computations rather than failing.
func reviewDate(r reviews.Review) (time.Time, bool) {
	for _, raw := range []string{r.PublishedAt, r.LegacyDate} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// responseText resolves the owner-response text, empty when none exists.
func responseText(r reviews.Review) string {
	if s := strings.TrimSpace(r.OwnerResponse); s != "" {
		return s
	}
	return strings.TrimSpace(r.LegacyResponse)
}

// hasResponse reports whether the owner responded to the review.
func hasResponse(r reviews.Review) bool {
	return responseText(r) != ""
}

// staffNames resolves the comma-separated staff mentions into trimmed names.
func staffNames(r reviews.Review) []string {
	return splitList(firstNonEmpty(r.StaffMentions, r.LegacyStaff), false)
}

// themeNames resolves the comma-separated theme tags, lowercased for
// clustering so "Service" and "service" land in the same category.
func themeNames(r reviews.Review) []string {
	return splitList(firstNonEmpty(r.Themes, r.LegacyTags), true)
}

// language resolves the review language, defaulting to "unknown".
func language(r reviews.Review) string {
	if s := strings.ToLower(strings.TrimSpace(r.Language)); s != "" {
		return s
	}
	return "unknown"
}

// sentimentLabel resolves the precomputed sentiment label. Reviews without
// one fall back to a rating-derived label so distribution counts still sum
// to the cohort size.
func sentimentLabel(r reviews.Review) string {
	switch strings.ToLower(strings.TrimSpace(r.Sentiment)) {
	case "positive":
		return "positive"
	case "neutral":
		return "neutral"
	case "negative":
		return "negative"
	}
	switch {
	case r.Rating >= 4:
		return "positive"
	case r.Rating <= 2 && r.Rating >= 1:
		return "negative"
	default:
		return "neutral"
	}
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return ""
}

func splitList(raw string, lower bool) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if lower {
			p = strings.ToLower(p)
		}
		out = append(out, p)
	}
	return out
}
