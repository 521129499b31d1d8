package insights

import (
	"strconv"
	"testing"
	"time"

	"reviews-backend/internal/reviews"
)

// fixedNow anchors every engine test so windows are deterministic.
var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func fakeClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type reviewOpt func(*reviews.Review)

func withDate(t time.Time) reviewOpt {
	return func(r *reviews.Review) { r.PublishedAt = t.Format(time.RFC3339) }
}

func withLegacyDate(raw string) reviewOpt {
	return func(r *reviews.Review) { r.LegacyDate = raw }
}

func withResponse(text string) reviewOpt {
	return func(r *reviews.Review) { r.OwnerResponse = text }
}

func withSentiment(label string) reviewOpt {
	return func(r *reviews.Review) { r.Sentiment = label }
}

func withThemes(tags string) reviewOpt {
	return func(r *reviews.Review) { r.Themes = tags }
}

func withStaff(names string) reviewOpt {
	return func(r *reviews.Review) { r.StaffMentions = names }
}

func makeReview(rating int, opts ...reviewOpt) reviews.Review {
	r := reviews.Review{
		ID:         "r-" + strconv.Itoa(rating),
		BusinessID: "biz-1",
		Rating:     rating,
		Text:       "review text",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// makeRatedSet builds one review per rating, all dated inside the current
// 30-day window relative to fixedNow.
func makeRatedSet(t *testing.T, ratings []int, opts ...reviewOpt) []reviews.Review {
	t.Helper()
	out := make([]reviews.Review, 0, len(ratings))
	for i, rating := range ratings {
		all := append([]reviewOpt{withDate(fixedNow.AddDate(0, 0, -(i + 1)))}, opts...)
		r := makeReview(rating, all...)
		r.ID = "r-" + strconv.Itoa(i)
		out = append(out, r)
	}
	return out
}
