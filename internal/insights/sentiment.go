package insights

import (
	"fmt"
	"sort"
	"time"

	"reviews-backend/internal/reviews"
)

// timelineQuarters bounds the sentiment timeline to the most recent buckets.
const timelineQuarters = 8

// AnalyzeSentiment computes the aggregate label distribution, a quarterly
// timeline and the rating/sentiment correlation slice. Reviews without a
// parsable timestamp are excluded from the timeline but still counted in the
// aggregate distribution.
func AnalyzeSentiment(revs []reviews.Review) SentimentAnalysis {
	out := SentimentAnalysis{
		Distribution: sentimentDistribution(revs),
		Timeline:     sentimentTimeline(revs),
	}

	var high, low []reviews.Review
	for _, r := range revs {
		switch {
		case r.Rating >= 4:
			high = append(high, r)
		case r.Rating >= 1 && r.Rating <= 2:
			low = append(low, r)
		}
	}
	out.Correlation = SentimentCorrelation{
		HighRated: sentimentDistribution(high),
		LowRated:  sentimentDistribution(low),
	}
	return out
}

func sentimentDistribution(revs []reviews.Review) SentimentDistribution {
	positive, neutral, negative := 0, 0, 0
	for _, r := range revs {
		switch sentimentLabel(r) {
		case "positive":
			positive++
		case "negative":
			negative++
		default:
			neutral++
		}
	}
	total := len(revs)
	return SentimentDistribution{
		Positive: SentimentBucket{Count: positive, Percentage: round1(pct(positive, total))},
		Neutral:  SentimentBucket{Count: neutral, Percentage: round1(pct(neutral, total))},
		Negative: SentimentBucket{Count: negative, Percentage: round1(pct(negative, total))},
	}
}

type quarterKey struct {
	year    int
	quarter int
}

func sentimentTimeline(revs []reviews.Review) []SentimentQuarter {
	type tally struct{ positive, neutral, negative, total int }
	buckets := make(map[quarterKey]*tally)
	for _, r := range revs {
		t, ok := reviewDate(r)
		if !ok {
			continue
		}
		key := quarterKey{year: t.Year(), quarter: quarterOf(t)}
		b := buckets[key]
		if b == nil {
			b = &tally{}
			buckets[key] = b
		}
		b.total++
		switch sentimentLabel(r) {
		case "positive":
			b.positive++
		case "negative":
			b.negative++
		default:
			b.neutral++
		}
	}

	keys := make([]quarterKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].quarter < keys[j].quarter
	})
	if len(keys) > timelineQuarters {
		keys = keys[len(keys)-timelineQuarters:]
	}

	timeline := make([]SentimentQuarter, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		timeline = append(timeline, SentimentQuarter{
			Label:    fmt.Sprintf("Q%d %d", key.quarter, key.year),
			Total:    b.total,
			Positive: round1(pct(b.positive, b.total)),
			Neutral:  round1(pct(b.neutral, b.total)),
			Negative: round1(pct(b.negative, b.total)),
		})
	}
	return timeline
}

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
