package insights

import "math"

// Health-score weights. They sum to 1 so a perfect business scores 100.
const (
	healthRatingWeight    = 0.4
	healthSentimentWeight = 0.3
	healthResponseWeight  = 0.2
	healthVolumeWeight    = 0.1
)

// HealthScore blends rating, sentiment, response rate and volume trend into
// one 0-100 composite. previous may be nil; the volume trend is then 0.
// Intermediate math is unrounded; only the output components are rounded.
func HealthScore(current PeriodData, previous *PeriodData) BusinessHealthScore {
	ratingScore := current.AverageRating / 5 * 100
	sentimentScore := current.SentimentScore
	responseScore := current.ResponseRate

	volumeTrend := 0.0
	if previous != nil {
		volumeTrend = Trend(float64(current.ReviewCount), float64(previous.ReviewCount)).ChangePercentage
	}

	overall := ratingScore*healthRatingWeight +
		sentimentScore*healthSentimentWeight +
		responseScore*healthResponseWeight +
		math.Max(0, volumeTrend)*healthVolumeWeight

	return BusinessHealthScore{
		Overall:        clampScore(overall),
		RatingScore:    clampScore(ratingScore),
		SentimentScore: clampScore(sentimentScore),
		ResponseScore:  clampScore(responseScore),
		VolumeTrend:    int(math.Round(volumeTrend)),
	}
}

func clampScore(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
