// Package export renders computed summaries into downloadable formats.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"reviews-backend/internal/insights"
)

// Format selects a download encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ErrUnsupportedFormat is returned for formats Render does not know.
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format")

// Render encodes a summary for download and returns the payload with its
// content type.
func Render(format Format, summary insights.AnalysisSummaryData) ([]byte, string, error) {
	switch format {
	case FormatJSON, "":
		payload, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, "", err
		}
		return payload, "application/json", nil
	case FormatCSV:
		payload, err := renderCSV(summary)
		if err != nil {
			return nil, "", err
		}
		return payload, "text/csv", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// renderCSV flattens the headline metrics into metric,value rows. Nested
// distributions keep one row per bucket so spreadsheets can chart them.
func renderCSV(summary insights.AnalysisSummaryData) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"health_score_overall", strconv.Itoa(summary.HealthScore.Overall)},
		{"health_score_rating", strconv.Itoa(summary.HealthScore.RatingScore)},
		{"health_score_sentiment", strconv.Itoa(summary.HealthScore.SentimentScore)},
		{"health_score_response", strconv.Itoa(summary.HealthScore.ResponseScore)},
		{"health_score_volume_trend", strconv.Itoa(summary.HealthScore.VolumeTrend)},
		{"average_rating", formatFloat(summary.RatingAnalysis.Average.Current)},
		{"review_count", strconv.Itoa(summary.PerformanceMetrics.TotalReviews)},
		{"response_rate", formatFloat(summary.ResponseAnalytics.ResponseRate)},
		{"reviews_per_month", formatFloat(summary.PerformanceMetrics.ReviewsPerMonth)},
		{"peak_month", summary.PerformanceMetrics.PeakMonth},
	}
	dist := summary.SentimentAnalysis.Distribution
	rows = append(rows,
		[]string{"sentiment_positive", strconv.Itoa(dist.Positive.Count)},
		[]string{"sentiment_neutral", strconv.Itoa(dist.Neutral.Count)},
		[]string{"sentiment_negative", strconv.Itoa(dist.Negative.Count)},
	)
	for star := 1; star <= 5; star++ {
		if bucket, ok := summary.RatingAnalysis.Distribution[star]; ok {
			rows = append(rows, []string{
				fmt.Sprintf("rating_%d_star", star),
				strconv.Itoa(bucket.Count),
			})
		}
	}
	if summary.ThematicAnalysis != nil {
		for _, cat := range summary.ThematicAnalysis.TopCategories {
			rows = append(rows, []string{"theme_" + cat.Name, strconv.Itoa(cat.Count)})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
