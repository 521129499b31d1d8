package summaries

import (
	"reviews-backend/internal/insights"
	"reviews-backend/internal/llm"
)

// Summary is the API envelope for a computed analysis summary.
type Summary struct {
	BusinessID      string                         `json:"businessId"`
	BusinessName    string                         `json:"businessName"`
	Status          string                         `json:"status"` // ok | no_data
	Message         string                         `json:"message,omitempty"`
	Data            *insights.AnalysisSummaryData  `json:"data,omitempty"`
	Recommendations []llm.Recommendation           `json:"recommendations,omitempty"`
}

// Request captures one summary generation call.
type Request struct {
	BusinessID             string
	Config                 insights.AnalysisConfig
	IncludeRecommendations bool
}
