package summaries

import (
	"context"
	"errors"

	"reviews-backend/internal/businesses"
	"reviews-backend/internal/insights"
	"reviews-backend/internal/llm"
	"reviews-backend/internal/reviews"
	"reviews-backend/internal/shared/metrics"
	"reviews-backend/internal/shared/telemetry"
)

// Service orchestrates summary generation: it loads the review set, runs the
// analysis engine, and optionally asks the configured LLM for prose
// recommendations on top of the computed metrics.
type Service struct {
	Businesses businesses.Repo
	Reviews    reviews.Repo
	Engine     *insights.Engine
	LLM        llm.Client
}

// Generate computes the summary for one business. An empty review set is not
// an error at this layer; it produces a no_data envelope.
func (s *Service) Generate(ctx context.Context, req Request) (Summary, error) {
	business, err := s.Businesses.GetByID(ctx, req.BusinessID)
	if err != nil {
		return Summary{}, err
	}

	revs, err := s.Reviews.AllByBusiness(ctx, req.BusinessID)
	if err != nil {
		return Summary{}, err
	}

	started := metrics.NowMillis()
	data, err := s.Engine.Generate(revs, req.Config)
	if errors.Is(err, insights.ErrNoReviews) {
		metrics.IncSummaryNoData()
		return Summary{
			BusinessID:   business.ID,
			BusinessName: business.Name,
			Status:       "no_data",
			Message:      "no reviews to analyze",
		}, nil
	}
	if err != nil {
		metrics.IncSummaryFailed()
		return Summary{}, err
	}
	metrics.IncSummaryGenerated()
	metrics.ObserveSummaryDurationMs(metrics.NowMillis() - started)

	summary := Summary{
		BusinessID:   business.ID,
		BusinessName: business.Name,
		Status:       "ok",
		Data:         &data,
	}

	if req.IncludeRecommendations && s.LLM != nil {
		summary.Recommendations = s.recommend(ctx, business, data)
	}
	return summary, nil
}

// recommend is best-effort: an unconfigured or failing LLM degrades to a
// summary without recommendations instead of failing the request.
func (s *Service) recommend(ctx context.Context, business businesses.Business, data insights.AnalysisSummaryData) []llm.Recommendation {
	input := llm.RecommendInput{
		BusinessName:  business.Name,
		Industry:      business.Industry,
		HealthScore:   data.HealthScore.Overall,
		AverageRating: data.RatingAnalysis.Average.Current,
		ResponseRate:  data.ResponseAnalytics.ResponseRate,
	}
	if data.ThematicAnalysis != nil {
		for _, area := range data.ThematicAnalysis.AttentionAreas {
			input.AttentionAreas = append(input.AttentionAreas, area.Theme)
		}
		for _, cat := range data.ThematicAnalysis.TopCategories {
			input.TopThemes = append(input.TopThemes, cat.Name)
		}
	}

	recs, err := s.LLM.Recommend(ctx, input)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			telemetry.Warn("summary.recommend.failed", map[string]any{
				"business_id": business.ID,
				"error":       err.Error(),
			})
		}
		return nil
	}
	return recs
}
