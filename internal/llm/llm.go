// Package llm abstracts LLM providers used to turn computed review
// analytics into prose recommendations.
package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for recommendation generation.
type Client interface {
	Recommend(ctx context.Context, input RecommendInput) ([]Recommendation, error)
}

// RecommendInput carries the computed analytics an LLM turns into advice.
type RecommendInput struct {
	BusinessName   string
	Industry       string
	HealthScore    int
	AverageRating  float64
	ResponseRate   float64
	AttentionAreas []string
	TopThemes      []string
}

// Recommendation is one piece of actionable advice for the business owner.
type Recommendation struct {
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"`
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is used when no provider is configured. Summary
// generation treats its error as "no AI recommendations" rather than a
// failure.
type PlaceholderClient struct{}

// Recommend returns ErrNotConfigured.
func (PlaceholderClient) Recommend(ctx context.Context, input RecommendInput) ([]Recommendation, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
