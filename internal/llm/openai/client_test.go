package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reviews-backend/internal/llm"
)

func TestNewClientRequiresModelAndKey(t *testing.T) {
	if _, err := NewClient("key", ""); err == nil {
		t.Fatalf("expected error for missing model")
	}
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatalf("expected error for missing api key")
	}
	if _, err := NewClient("key", "gpt-4o-mini"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecommendParsesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "{\"recommendations\":[{\"title\":\"Respond faster\",\"detail\":\"Reply to negative reviews within a day.\",\"priority\":\"high\"}]}"}}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30}
		}`))
	}))
	defer srv.Close()

	client, err := NewClient("key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.baseURL = srv.URL

	recs, err := client.Recommend(context.Background(), llm.RecommendInput{BusinessName: "Blue Cafe"})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].Title != "Respond faster" || recs[0].Priority != "high" {
		t.Fatalf("unexpected recommendations: %+v", recs)
	}
}

func TestRecommendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit", "type": "rate_limit_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.baseURL = srv.URL

	_, err = client.Recommend(context.Background(), llm.RecommendInput{BusinessName: "Blue Cafe"})
	if err == nil || !strings.Contains(err.Error(), "rate limit") {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}
