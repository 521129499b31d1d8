package reviews

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := &Service{Repo: NewMemoryRepo()}
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, svc
}

func TestAddReviewEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	body := `{"rating": 5, "text": "Great coffee", "publishedAt": "2025-05-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created Review
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.BusinessID != "biz-1" {
		t.Fatalf("unexpected review: %+v", created)
	}
}

func TestAddReviewRejectsBadRating(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/reviews", strings.NewReader(`{"rating": 6}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	errObj, ok := payload["error"].(map[string]any)
	if !ok || errObj["code"] != "validation_error" {
		t.Fatalf("expected validation_error envelope, got %s", resp.Body.String())
	}
}

func TestListReviewsEndpoint(t *testing.T) {
	r, svc := newTestRouter(t)
	for i := 0; i < 3; i++ {
		if _, err := svc.Add(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "biz-1", Review{Rating: 4, Text: "r"}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/reviews?limit=2", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload struct {
		Reviews []Review `json:"reviews"`
		Limit   int      `json:"limit"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Reviews) != 2 || payload.Limit != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
