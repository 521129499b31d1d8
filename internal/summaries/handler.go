package summaries

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reviews-backend/internal/businesses"
	"reviews-backend/internal/export"
	"reviews-backend/internal/insights"
	"reviews-backend/internal/shared/server/respond"
	"reviews-backend/internal/shared/util"
)

const customDateLayout = "2006-01-02"

// Handler wires HTTP handlers to the summaries service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches summary routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/businesses/:id/summary", h.getSummary)
	rg.GET("/businesses/:id/summary/export", h.exportSummary)
}

func (h *Handler) getSummary(c *gin.Context) {
	businessID := c.Param("id")
	c.Set("businessId", businessID)

	cfg, err := configFromQuery(c)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	summary, genErr := h.Svc.Generate(c.Request.Context(), Request{
		BusinessID:             businessID,
		Config:                 cfg,
		IncludeRecommendations: c.Query("includeRecommendations") == "true",
	})
	if genErr != nil {
		h.respondError(c, genErr)
		return
	}

	// Summaries are content-addressed: identical review sets and configs
	// produce identical payloads, so the fingerprint doubles as an ETag.
	if summary.Data != nil {
		etag := `"` + util.HashKey(fmt.Sprintf("%s|%s|%s|%d",
			summary.BusinessID,
			summary.Data.TimePeriod.TimePeriod,
			summary.Data.GeneratedAt.Format(time.RFC3339),
			summary.Data.PerformanceMetrics.TotalReviews,
		)) + `"`
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
	}

	respond.JSON(c, http.StatusOK, summary)
}

func (h *Handler) exportSummary(c *gin.Context) {
	businessID := c.Param("id")
	c.Set("businessId", businessID)

	cfg, err := configFromQuery(c)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	summary, genErr := h.Svc.Generate(c.Request.Context(), Request{
		BusinessID: businessID,
		Config:     cfg,
	})
	if genErr != nil {
		h.respondError(c, genErr)
		return
	}
	if summary.Data == nil {
		respond.Error(c, http.StatusNotFound, "no_data", "no reviews to analyze", nil)
		return
	}

	format := export.Format(c.DefaultQuery("format", "json"))
	payload, contentType, err := export.Render(format, *summary.Data)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "format must be json or csv", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export summary", nil)
		return
	}

	filename, err := util.SanitizeFileName(fmt.Sprintf("summary-%s.%s", businessID, format))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid business id", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, businesses.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "business not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate summary", nil)
	}
}

func configFromQuery(c *gin.Context) (insights.AnalysisConfig, error) {
	cfg := insights.AnalysisConfig{
		TimePeriod:              insights.TimePeriod(c.DefaultQuery("timePeriod", string(insights.PeriodAll))),
		ComparisonPeriod:        insights.ComparisonPeriod(c.DefaultQuery("comparison", string(insights.ComparePrevious))),
		IncludeThematicAnalysis: c.DefaultQuery("includeThemes", "true") != "false",
		IncludeActionItems:      c.DefaultQuery("includeActionItems", "true") != "false",
		IncludeStaffAnalysis:    c.Query("includeStaff") == "true",
	}

	switch cfg.TimePeriod {
	case insights.PeriodAll, insights.PeriodLast30Days, insights.PeriodLast90Days,
		insights.PeriodLast6Months, insights.PeriodLast12Months:
	case insights.PeriodCustom:
		start, err := time.Parse(customDateLayout, c.Query("start"))
		if err != nil {
			return insights.AnalysisConfig{}, fmt.Errorf("custom period requires start=YYYY-MM-DD")
		}
		end, err := time.Parse(customDateLayout, c.Query("end"))
		if err != nil {
			return insights.AnalysisConfig{}, fmt.Errorf("custom period requires end=YYYY-MM-DD")
		}
		if !end.After(start) {
			return insights.AnalysisConfig{}, fmt.Errorf("custom period end must be after start")
		}
		cfg.CustomRange = &insights.DateRange{Start: start.UTC(), End: end.UTC()}
	default:
		return insights.AnalysisConfig{}, fmt.Errorf("unknown timePeriod %q", cfg.TimePeriod)
	}

	switch cfg.ComparisonPeriod {
	case insights.ComparePrevious, insights.CompareYearOverYear, insights.CompareNone:
	default:
		return insights.AnalysisConfig{}, fmt.Errorf("unknown comparison %q", cfg.ComparisonPeriod)
	}

	return cfg, nil
}
