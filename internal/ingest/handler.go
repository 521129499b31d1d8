package ingest

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"reviews-backend/internal/businesses"
	"reviews-backend/internal/reviews"
	"reviews-backend/internal/shared/metrics"
	"reviews-backend/internal/shared/server/respond"
	"reviews-backend/internal/shared/telemetry"
)

const maxImportBytes = 10 << 20

// Handler accepts multipart review-export uploads and imports the parsed
// records through the reviews service.
type Handler struct {
	Businesses businesses.Repo
	Reviews    *reviews.Service
}

// NewHandler constructs a Handler.
func NewHandler(bizRepo businesses.Repo, reviewsSvc *reviews.Service) *Handler {
	return &Handler{Businesses: bizRepo, Reviews: reviewsSvc}
}

// RegisterRoutes attaches the import route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/businesses/:id/reviews/import", h.importReviews)
}

func (h *Handler) importReviews(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "business id is required", nil)
		return
	}
	c.Set("businessId", businessID)

	if _, err := h.Businesses.GetByID(c.Request.Context(), businessID); err != nil {
		if errors.Is(err, businesses.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "business not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load business", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart file field is required", nil)
		return
	}
	if fileHeader.Size > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 10MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer file.Close()

	var parsed []reviews.Review
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	switch ext {
	case ".csv":
		parsed, err = ParseCSV(file)
	case ".json":
		parsed, err = ParseJSON(file)
	case ".pdf":
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
			return
		}
		parsed, err = ParsePDF(data)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "file must be .csv, .json or .pdf", nil)
		return
	}
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "no review records found in file", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to parse review export", nil)
		return
	}

	imported, skipped, err := h.Reviews.AddBatch(c.Request.Context(), businessID, parsed)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store imported reviews", nil)
		return
	}

	metrics.AddReviewsImported(imported)
	telemetry.Info("reviews.import", map[string]any{
		"business_id": businessID,
		"file":        fileHeader.Filename,
		"imported":    imported,
		"skipped":     skipped,
	})
	respond.JSON(c, http.StatusOK, gin.H{
		"imported": imported,
		"skipped":  skipped,
	})
}
