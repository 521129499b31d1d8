package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reviews-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reviews service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/businesses/:id/reviews", h.addReview)
	rg.GET("/businesses/:id/reviews", h.listReviews)
}

func (h *Handler) addReview(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "business id is required", nil)
		return
	}
	c.Set("businessId", businessID)

	var body Review
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid review payload", nil)
		return
	}

	review, err := h.Svc.Add(c.Request.Context(), businessID, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			respond.Error(c, http.StatusBadRequest, "validation_error", "rating must be between 1 and 5", []map[string]string{
				{"field": "rating", "issue": "out_of_range"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store review", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, review)
}

func (h *Handler) listReviews(c *gin.Context) {
	businessID := c.Param("id")
	if businessID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "business id is required", nil)
		return
	}
	c.Set("businessId", businessID)

	limit := 50
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	list, err := h.Svc.List(c.Request.Context(), businessID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reviews", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"reviews": list,
		"limit":   limit,
		"offset":  offset,
	})
}
