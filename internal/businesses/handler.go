package businesses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviews-backend/internal/shared/server/middleware"
	"reviews-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the businesses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches business routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/businesses", h.createBusiness)
	rg.GET("/businesses", h.listBusinesses)
	rg.GET("/businesses/:id", h.getBusiness)
}

func (h *Handler) createBusiness(c *gin.Context) {
	var body Business
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid business payload", nil)
		return
	}

	ownerID := middleware.UserIDFromContext(c)
	created, err := h.Svc.Create(c.Request.Context(), ownerID, body)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidName):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", []map[string]string{
				{"field": "name", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create business", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) getBusiness(c *gin.Context) {
	id := c.Param("id")
	c.Set("businessId", id)

	b, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "business not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load business", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, b)
}

func (h *Handler) listBusinesses(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)
	list, err := h.Svc.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list businesses", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"businesses": list})
}
