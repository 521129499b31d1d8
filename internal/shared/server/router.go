package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "reviews-backend/internal/auth"
	"reviews-backend/internal/businesses"
	"reviews-backend/internal/ingest"
	"reviews-backend/internal/reviews"
	"reviews-backend/internal/shared/config"
	"reviews-backend/internal/shared/metrics"
	"reviews-backend/internal/shared/server/middleware"
	"reviews-backend/internal/shared/server/respond"
	"reviews-backend/internal/summaries"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	BusinessesHandler *businesses.Handler
	ReviewsHandler    *reviews.Handler
	IngestHandler     *ingest.Handler
	SummariesHandler  *summaries.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.GoogleAuth.RegisterRoutes(api)
	deps.BusinessesHandler.RegisterRoutes(api)
	deps.ReviewsHandler.RegisterRoutes(api)
	deps.IngestHandler.RegisterRoutes(api)

	// Summary generation walks a business's full review set, so it gets its
	// own bucket on top of whatever the proxy enforces.
	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.NewRateLimiter(nil), middleware.RateLimitRule{Rate: 2, Burst: 10}))
	deps.SummariesHandler.RegisterRoutes(limited)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
