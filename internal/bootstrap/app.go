// Package bootstrap builds the application graph: config, storage,
// services, handlers, and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "reviews-backend/internal/auth"
	"reviews-backend/internal/businesses"
	"reviews-backend/internal/ingest"
	"reviews-backend/internal/insights"
	"reviews-backend/internal/llm"
	openai "reviews-backend/internal/llm/openai"
	"reviews-backend/internal/reviews"
	"reviews-backend/internal/shared/config"
	"reviews-backend/internal/shared/server"
	"reviews-backend/internal/shared/storage/db"
	"reviews-backend/internal/summaries"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	BusinessesRepo businesses.Repo
	ReviewsRepo    reviews.Repo

	BusinessesService *businesses.Service
	ReviewsService    *reviews.Service
	SummariesService  *summaries.Service
	Engine            *insights.Engine
	LLM               llm.Client

	BusinessesHandler *businesses.Handler
	ReviewsHandler    *reviews.Handler
	IngestHandler     *ingest.Handler
	SummariesHandler  *summaries.Handler
	GoogleAuth        *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		BusinessesHandler: app.BusinessesHandler,
		ReviewsHandler:    app.ReviewsHandler,
		IngestHandler:     app.IngestHandler,
		SummariesHandler:  app.SummariesHandler,
		GoogleAuth:        app.GoogleAuth,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	var bizRepo businesses.Repo
	var revRepo reviews.Repo
	if app.DB != nil {
		bizRepo = &businesses.PGRepo{DB: app.DB}
		revRepo = &reviews.PGRepo{DB: app.DB}
	} else {
		bizRepo = businesses.NewMemoryRepo()
		revRepo = reviews.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && app.Config.OpenAIAPIKey != "" && app.Config.LLMModel != "" {
		openaiClient, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	} else if app.Config.LLMProvider != "" {
		log.Printf("bootstrap: LLM provider %q not fully configured; recommendations disabled", app.Config.LLMProvider)
	}

	engine := insights.NewEngine(insights.NewCache(app.Config.SummaryCacheTTL, nil), nil)

	bizSvc := &businesses.Service{Repo: bizRepo}
	revSvc := &reviews.Service{Repo: revRepo}
	sumSvc := &summaries.Service{
		Businesses: bizRepo,
		Reviews:    revRepo,
		Engine:     engine,
		LLM:        llmClient,
	}

	app.BusinessesRepo = bizRepo
	app.ReviewsRepo = revRepo
	app.BusinessesService = bizSvc
	app.ReviewsService = revSvc
	app.SummariesService = sumSvc
	app.Engine = engine
	app.LLM = llmClient
	app.BusinessesHandler = businesses.NewHandler(bizSvc)
	app.ReviewsHandler = reviews.NewHandler(revSvc)
	app.IngestHandler = ingest.NewHandler(bizRepo, revSvc)
	app.SummariesHandler = summaries.NewHandler(sumSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
