package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/inkworks/contentforge/docs"
	"github.com/inkworks/contentforge/internal/api/handler"
	"github.com/inkworks/contentforge/internal/api/middleware"
	"github.com/inkworks/contentforge/internal/core/service"
	"github.com/inkworks/contentforge/internal/infrastructure/config"
	mongodb "github.com/inkworks/contentforge/internal/infrastructure/db/mongo"
	redisdb "github.com/inkworks/contentforge/internal/infrastructure/db/redis"
	"github.com/inkworks/contentforge/internal/infrastructure/provider/openai"
)

// Dependencies carries the process-scoped resource handles created at
// startup. Redis is optional: a nil client disables the response cache.
type Dependencies struct {
	Cfg   *config.Config
	DB    *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.Cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStore(rate.Limit(deps.Cfg.RateLimit)),
	))
	e.Use(echoprometheus.NewMiddleware("contentforge"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	postRepo := mongodb.NewPostRepository(deps.DB)

	tokenService := service.NewTokenService(deps.Cfg.JWTSecret, deps.Cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, deps.Log)

	generator := openai.NewClient(openai.Config{
		APIKey:    deps.Cfg.OpenAI.APIKey,
		BaseURL:   deps.Cfg.OpenAI.BaseURL,
		Models:    deps.Cfg.OpenAI.Models,
		MaxTokens: deps.Cfg.OpenAI.MaxTokens,
		Timeout:   deps.Cfg.OpenAI.Timeout,
	}, deps.Log)
	generationService := service.NewGenerationService(generator, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	generateHandler := handler.NewGenerateHandler(generationService)

	requireAuth := middleware.RequireAuth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	var cacheStore middleware.ResponseCacheStore
	if deps.Redis != nil {
		cacheStore = redisdb.NewResponseCache(deps.Redis, deps.Cfg.Redis.CacheTTL)
	}
	cached := middleware.Cache(cacheStore, deps.Log)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Post routes ---
	posts := e.Group("/posts")
	posts.POST("/save", postHandler.Save, requireAuth)
	posts.GET("/user", postHandler.ListMine, requireAuth)
	// Single-post reads are public by design (shareable links); the response
	// does not depend on the caller, so it is safe to cache.
	posts.GET("/:id", postHandler.Get, optionalAuth, cached)
	posts.PUT("/:id", postHandler.Update, requireAuth)
	posts.DELETE("/:id", postHandler.Delete, requireAuth)

	// --- Generation ---
	e.POST("/generate", generateHandler.Generate, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
