package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/cinelog/catalog-api/internal/api/handler"
	appmiddleware "github.com/cinelog/catalog-api/internal/api/middleware"
	"github.com/cinelog/catalog-api/internal/core/domain"
	"github.com/cinelog/catalog-api/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed in cmd/api.
type Dependencies struct {
	Logger         zerolog.Logger
	TokenVerifier  ports.TokenVerifier
	AuthService    ports.AuthService
	MovieService   ports.MovieService
	CommentService ports.CommentService
	Audit          handler.AuditDispatcher
	HealthChecks   []handler.DependencyChecker
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	authRequired := appmiddleware.Auth(deps.TokenVerifier)
	adminOnly := appmiddleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Audit)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Movie routes ---
	movieHandler := handler.NewMovieHandler(deps.MovieService, deps.Audit)
	e.GET("/movies", movieHandler.List)
	e.GET("/movies/:id", movieHandler.Get)
	e.POST("/movies", movieHandler.Create, authRequired, adminOnly)
	e.PUT("/movies/:id", movieHandler.Update, authRequired, adminOnly)
	e.DELETE("/movies/:id", movieHandler.Delete, authRequired, adminOnly)

	// --- Comment routes ---
	commentHandler := handler.NewCommentHandler(deps.CommentService, deps.Audit)
	e.GET("/comments/movie/:movieId", commentHandler.ListByMovie)
	e.POST("/comments", commentHandler.Create, authRequired)
	e.DELETE("/comments/:id", commentHandler.Delete, authRequired)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.HealthChecks...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
