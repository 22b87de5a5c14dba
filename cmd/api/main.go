// Package main initializes and starts the movie catalog API server,
// wiring configuration, logging, the persistence store, repositories,
// services and HTTP handlers together.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cinelog/catalog-api/internal/api"
	"github.com/cinelog/catalog-api/internal/api/handler"
	"github.com/cinelog/catalog-api/internal/core/ports"
	"github.com/cinelog/catalog-api/internal/core/service"
	"github.com/cinelog/catalog-api/internal/infrastructure/config"
	"github.com/cinelog/catalog-api/internal/infrastructure/db/jsonfile"
	mongostore "github.com/cinelog/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cinelog/catalog-api/internal/infrastructure/db/redis"
	"github.com/cinelog/catalog-api/internal/infrastructure/queue"
	"github.com/cinelog/catalog-api/internal/infrastructure/repository"
	"github.com/cinelog/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Persistence store ---
	var (
		store  ports.CollectionStore
		checks []handler.DependencyChecker
	)
	switch cfg.Store.Driver {
	case "mongo", "mongodb":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to MongoDB")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		ms := mongostore.NewStore(db)
		store, checks = ms, append(checks, ms)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using MongoDB store")
	case "jsonfile":
		fs := jsonfile.NewStore(cfg.Store.DataDir)
		store, checks = fs, append(checks, fs)
		log.Info().Str("dataDir", cfg.Store.DataDir).Msg("using JSON file store")
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("unknown store driver")
	}

	// --- Optional Redis (login throttling) ---
	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to Redis")
		}
		defer func() { _ = rdb.Close() }()
		limiter = redisdb.NewLoginLimiter(rdb, 0)
		checks = append(checks, redisdb.NewChecker(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(store)
	movieRepo := repository.NewMovieRepository(store)
	commentRepo := repository.NewCommentRepository(store)
	auditRepo := repository.NewAuditRepository(store)

	// --- Services ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build token service")
	}
	authService := service.NewAuthService(userRepo, tokenService, limiter, log)
	movieService := service.NewMovieService(movieRepo, log)
	commentService := service.NewCommentService(commentRepo, log)
	auditService := service.NewAuditService(auditRepo, log)

	// --- Activity-trail dispatcher ---
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Logger:         log,
		TokenVerifier:  tokenService,
		AuthService:    authService,
		MovieService:   movieService,
		CommentService: commentService,
		Audit:          dispatcher,
		HealthChecks:   checks,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
