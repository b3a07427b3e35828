package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stylehaulhq/stylehaul-backend/api/routes"
	"github.com/stylehaulhq/stylehaul-backend/internal/hauls"
	"github.com/stylehaulhq/stylehaul-backend/internal/styling"
	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	"github.com/stylehaulhq/stylehaul-backend/pkg/db"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/metrics"
	"github.com/stylehaulhq/stylehaul-backend/pkg/migrate"
	"github.com/stylehaulhq/stylehaul-backend/pkg/reasoning"
	"github.com/stylehaulhq/stylehaul-backend/pkg/redis"
	"github.com/stylehaulhq/stylehaul-backend/pkg/search"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	reasoningClient, err := reasoning.NewClient(cfg.OpenAI.APIKey,
		reasoning.WithBaseURL(cfg.OpenAI.BaseURL),
		reasoning.WithModel(cfg.OpenAI.Model),
		reasoning.WithTimeout(cfg.OpenAI.Timeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create reasoning client", err)
		os.Exit(1)
	}

	searchClient, err := search.NewClient(cfg.Search.APIKey,
		search.WithBaseURL(cfg.Search.BaseURL),
		search.WithTimeout(cfg.Search.Timeout),
		search.WithLogger(logg),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create search client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	generationMetrics := metrics.NewGenerationMetrics(registry)

	planner := styling.NewPlanner(reasoningClient, logg, cfg.Styling, cfg.OpenAI.MaxTokens)
	resolver := styling.NewResolver(searchClient, logg, cfg.Styling)
	repo := hauls.NewRepository(dbClient.DB(), logg)
	haulsService := hauls.NewService(repo, planner, resolver, logg, generationMetrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, haulsService, haulsService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
