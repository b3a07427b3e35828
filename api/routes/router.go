package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stylehaulhq/stylehaul-backend/api/controllers"
	"github.com/stylehaulhq/stylehaul-backend/api/middleware"
	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	"github.com/stylehaulhq/stylehaul-backend/pkg/db"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	haulsService controllers.HaulsService,
	sharingService controllers.OutfitSharing,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	generatePolicy := middleware.NewRateLimitPolicy(
		"generate",
		cfg.RateLimit.GenerateWindow,
		cfg.RateLimit.GenerateIPLimit,
		cfg.RateLimit.GenerateUserLimit,
	)

	var redisP redis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/outfits/{shareToken}", controllers.SharedOutfit(sharingService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		if redisClient != nil {
			r.Use(middleware.Idempotency(redisClient, logg))
		}

		r.Route("/hauls", func(r chi.Router) {
			r.Get("/", controllers.ListHauls(haulsService, logg))
			r.Post("/", controllers.SaveOutfits(haulsService, logg))
			r.Delete("/{haulId}", controllers.DeleteHaul(haulsService, logg))
			if redisClient != nil {
				r.With(middleware.RateLimit(generatePolicy, redisClient, logg)).Post("/generate", controllers.GenerateHaul(haulsService, logg))
			} else {
				r.Post("/generate", controllers.GenerateHaul(haulsService, logg))
			}
		})
	})

	return r
}
