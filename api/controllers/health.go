package controllers

import (
	"net/http"

	"github.com/stylehaulhq/stylehaul-backend/api/responses"
	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	"github.com/stylehaulhq/stylehaul-backend/pkg/db"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-StyleHaul-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-StyleHaul-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				checks["database"] = err.Error()
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness database check failed", err)
				}
			} else {
				checks["database"] = "ok"
			}
		}

		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				checks["redis"] = err.Error()
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness redis check failed", err)
				}
			} else {
				checks["redis"] = "ok"
			}
		}

		if !healthy {
			writeReadiness(w, http.StatusServiceUnavailable, "degraded", checks)
			return
		}
		writeReadiness(w, http.StatusOK, "ready", checks)
	}
}

func writeReadiness(w http.ResponseWriter, status int, state string, checks map[string]string) {
	responses.WriteSuccessStatus(w, status, map[string]any{
		"status": state,
		"checks": checks,
	})
}
