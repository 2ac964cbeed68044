package controllers

import (
	"net/http"

	"github.com/jdrosales/playmerch-backend/api/responses"
	"github.com/jdrosales/playmerch-backend/pkg/config"
	"github.com/jdrosales/playmerch-backend/pkg/db"
	pkgerrors "github.com/jdrosales/playmerch-backend/pkg/errors"
	"github.com/jdrosales/playmerch-backend/pkg/logger"
	pkgredis "github.com/jdrosales/playmerch-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PlayMerch-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing stores so the probe fails before traffic
// lands on a pod that cannot serve it.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cache pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PlayMerch-Env", cfg.App.Env)

		checks := map[string]string{
			"database": "up",
			"redis":    "up",
		}
		healthy := true

		if dbP == nil {
			checks["database"] = "unconfigured"
			healthy = false
		} else if err := dbP.Ping(r.Context()); err != nil {
			checks["database"] = "down"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "readiness database ping failed", err)
			}
		}

		if cache == nil {
			checks["redis"] = "unconfigured"
			healthy = false
		} else if err := cache.Ping(r.Context()); err != nil {
			checks["redis"] = "down"
			healthy = false
			if logg != nil {
				logg.Error(r.Context(), "readiness redis ping failed", err)
			}
		}

		if !healthy {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependencies unavailable").WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"status": "ready",
			"checks": checks,
		})
	}
}
