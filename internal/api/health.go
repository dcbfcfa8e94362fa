package api

import (
	"context"
	"encoding/json"
	"landregistry/pkg/logger"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthz runs all checks concurrently and answers 503 if any fails.
func healthz(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		res := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		var mu sync.Mutex
		var wg sync.WaitGroup
		for name, check := range checks {
			wg.Go(func() {
				state := "ok"
				if err := check(ctx); err != nil {
					logger.Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
					state = "unavailable"
				}

				mu.Lock()
				defer mu.Unlock()
				res.Checks[name] = state
				if state != "ok" {
					res.Status = "unavailable"
				}
			})
		}
		wg.Wait()

		status := http.StatusOK
		if res.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	}
}
