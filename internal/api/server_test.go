package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"landregistry/internal/api"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// redisDown toggles the result of the fake redis health check.
var redisDown atomic.Bool //nolint:gochecknoglobals

// the otel exporter registers on the default prometheus registry, so all
// tests share a single server.
//
//nolint:gochecknoglobals
var (
	serverOnce sync.Once
	server     *http.Server
	serverErr  error
)

func testServer(t *testing.T) http.Handler {
	t.Helper()

	serverOnce.Do(func() {
		server, serverErr = api.NewServer(api.Deps{
			HealthChecks: map[string]api.HealthCheck{
				"postgres": func(context.Context) error { return nil },
				"redis": func(context.Context) error {
					if redisDown.Load() {
						return errors.New("connection refused")
					}

					return nil
				},
			},
		}, api.Options{
			Addr:           ":0",
			RequestTimeout: 5 * time.Second,
			MetricsPath:    "/metrics",
		})
	})
	require.NoError(t, serverErr)

	return server.Handler
}

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHealthz(t *testing.T) {
	type health struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}

	rec := get(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	var body health
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
	require.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, body.Checks)

	redisDown.Store(true)
	t.Cleanup(func() { redisDown.Store(false) })

	rec = get(t, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body = health{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "unavailable", body.Status)
	require.Equal(t, "unavailable", body.Checks["redis"])
	require.Equal(t, "ok", body.Checks["postgres"])
}

func TestSpecsAndDocs(t *testing.T) {
	rec := get(t, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	require.Contains(t, rec.Body.String(), "/land-parcels/{id}/status/{status}:")

	rec = get(t, "/api/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Land Registry API")
}

func TestAPI_UnknownRoute(t *testing.T) {
	rec := get(t, "/api/does-not-exist")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "NOT_FOUND", body.Code)
}

func TestAPI_ProtectedRouteNeedsToken(t *testing.T) {
	rec := get(t, "/api/land-parcels")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	testServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestPprofIndex(t *testing.T) {
	rec := get(t, "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine")
}

func TestMetrics(t *testing.T) {
	// make sure at least one request was counted
	require.Equal(t, http.StatusOK, get(t, "/healthz").Code)

	rec := get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(raw)
	require.True(t, strings.Contains(out, "http_requests_total"), "missing request counter")
	require.Contains(t, out, `route="/healthz"`)
	require.Contains(t, out, "http_server_request_duration_seconds")
}
