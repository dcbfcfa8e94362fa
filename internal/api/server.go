// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the land registry service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"landregistry/internal/api/handler/v1handler"
	"landregistry/internal/config"
	"landregistry/pkg/controller"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI document for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	v1handler.Deps

	// HealthChecks are run by /healthz, keyed by dependency name.
	HealthChecks map[string]HealthCheck
}

// NewHandler builds the root handler without the outer middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	router := chi.NewRouter()

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	metrics, err := newHTTPMetrics(mp.Meter("landregistry/internal/api"))
	if err != nil {
		return nil, fmt.Errorf("could not create http instruments: %w", err)
	}
	router.Use(metrics.middleware)

	// prometheus metrics server
	router.Handle(opts.MetricsPath, promhttp.Handler())

	router.Get("/healthz", healthz(deps.HealthChecks))

	// v1 specs file
	router.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	router.Handle("/api/docs/*", v5emb.New(
		"Land Registry API",
		"/specs/v1.yaml",
		"/api/docs/",
	))

	// v1 api
	v1 := v1handler.New(deps.Deps)
	router.Mount("/api", v1.Routes(v1handler.NewSecHandler(deps.Auth)))

	// pprof
	router.Mount(controller.PprofPrefix, controller.PprofMux())

	return router, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) and per-route HTTP metrics
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 document and Swagger UI
// - /api routes backed by v1handler
// - /healthz and pprof endpoints
// It also wraps the router with recovery, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	// panics
	handler = controller.WithRecover(handler)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	// request timeout
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
