// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes an Explorer session over HTTP as JSON and chart
// images, with Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/observability"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Defaults for ServerConfig fields left unset.
const (
	DefaultAddr            = ":8080"
	DefaultMetricsPath     = "/metrics"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	maxPageRows = 100
)

// Server serves one Explorer.
type Server struct {
	cfg      types.ServerConfig
	chartCfg types.ChartConfig
	exp      *explorer.Explorer
	log      zerolog.Logger
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
}

// New builds a Server. Metrics are registered on reg; pass a fresh
// prometheus.Registry in tests.
func New(cfg types.ServerConfig, chartCfg types.ChartConfig, exp *explorer.Explorer, log zerolog.Logger, reg *prometheus.Registry) *Server {
	cfg = withDefaults(cfg)
	m := observability.NewMetrics("paper_explorer", reg)
	m.DatasetRows.Set(float64(exp.Total()))
	if exp.LoadErr() != nil {
		m.DatasetLoadFailures.Inc()
	}
	return &Server{
		cfg:      cfg,
		chartCfg: chartCfg,
		exp:      exp,
		log:      log,
		metrics:  m,
		gatherer: reg,
	}
}

func withDefaults(cfg types.ServerConfig) types.ServerConfig {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = DefaultMetricsPath
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return cfg
}

// Router returns the HTTP handler with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Handle(s.cfg.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dataset", s.handleDataset)
		r.Get("/papers", s.handlePapers)
		r.Get("/charts/papers-per-year", s.handlePapersPerYear)
		r.Get("/charts/top-journals", s.handleTopJournals)
		r.Get("/charts/{name}.{format}", s.handleChartImage)
		r.Get("/search", s.handleSearch)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Int("rows", s.exp.Total()).Msg("server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// instrument records request count and latency keyed by the chi route
// pattern, so path parameters do not explode label cardinality.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		s.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())

		s.log.Debug().
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
