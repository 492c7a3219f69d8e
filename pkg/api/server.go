// Package api serves a read-only HTTP view of an open Metastock
// catalog: the symbol list, per-symbol metadata, and decoded price
// series.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openseries/metastock/pkg/cache"
	"github.com/openseries/metastock/pkg/ms"
)

// StartServer starts the HTTP server with all routes configured. It
// blocks for the life of the process.
func StartServer(catalog *ms.Catalog, config ServerConfig) error {
	metrics := NewMetrics(prometheus.DefaultRegisterer)

	var seriesCache SeriesCache
	if config.CacheDir != "" {
		c, err := cache.Open(config.CacheDir)
		if err != nil {
			return fmt.Errorf("open series cache: %w", err)
		}
		defer c.Close()
		seriesCache = c
	}

	server := NewServer(catalog, seriesCache, config, metrics)
	r := NewRouter(server, config)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("serving catalog %s (%d symbols) on %s", catalog.Dir(), catalog.Count(), addr)
	log.Fatal(http.ListenAndServe(addr, r))
	return nil
}

// NewRouter wires the chi router: CORS, request IDs, the prometheus
// endpoint, and the API-key protected read routes.
func NewRouter(server *Server, config ServerConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	m := server.metrics
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(m.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Get("/symbols", m.InstrumentHandler("GET", "/api/v1/symbols", server.handleListSymbols))
		r.Get("/symbols/{symbol}", m.InstrumentHandler("GET", "/api/v1/symbols/{symbol}", server.handleGetSymbol))
		r.Get("/symbols/{symbol}/series", m.InstrumentHandler("GET", "/api/v1/symbols/{symbol}/series", server.handleGetSeries))
		r.Get("/stats", m.InstrumentHandler("GET", "/api/v1/stats", server.handleStats))
	})

	return r
}
