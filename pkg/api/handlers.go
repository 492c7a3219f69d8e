package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openseries/metastock/pkg/ms"
)

// Server holds the API server state.
type Server struct {
	catalog Catalog
	cache   SeriesCache // nil disables series caching
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server.
func NewServer(catalog Catalog, cache SeriesCache, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		catalog: catalog,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleListSymbols(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	metas, err := s.catalog.Metadata()
	if err != nil {
		s.metrics.RecordDecode("list_symbols", false, time.Since(start))
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordDecode("list_symbols", true, time.Since(start))
	s.metrics.UpdateCatalogStats(len(metas))

	out := make([]SymbolResponse, len(metas))
	for i, m := range metas {
		out[i] = symbolResponse(m)
	}
	sendSuccess(w, out)
}

func (s *Server) handleGetSymbol(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	symbol := chi.URLParam(r, "symbol")

	sec, err := s.catalog.Find(symbol)
	if err != nil {
		s.metrics.RecordDecode("get_symbol", false, time.Since(start))
		if errors.Is(err, ms.ErrNotFound) {
			sendError(w, "Symbol not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer sec.Close()
	s.metrics.RecordDecode("get_symbol", true, time.Since(start))

	sendSuccess(w, symbolResponse(sec.Meta))
}

func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	symbol := chi.URLParam(r, "symbol")

	// refresh=true busts the cached entry and re-decodes from disk.
	refresh := r.URL.Query().Get("refresh") == "true"

	if s.cache != nil && refresh {
		_ = s.cache.Invalidate(symbol)
	}
	if s.cache != nil && !refresh {
		records, hit, err := s.cache.Get(symbol)
		if err != nil {
			// An entry that no longer decodes is dropped, not served.
			_ = s.cache.Invalidate(symbol)
		} else {
			s.metrics.RecordCacheLookup(hit)
			if hit {
				sendSuccess(w, SeriesResponse{
					Symbol:  symbol,
					Count:   len(records),
					Cached:  true,
					Records: records,
				})
				return
			}
		}
	}

	sec, err := s.catalog.Find(symbol)
	if err != nil {
		s.metrics.RecordDecode("get_series", false, time.Since(start))
		if errors.Is(err, ms.ErrNotFound) {
			sendError(w, "Symbol not found", http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer sec.Close()

	records, err := sec.Series.Records()
	if err != nil {
		s.metrics.RecordDecode("get_series", false, time.Since(start))
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordDecode("get_series", true, time.Since(start))

	if s.cache != nil {
		// Cache writes are best-effort; a failure only costs the next
		// request a decode.
		_ = s.cache.Put(symbol, records)
	}

	sendSuccess(w, SeriesResponse{
		Symbol:  symbol,
		Count:   len(records),
		Records: records,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, StatsResponse{
		Directory:     s.catalog.Dir(),
		SymbolCount:   s.catalog.Count(),
		HasExtended:   s.catalog.HasExtended(),
		LegacySymbols: s.catalog.LegacyCount(),
	})
}
