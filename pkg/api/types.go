package api

import (
	"time"

	"github.com/openseries/metastock/pkg/ms"
)

// APIResponse represents a standard API response.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SymbolResponse is one catalog entry as served over HTTP.
type SymbolResponse struct {
	FileNumber uint16 `json:"file_number"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	FirstDate  string `json:"first_date,omitempty"`
	LastDate   string `json:"last_date,omitempty"`
	PriceFile  string `json:"price_file"`
}

// SeriesResponse is a symbol's decoded price series.
type SeriesResponse struct {
	Symbol  string           `json:"symbol"`
	Count   int              `json:"count"`
	Cached  bool             `json:"cached"`
	Records []ms.PriceRecord `json:"records"`
}

// StatsResponse summarizes the open catalog.
type StatsResponse struct {
	Directory     string `json:"directory"`
	SymbolCount   int    `json:"symbol_count"`
	HasExtended   bool   `json:"has_extended_index"`
	LegacySymbols int    `json:"legacy_symbols"`
}

// ServerConfig holds configuration for the API server.
type ServerConfig struct {
	Bind     string
	Port     int
	APIKey   string
	CacheDir string // empty disables the series cache
}

// Catalog is the read surface the handlers need; *ms.Catalog
// implements it.
type Catalog interface {
	Count() int
	LegacyCount() int
	HasExtended() bool
	Dir() string
	Metadata() ([]ms.SymbolMetadata, error)
	Find(symbol string) (*ms.Security, error)
}

// SeriesCache is the optional decoded-series cache; *cache.SeriesCache
// implements it.
type SeriesCache interface {
	Get(symbol string) ([]ms.PriceRecord, bool, error)
	Put(symbol string, records []ms.PriceRecord) error
	Invalidate(symbol string) error
}

func symbolResponse(meta ms.SymbolMetadata) SymbolResponse {
	return SymbolResponse{
		FileNumber: meta.FileNumber,
		Symbol:     meta.Symbol,
		Name:       meta.Name,
		FirstDate:  dateString(meta.FirstDate),
		LastDate:   dateString(meta.LastDate),
		PriceFile:  ms.PriceFileName(meta.FileNumber),
	}
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
