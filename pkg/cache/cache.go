// Package cache holds decoded price series in a pebble store keyed by
// symbol so repeated API reads skip re-decoding the binary files.
package cache

import (
	"encoding/json"

	"github.com/cockroachdb/pebble"

	"github.com/openseries/metastock/pkg/ms"
)

// SeriesCache is a pebble-backed symbol -> decoded-series cache. The
// cache is advisory: a miss just means the caller decodes from disk.
type SeriesCache struct {
	db *pebble.DB
}

// Open opens (or creates) a cache at path.
func Open(path string) (*SeriesCache, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &SeriesCache{db: db}, nil
}

// Put stores a symbol's decoded records.
func (c *SeriesCache) Put(symbol string, records []ms.PriceRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return c.db.Set([]byte(symbol), data, pebble.NoSync)
}

// Get returns a symbol's cached records; ok is false on a miss.
func (c *SeriesCache) Get(symbol string) ([]ms.PriceRecord, bool, error) {
	data, closer, err := c.db.Get([]byte(symbol))
	if err == pebble.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()

	var records []ms.PriceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, false, err
	}
	return records, true, nil
}

// Invalidate drops a symbol's cached series.
func (c *SeriesCache) Invalidate(symbol string) error {
	return c.db.Delete([]byte(symbol), pebble.NoSync)
}

// Close closes the underlying store.
func (c *SeriesCache) Close() error {
	return c.db.Close()
}
