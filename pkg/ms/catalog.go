package ms

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	emasterName = "emaster"
	xmasterName = "xmaster"

	// xmasterSplit routes combined indices: below it the legacy index
	// answers, at or above it the extended index answers after
	// subtracting xmasterBase. The historical tooling hard-codes the
	// 255-slot legacy capacity here instead of the emaster's actual
	// record count; an emaster holding fewer than 255 records next to
	// an xmaster would make the two boundaries diverge. Kept verbatim
	// so combined indices resolve exactly as they always have.
	xmasterSplit = 256
	xmasterBase  = 255
)

// Catalog presents the legacy index and the optional extended index as
// one contiguous symbol space and resolves each symbol to its price
// file.
//
// The index readers share mutable cursors and file offsets, so the
// catalog serializes every index access; one instance may be shared
// across goroutines. The securities it hands out each own their price
// stream and carry the usual one-goroutine-per-reader contract.
type Catalog struct {
	mu      sync.Mutex
	dir     string
	emaster SymbolIndex
	xmaster SymbolIndex // nil when the xmaster file is absent
	count   int
}

// Security is one catalog entry with its price series opened.
type Security struct {
	Meta   SymbolMetadata
	Series *PriceSeries
}

// Close releases the security's price file handle.
func (s *Security) Close() error {
	return s.Series.Close()
}

// OpenCatalog opens a database directory. The emaster file is
// mandatory; the xmaster file is opened only when present. A missing
// directory or emaster fails with ErrNotFound.
func OpenCatalog(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: database directory %s", ErrNotFound, dir)
	}

	em, err := OpenEMaster(filepath.Join(dir, emasterName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s has no emaster index", ErrNotFound, dir)
		}
		return nil, err
	}

	c := &Catalog{dir: dir, emaster: em, count: em.Count()}

	xmPath := filepath.Join(dir, xmasterName)
	if _, err := os.Stat(xmPath); err == nil {
		xm, err := OpenXMaster(xmPath)
		if err != nil {
			em.Close()
			return nil, err
		}
		c.xmaster = xm
		c.count += xm.Count()
	}
	return c, nil
}

// Count returns the combined record count of both indexes.
func (c *Catalog) Count() int {
	return c.count
}

// Dir returns the database directory the catalog reads from.
func (c *Catalog) Dir() string {
	return c.dir
}

// LegacyCount returns the record count of the legacy index alone.
func (c *Catalog) LegacyCount() int {
	return c.emaster.Count()
}

// HasExtended reports whether an extended index was present at open.
func (c *Catalog) HasExtended() bool {
	return c.xmaster != nil
}

// At opens the security at combined index i. Negative indices count
// from the end of the combined space.
func (c *Catalog) At(i int) (*Security, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, err := clampIndex(i, c.count)
	if err != nil {
		return nil, err
	}
	var meta SymbolMetadata
	if i < xmasterSplit {
		meta, err = c.emaster.Read(i)
	} else if c.xmaster == nil {
		return nil, fmt.Errorf("%w: index %d needs an extended index", ErrOutOfRange, i)
	} else {
		meta, err = c.xmaster.Read(i - xmasterBase)
	}
	if err != nil {
		return nil, err
	}
	return c.Open(meta)
}

// Open resolves a symbol's file number to its price file in the
// catalog directory and opens the series.
func (c *Catalog) Open(meta SymbolMetadata) (*Security, error) {
	series, err := OpenPriceSeries(filepath.Join(c.dir, PriceFileName(meta.FileNumber)))
	if err != nil {
		return nil, err
	}
	return &Security{Meta: meta, Series: series}, nil
}

// Rewind restarts catalog iteration from the first legacy record.
func (c *Catalog) Rewind() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rewind()
}

func (c *Catalog) rewind() error {
	if err := c.emaster.Rewind(); err != nil {
		return err
	}
	if c.xmaster != nil {
		return c.xmaster.Rewind()
	}
	return nil
}

// Next yields the next security in combined order, legacy records
// first, then extended records. It returns io.EOF when both indexes
// are exhausted; each yielded security owns an open price series.
func (c *Catalog) Next() (*Security, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	meta, err := c.emaster.Next()
	if err == io.EOF && c.xmaster != nil {
		meta, err = c.xmaster.Next()
	}
	if err != nil {
		return nil, err
	}
	return c.Open(meta)
}

// Metadata rewinds and reads every index record without opening any
// price files.
func (c *Catalog) Metadata() ([]SymbolMetadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metadata()
}

func (c *Catalog) metadata() ([]SymbolMetadata, error) {
	if err := c.rewind(); err != nil {
		return nil, err
	}
	out := make([]SymbolMetadata, 0, c.count)
	for _, idx := range c.indexes() {
		for {
			meta, err := idx.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			out = append(out, meta)
		}
	}
	return out, nil
}

// Symbols lists every ticker in combined order.
func (c *Catalog) Symbols() ([]string, error) {
	metas, err := c.Metadata()
	if err != nil {
		return nil, err
	}
	syms := make([]string, len(metas))
	for i, m := range metas {
		syms[i] = m.Symbol
	}
	return syms, nil
}

// Find opens the security whose ticker matches symbol exactly.
func (c *Catalog) Find(symbol string) (*Security, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	metas, err := c.metadata()
	if err != nil {
		return nil, err
	}
	for _, m := range metas {
		if m.Symbol == symbol {
			return c.Open(m)
		}
	}
	return nil, fmt.Errorf("%w: symbol %q", ErrNotFound, symbol)
}

// Close releases both index file handles.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.emaster.Close()
	if c.xmaster != nil {
		if xerr := c.xmaster.Close(); err == nil {
			err = xerr
		}
	}
	return err
}

func (c *Catalog) indexes() []SymbolIndex {
	if c.xmaster == nil {
		return []SymbolIndex{c.emaster}
	}
	return []SymbolIndex{c.emaster, c.xmaster}
}

// PriceFileName maps a file number to its on-disk container name:
// numbers below 256 live in F<n>.dat, numbers from the extended index
// in F<n>.mwd.
func PriceFileName(fileNumber uint16) string {
	ext := ".dat"
	if fileNumber >= 256 {
		ext = ".mwd"
	}
	return fmt.Sprintf("F%d%s", fileNumber, ext)
}
