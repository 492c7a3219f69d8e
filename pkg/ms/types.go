package ms

import (
	"time"
)

// SymbolMetadata is one catalog entry, decoded from either index kind.
// Dates are zero (IsZero) when the index carries none.
type SymbolMetadata struct {
	FileNumber uint16
	Symbol     string
	Name       string
	FirstDate  time.Time
	LastDate   time.Time
}

// PriceRecord is one OHLCV bar plus open interest. An absent price
// field (all-zero on disk) surfaces as NaN so it cannot be mistaken
// for a genuine zero; an absent date is the zero time.
type PriceRecord struct {
	Date         time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       float64
	OpenInterest float64
}

// SymbolIndex yields the symbol records of one physical index file.
// The legacy and extended indexes look different on disk but behave
// identically through this interface.
type SymbolIndex interface {
	Count() int
	Read(i int) (SymbolMetadata, error)
	Next() (SymbolMetadata, error)
	Rewind() error
	Close() error
}

// Errors
var (
	ErrNotFound   = &DBError{"not found"}
	ErrOutOfRange = &DBError{"record index out of range"}
)

// DBError represents a database access error.
type DBError struct {
	Message string
}

func (e *DBError) Error() string {
	return e.Message
}
