package ms

import (
	"math"

	"github.com/openseries/metastock/pkg/codec"
)

// PriceSeries reads one symbol's OHLCV file. It carries the same
// sequential/positioned contract as RecordReader, typed to
// PriceRecord.
type PriceSeries struct {
	rr *RecordReader
}

// OpenPriceSeries opens a price file (F<n>.dat or F<n>.mwd).
func OpenPriceSeries(path string) (*PriceSeries, error) {
	rr, err := OpenRecordFile(path, codec.Price)
	if err != nil {
		return nil, err
	}
	return &PriceSeries{rr: rr}, nil
}

// Count returns the number of price records.
func (s *PriceSeries) Count() int {
	return s.rr.Count()
}

// Rewind resets sequential iteration to the first record.
func (s *PriceSeries) Rewind() error {
	return s.rr.Rewind()
}

// Next returns the next price record, or io.EOF when the series is
// exhausted.
func (s *PriceSeries) Next() (PriceRecord, error) {
	rec, err := s.rr.Next()
	if err != nil {
		return PriceRecord{}, err
	}
	return priceFrom(rec), nil
}

// At returns the record at index i; negative indices count from the
// end. The sequential cursor is untouched.
func (s *PriceSeries) At(i int) (PriceRecord, error) {
	rec, err := s.rr.At(i)
	if err != nil {
		return PriceRecord{}, err
	}
	return priceFrom(rec), nil
}

// Records rewinds and reads the whole series into memory, in on-disk
// order (assumed, not verified, to be chronological).
func (s *PriceSeries) Records() ([]PriceRecord, error) {
	if err := s.Rewind(); err != nil {
		return nil, err
	}
	out := make([]PriceRecord, 0, s.Count())
	for i := 0; i < s.Count(); i++ {
		rec, err := s.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close releases the underlying file handle.
func (s *PriceSeries) Close() error {
	return s.rr.Close()
}

func priceFrom(rec codec.Record) PriceRecord {
	return PriceRecord{
		Date:         rec["date"].Date(),
		Open:         floatOrNaN(rec["open"]),
		High:         floatOrNaN(rec["high"]),
		Low:          floatOrNaN(rec["low"]),
		Close:        floatOrNaN(rec["close"]),
		Volume:       floatOrNaN(rec["volume"]),
		OpenInterest: floatOrNaN(rec["oi"]),
	}
}

// floatOrNaN keeps absent fields distinguishable from a real zero.
func floatOrNaN(v codec.Value) float64 {
	if v.IsNull() {
		return math.NaN()
	}
	return v.Float()
}
