package ms

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSeriesFixture(t *testing.T, bars []barFixture) *PriceSeries {
	t.Helper()
	path := filepath.Join(t.TempDir(), "F1.dat")
	writePriceFile(t, path, bars)
	s, err := OpenPriceSeries(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPriceSeries_Records(t *testing.T) {
	s := openSeriesFixture(t, threeBars())

	recs, err := s.Records()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, 101.5, recs[0].Open)
	assert.Equal(t, 103.25, recs[0].High)
	assert.Equal(t, 100.75, recs[0].Low)
	assert.Equal(t, 102.0, recs[0].Close)
	assert.Equal(t, 15000.0, recs[0].Volume)
	assert.Equal(t, 120.0, recs[0].OpenInterest)

	// The last bar has no open interest on disk; absent is NaN, not 0.
	assert.True(t, math.IsNaN(recs[2].OpenInterest))

	for i := 1; i < len(recs); i++ {
		assert.False(t, recs[i].Date.Before(recs[i-1].Date), "dates out of order at %d", i)
	}
}

func TestPriceSeries_At(t *testing.T) {
	s := openSeriesFixture(t, threeBars())

	rec, err := s.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 104.25, rec.Close)

	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestPriceSeries_RecordsRestarts(t *testing.T) {
	s := openSeriesFixture(t, threeBars())

	first, err := s.Records()
	require.NoError(t, err)
	second, err := s.Records()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.Equal(t, first[i].Close, second[i].Close)
	}
}

func TestPriceSeries_EmptyFile(t *testing.T) {
	s := openSeriesFixture(t, nil)

	assert.Equal(t, 0, s.Count())
	recs, err := s.Records()
	require.NoError(t, err)
	assert.Empty(t, recs)
}
