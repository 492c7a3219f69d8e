package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeMSBin is the test-side inverse of DecodeMSBin: it packs an
// IEEE single back into the MBF byte layout.
func encodeMSBin(f float32) []byte {
	if f == 0 {
		return []byte{0, 0, 0, 0}
	}
	bits := math.Float32bits(f)
	high := uint16(bits >> 16)
	exp := high >> 7 & 0xFF
	word := (exp+2)<<8 | (high&0x8000)>>8 | high&0x7F
	return []byte{byte(bits), byte(bits >> 8), byte(word), byte(word >> 8)}
}

func TestDecodeMSBin_KnownFixtures(t *testing.T) {
	// Canonical MBF single-precision encodings, byte-for-byte.
	fixtures := []struct {
		name string
		in   []byte
		want float64
	}{
		{"one", []byte{0x00, 0x00, 0x00, 0x81}, 1.0},
		{"minus_one", []byte{0x00, 0x00, 0x80, 0x81}, -1.0},
		{"half", []byte{0x00, 0x00, 0x00, 0x80}, 0.5},
		{"two", []byte{0x00, 0x00, 0x00, 0x82}, 2.0},
		{"one_point_five", []byte{0x00, 0x00, 0x40, 0x81}, 1.5},
		{"hundred", []byte{0x00, 0x00, 0x48, 0x87}, 100.0},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			got, ok := DecodeMSBin(fx.in)
			require.True(t, ok)
			assert.Equal(t, fx.want, got)
		})
	}
}

func TestDecodeMSBin_NoValue(t *testing.T) {
	// A zero exponent word means "no value", not the number zero.
	v, ok := DecodeMSBin([]byte{0x00, 0x00, 0x00, 0x00})
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)

	// Low mantissa bytes set but exponent word zero is still absent.
	v, ok = DecodeMSBin([]byte{0xFF, 0xFF, 0x00, 0x00})
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestDecodeMSBin_ShortInput(t *testing.T) {
	_, ok := DecodeMSBin([]byte{0x00, 0x00})
	assert.False(t, ok)
}

func TestDecodeMSBin_RoundTrip(t *testing.T) {
	values := []float32{1, -1, 0.25, 3.140625, 42.5, 821015, 1999.99, -273.15, 1e6}

	for _, want := range values {
		got, ok := DecodeMSBin(encodeMSBin(want))
		require.True(t, ok, "value %g", want)
		assert.InDelta(t, float64(want), got, math.Abs(float64(want))*1e-6)
	}
}

func TestEncodeMSBin_MatchesKnownBytes(t *testing.T) {
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x81}, encodeMSBin(1.0))
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x81}, encodeMSBin(-1.0))
	assert.Equal(t, []byte{0x00, 0x00, 0x48, 0x87}, encodeMSBin(100.0))
}

func TestDecodeMSBin_ExactMantissa(t *testing.T) {
	// Whole numbers inside the 24-bit mantissa range decode exactly,
	// which the date arithmetic depends on.
	b := encodeMSBin(821015)
	got, ok := DecodeMSBin(b)
	require.True(t, ok)
	assert.Equal(t, 821015.0, got)
}
