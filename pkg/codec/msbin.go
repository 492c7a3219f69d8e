package codec

import (
	"encoding/binary"
	"math"
)

// DecodeMSBin converts a 4-byte Microsoft Binary Format float to an
// IEEE-754 float64. The second return value is false when the 16-bit
// word holding the exponent byte is zero, which the format defines as
// "no value" rather than 0.0.
//
// MBF stores, little-endian: two low mantissa bytes, then a byte with
// the sign bit and the top 7 mantissa bits, then a biased exponent
// byte. Rebias by 0x0200 (two exponent steps in the packed word) and
// shuffle the sign bit down to rebuild an IEEE-754 single.
func DecodeMSBin(b []byte) (float64, bool) {
	if len(b) < 4 {
		return 0, false
	}
	word := binary.LittleEndian.Uint16(b[2:4])
	if word == 0 {
		return 0, false
	}
	exp := int32(word&0xFF00) - 0x0200
	man := int32(word&0x7F) | int32(word)<<8&0x8000
	man |= exp >> 1

	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(byte(man))<<16 | uint32(byte(man>>8))<<24
	return float64(math.Float32frombits(bits)), true
}
