package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordLayout_OverflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRecordLayout(8, map[string]FieldSpec{
			"late": {Offset: 6, Length: 4, Kind: FieldUint32},
		})
	})
	assert.Panics(t, func() {
		NewRecordLayout(8, map[string]FieldSpec{
			"empty": {Offset: 0, Length: 0, Kind: FieldUint8},
		})
	})
}

func TestRecordLayout_DecodeTruncated(t *testing.T) {
	_, err := EMaster.Record.Decode(make([]byte, 100))
	require.Error(t, err)
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestRecordLayout_DecodeEMasterRecord(t *testing.T) {
	buf := make([]byte, EMaster.Record.Length)
	buf[2] = 5                                 // filenum
	buf[6] = 7                                 // numfields
	copy(buf[11:], "ES___CCB\x00\x00\x00")     // symbol, NUL padded
	copy(buf[32:], "E-MINI S&P\x00\x00")       // name
	copy(buf[64:], emDateBytes(1982, 10, 15))  // first_date
	copy(buf[72:], emDateBytes(2024, 2, 29))   // last_date

	rec, err := EMaster.Record.Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), rec["filenum"].Uint())
	assert.Equal(t, uint64(7), rec["numfields"].Uint())
	assert.Equal(t, "ES___CCB", rec["symbol"].String())
	assert.Equal(t, "E-MINI S&P", rec["name"].String())
	assert.Equal(t, date(1982, 10, 15), rec["first_date"].Date())
	assert.Equal(t, date(2024, 2, 29), rec["last_date"].Date())
}

func TestRecordLayout_StringTrimQuirk(t *testing.T) {
	// The historical encoder leaves stray 'd'/'a' bytes in string
	// padding; they are trimmed along with NULs and whitespace.
	buf := make([]byte, XMaster.Record.Length)
	copy(buf[1:], "GOLDda\x00\x00")
	copy(buf[16:], " SPOT GOLD \x00")
	copy(buf[108:], xmDateBytes(2001, 1, 2))
	copy(buf[116:], xmDateBytes(2002, 3, 4))
	binary.LittleEndian.PutUint16(buf[65:], 300)

	rec, err := XMaster.Record.Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, "GOLD", rec["symbol"].String())
	assert.Equal(t, "SPOT GOLD", rec["name"].String())
	assert.Equal(t, uint64(300), rec["filenum"].Uint())
}

func TestRecordLayout_PriceHeaderCountCorrection(t *testing.T) {
	// The price header stores record_count one greater than the true
	// count.
	buf := make([]byte, Price.Header.Length)
	binary.LittleEndian.PutUint16(buf[2:], 11)

	rec, err := Price.Header.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), rec[RecordCount].Uint())

	// A stored count of zero clamps rather than wrapping.
	rec, err = Price.Header.Decode(make([]byte, Price.Header.Length))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), rec[RecordCount].Uint())
}

func TestRecordLayout_DecodePriceRecord(t *testing.T) {
	buf := make([]byte, Price.Record.Length)
	copy(buf[0:], datDateBytes(1982, 10, 15))
	copy(buf[4:], encodeMSBin(101.5))
	copy(buf[8:], encodeMSBin(103.25))
	copy(buf[12:], encodeMSBin(100.75))
	copy(buf[16:], encodeMSBin(102))
	copy(buf[20:], encodeMSBin(15000))
	// oi left all-zero: absent, not 0.0

	rec, err := Price.Record.Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, date(1982, 10, 15), rec["date"].Date())
	assert.Equal(t, 101.5, rec["open"].Float())
	assert.Equal(t, 103.25, rec["high"].Float())
	assert.Equal(t, 100.75, rec["low"].Float())
	assert.Equal(t, 102.0, rec["close"].Float())
	assert.Equal(t, 15000.0, rec["volume"].Float())
	assert.True(t, rec["oi"].IsNull())
}

func TestValue_Accessors(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.Equal(t, "", Null.String())
	assert.Equal(t, uint64(42), UintValue(42).Uint())
	assert.Equal(t, "42", UintValue(42).String())
	assert.Equal(t, "1982-10-15", DateValue(date(1982, 10, 15)).String())
	assert.Equal(t, 1.5, FloatValue(1.5).Float())
	assert.False(t, StringValue("").IsNull())
}
