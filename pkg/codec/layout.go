package codec

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// FieldKind selects the decoder applied to a field's byte range.
type FieldKind uint8

const (
	FieldUint8 FieldKind = iota
	FieldUint16
	FieldUint32
	FieldString
	FieldMSFloat
	FieldEMDate
	FieldXMDate
	FieldDATDate
)

// FieldSpec maps one byte range of a record to a typed value.
// Add is applied to unsigned-integer kinds after decoding; the price
// file header stores its record count one greater than the true count
// and corrects it here.
type FieldSpec struct {
	Offset int
	Length int
	Kind   FieldKind
	Add    int
}

// RecordLayout describes one fixed-length binary structure: total
// record length plus the named fields inside it. Layouts are immutable
// after construction.
type RecordLayout struct {
	Length int
	Fields map[string]FieldSpec
}

// NewRecordLayout builds a layout and checks every field against the
// record length. A field overflowing its record is a programming
// error, so violations panic.
func NewRecordLayout(length int, fields map[string]FieldSpec) RecordLayout {
	for name, f := range fields {
		if f.Offset < 0 || f.Length <= 0 || f.Offset+f.Length > length {
			panic(fmt.Sprintf("codec: field %q (%d:%d) overflows %d-byte record", name, f.Offset, f.Length, length))
		}
	}
	return RecordLayout{Length: length, Fields: fields}
}

// Decode maps one raw record onto a fresh Record. The buffer must hold
// at least Length bytes.
func (l RecordLayout) Decode(buf []byte) (Record, error) {
	if len(buf) < l.Length {
		return nil, &FormatError{Reason: fmt.Sprintf("record truncated: %d of %d bytes", len(buf), l.Length)}
	}
	out := make(Record, len(l.Fields))
	for name, f := range l.Fields {
		v, err := decodeField(name, f, buf[f.Offset:f.Offset+f.Length])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// adjust applies a spec's additive correction, clamped at zero so an
// empty price file (stored count 1) decodes to 0, not a wrapped uint.
func adjust(n, add int) uint64 {
	n += add
	if n < 0 {
		n = 0
	}
	return uint64(n)
}

// msTrim is the character set the original encoder leaves as padding:
// NULs, whitespace, and the literal stray bytes 'd' and 'a'. The 'd'
// and 'a' are a quirk of the historical tooling, reproduced exactly.
const msTrim = "\x00 \t\nda"

func decodeField(name string, f FieldSpec, b []byte) (Value, error) {
	switch f.Kind {
	case FieldUint8:
		return UintValue(adjust(int(b[0]), f.Add)), nil
	case FieldUint16:
		return UintValue(adjust(int(binary.LittleEndian.Uint16(b)), f.Add)), nil
	case FieldUint32:
		return UintValue(adjust(int(binary.LittleEndian.Uint32(b)), f.Add)), nil
	case FieldString:
		return StringValue(strings.Trim(string(b), msTrim)), nil
	case FieldMSFloat:
		v, ok := DecodeMSBin(b)
		if !ok {
			return Null, nil
		}
		return FloatValue(v), nil
	case FieldEMDate:
		return decodeEMDate(b), nil
	case FieldXMDate:
		return decodeXMDate(name, b)
	case FieldDATDate:
		return decodeDATDate(b), nil
	default:
		return Null, &FormatError{Field: name, Reason: fmt.Sprintf("unknown field kind %d", f.Kind)}
	}
}

// FileLayout pairs the header layout of a file kind with its repeating
// record layout.
type FileLayout struct {
	Header RecordLayout
	Record RecordLayout
}

// RecordCount is the header field every file kind exposes.
const RecordCount = "record_count"

// EMaster is the legacy 255-slot index: 192-byte header and records.
var EMaster = FileLayout{
	Header: NewRecordLayout(192, map[string]FieldSpec{
		"file_count": {Offset: 0, Length: 2, Kind: FieldUint16},
		RecordCount:  {Offset: 2, Length: 2, Kind: FieldUint16},
	}),
	Record: NewRecordLayout(192, map[string]FieldSpec{
		"filenum":    {Offset: 2, Length: 1, Kind: FieldUint8},
		"numfields":  {Offset: 6, Length: 1, Kind: FieldUint8},
		"symbol":     {Offset: 11, Length: 14, Kind: FieldString},
		"name":       {Offset: 32, Length: 16, Kind: FieldString},
		"first_date": {Offset: 64, Length: 4, Kind: FieldEMDate},
		"last_date":  {Offset: 72, Length: 4, Kind: FieldEMDate},
	}),
}

// XMaster is the extended index for symbols past the legacy capacity:
// 150-byte header and records.
var XMaster = FileLayout{
	Header: NewRecordLayout(150, map[string]FieldSpec{
		RecordCount: {Offset: 10, Length: 2, Kind: FieldUint16},
	}),
	Record: NewRecordLayout(150, map[string]FieldSpec{
		"filenum":    {Offset: 65, Length: 2, Kind: FieldUint16},
		"symbol":     {Offset: 1, Length: 15, Kind: FieldString},
		"name":       {Offset: 16, Length: 46, Kind: FieldString},
		"first_date": {Offset: 108, Length: 4, Kind: FieldXMDate},
		"last_date":  {Offset: 116, Length: 4, Kind: FieldXMDate},
	}),
}

// Price is the per-symbol OHLCV file: 28-byte header and records. The
// header count is stored one high and adjusted on decode.
var Price = FileLayout{
	Header: NewRecordLayout(28, map[string]FieldSpec{
		RecordCount: {Offset: 2, Length: 2, Kind: FieldUint16, Add: -1},
	}),
	Record: NewRecordLayout(28, map[string]FieldSpec{
		"date":   {Offset: 0, Length: 4, Kind: FieldDATDate},
		"open":   {Offset: 4, Length: 4, Kind: FieldMSFloat},
		"high":   {Offset: 8, Length: 4, Kind: FieldMSFloat},
		"low":    {Offset: 12, Length: 4, Kind: FieldMSFloat},
		"close":  {Offset: 16, Length: 4, Kind: FieldMSFloat},
		"volume": {Offset: 20, Length: 4, Kind: FieldMSFloat},
		"oi":     {Offset: 24, Length: 4, Kind: FieldMSFloat},
	}),
}
