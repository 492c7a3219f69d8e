package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// FormatError reports a structurally invalid field value. The format
// has no checksums, so this is the only corruption signal available.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// calendarDate validates y/m/d and returns the date at UTC midnight.
// time.Date normalizes overflow (month 13 becomes January), so the
// components are checked against what comes back out.
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// floatToDate interprets a decimal-packed float as a date relative to
// 1900: value = (year-1900)*10000 + month*100 + day. Values that do
// not name a real calendar day decode as absent.
func floatToDate(v float64) (time.Time, bool) {
	iv := int(v)
	year := 1900 + iv/10000
	month := (iv % 10000) / 100
	day := iv % 100
	return calendarDate(year, month, day)
}

// FloatToTime interprets a decimal-packed float as an intraday time:
// value = hour*10000 + minute*100. Present in the format for intraday
// series; the daily layouts never reference it.
func FloatToTime(v float64) (hour, minute int) {
	iv := int(v)
	return iv / 10000, (iv % 10000) / 100
}

// decodeEMDate decodes an EMASTER date: an IEEE single holding the
// decimal-packed day count relative to 1900.
func decodeEMDate(b []byte) Value {
	v := math.Float32frombits(binary.LittleEndian.Uint32(b))
	t, ok := floatToDate(float64(v))
	if !ok {
		return Null
	}
	return DateValue(t)
}

// decodeXMDate decodes an XMASTER date: a uint32 whose decimal digits
// read YYYYMMDD. Anything that is not 8 digits naming a real date is
// a format error, not an absent value.
func decodeXMDate(field string, b []byte) (Value, error) {
	v := binary.LittleEndian.Uint32(b)
	if v < 10000000 || v > 99999999 {
		return Null, &FormatError{Field: field, Reason: fmt.Sprintf("date %d is not 8 digits", v)}
	}
	t, ok := calendarDate(int(v/10000), int(v/100%100), int(v%100))
	if !ok {
		return Null, &FormatError{Field: field, Reason: fmt.Sprintf("date %d is not a calendar date", v)}
	}
	return DateValue(t), nil
}

// decodeDATDate decodes a price-record date: the EMASTER arithmetic
// applied to a legacy MBF float.
func decodeDATDate(b []byte) Value {
	v, ok := DecodeMSBin(b)
	if !ok {
		return Null
	}
	t, ok := floatToDate(v)
	if !ok {
		return Null
	}
	return DateValue(t)
}
