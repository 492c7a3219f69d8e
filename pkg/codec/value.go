package codec

import (
	"fmt"
	"time"
)

// Kind identifies which typed payload a Value carries.
type Kind uint8

const (
	// KindNull marks an absent value: an all-zero legacy float or a
	// date that does not name a real calendar day.
	KindNull Kind = iota
	KindUint
	KindString
	KindFloat
	KindDate
)

// Value is one decoded field. It is a closed tagged union over the
// kinds the format can produce; the zero Value is null.
type Value struct {
	kind Kind
	u    uint64
	s    string
	f    float64
	t    time.Time
}

// Null is the absent-value marker.
var Null = Value{}

// UintValue wraps an unsigned integer field.
func UintValue(u uint64) Value { return Value{kind: KindUint, u: u} }

// StringValue wraps a string field.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// FloatValue wraps a float field.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// DateValue wraps a date field.
func DateValue(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the field was absent.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Uint returns the unsigned integer payload, or 0 for other kinds.
func (v Value) Uint() uint64 { return v.u }

// String returns the string payload; other kinds format themselves
// for display.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindUint:
		return fmt.Sprintf("%d", v.u)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindDate:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}

// Float returns the float payload, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Date returns the date payload; the zero time for other kinds.
func (v Value) Date() time.Time { return v.t }

// Record is one decoded binary record: field name to decoded value.
// Records are produced fresh per read and share no state.
type Record map[string]Value
