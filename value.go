package exifcore

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueKind identifies which member of the closed value-type set a
// Value holds. It exists mainly so tests can assert that Directory
// values never escape the set described in the data model.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindUint8
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
	KindUint64
	KindInt64
	KindFloat32
	KindFloat64
	KindRationalUnsigned
	KindRationalSigned
	KindBytes
	KindString
	KindDateTime
	KindVersion
	KindSlice
)

var valueKindNames = [...]string{
	"Invalid",
	"Uint8", "Int8", "Uint16", "Int16", "Uint32", "Int32", "Uint64", "Int64",
	"Float32", "Float64",
	"RationalUnsigned", "RationalSigned",
	"Bytes", "String", "DateTime", "Version", "Slice",
}

// String renders the kind's name, or "ValueKind(N)" for an out-of-range value.
func (k ValueKind) String() string {
	if int(k) >= 0 && int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// ClassifyValue returns the ValueKind of v, or KindInvalid if v is not a
// member of the closed value set.
func ClassifyValue(v any) ValueKind {
	switch v.(type) {
	case uint8:
		return KindUint8
	case int8:
		return KindInt8
	case uint16:
		return KindUint16
	case int16:
		return KindInt16
	case uint32:
		return KindUint32
	case int32:
		return KindInt32
	case uint64:
		return KindUint64
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case Rational[uint32]:
		return KindRationalUnsigned
	case Rational[int32]:
		return KindRationalSigned
	case []byte:
		return KindBytes
	case string:
		return KindString
	case DateTime:
		return KindDateTime
	case Version:
		return KindVersion
	case []any:
		return KindSlice
	default:
		return KindInvalid
	}
}

// Rational is a numerator/denominator pair, preserved verbatim (never
// normalised) per the wire format it was read from. T is int32 for
// SRATIONAL and uint32 for RATIONAL.
//
// This is a lightweight stand-in for math/big.Rat, modelled on the
// rat[T] helper the teacher keeps for the same reason: allocation-free
// rational values for the common one-entry-per-tag case.
type Rational[T int32 | uint32] struct {
	num T
	den T
}

// NewRational returns a Rational with num and den preserved exactly as given.
func NewRational[T int32 | uint32](num, den T) Rational[T] {
	return Rational[T]{num: num, den: den}
}

// Num returns the numerator.
func (r Rational[T]) Num() T { return r.num }

// Den returns the denominator.
func (r Rational[T]) Den() T { return r.den }

// Float64 returns the floating point value of the rational. It returns
// +Inf (or -Inf, or NaN for 0/0) if the denominator is zero, rather than
// panicking -- malformed files commonly carry a zero denominator.
func (r Rational[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// String renders "num/den", or just "num" when den is 1.
func (r Rational[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// Version is a 3- or 4-component version tuple, e.g. a Reconyx
// firmware version. EXIF's "0231"-style ExifVersion tag is not
// converted to a Version; it stays as its raw UNDEFINED bytes.
type Version struct {
	Components []int
}

func (v Version) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// DateTime is a composite date/time value. Raw preserves the
// as-decoded text (useful when Valid is false, e.g. a Reconyx block
// with an out-of-range field); Time is meaningful only when Valid.
type DateTime struct {
	Raw   string
	Time  time.Time
	Valid bool
}
