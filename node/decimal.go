package node

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/ydom/numrange"
)

// ieee holds the value of Float and Double. bits is 32 or 64 and decides
// how the value is formatted.
type ieee struct {
	defaults
	v    float64
	bits int
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return NaNToken
	case math.IsInf(f, 1):
		return InfToken
	case math.IsInf(f, -1):
		return NegInfToken
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func (n *ieee) String() string { return formatFloat(n.v, n.bits) }

// integral returns the value if it is finite and has no fractional part.
func (n *ieee) integral() (*big.Int, bool) {
	if n.v != math.Trunc(n.v) {
		return nil, false
	}
	return truncFloat(n.v)
}

func (n *ieee) FitsByte() bool {
	v, ok := n.integral()
	return ok && numrange.BigFitsByte(v)
}

func (n *ieee) FitsShort() bool {
	v, ok := n.integral()
	return ok && numrange.BigFitsShort(v)
}

func (n *ieee) FitsInt() bool {
	v, ok := n.integral()
	return ok && numrange.BigFitsInt(v)
}

func (n *ieee) FitsLong() bool {
	v, ok := n.integral()
	return ok && numrange.BigFitsLong(v)
}

func (n *ieee) AsBool(def bool) bool {
	if math.IsNaN(n.v) {
		return def
	}
	return n.v != 0
}

func (n *ieee) AsByte(def int8) int8 {
	if v, ok := truncFloat(n.v); ok && numrange.BigFitsByte(v) {
		return int8(v.Int64())
	}
	return def
}

func (n *ieee) AsShort(def int16) int16 {
	if v, ok := truncFloat(n.v); ok && numrange.BigFitsShort(v) {
		return int16(v.Int64())
	}
	return def
}

func (n *ieee) AsInt(def int32) int32 {
	if v, ok := truncFloat(n.v); ok && numrange.BigFitsInt(v) {
		return int32(v.Int64())
	}
	return def
}

func (n *ieee) AsLong(def int64) int64 {
	if v, ok := truncFloat(n.v); ok && numrange.BigFitsLong(v) {
		return v.Int64()
	}
	return def
}

func (n *ieee) AsBigInt(def *big.Int) *big.Int {
	if v, ok := truncFloat(n.v); ok {
		return v
	}
	return def
}

func (n *ieee) AsFloat(float32) float32 { return float32(n.v) }
func (n *ieee) AsDouble(float64) float64 { return n.v }

func (n *ieee) AsBigDecimal(def *apd.Decimal) *apd.Decimal {
	if d, ok := floatDecimal(n.v, n.bits); ok {
		return d
	}
	return def
}

func (n *ieee) AsText(string) string { return n.String() }

func (n *ieee) AsTime(def time.Time) time.Time {
	if v, ok := truncFloat(n.v); ok && numrange.BigFitsLong(v) {
		return time.UnixMilli(v.Int64()).UTC()
	}
	return def
}

// Float is a 32 bit floating point node.
type Float struct{ ieee }

func (*Float) Kind() Kind { return FloatKind }
func (n *Float) Value() float32 { return float32(n.v) }
func (n *Float) Copy() Node { return n }
func (n *Float) copyWith(map[Node]Node) Node { return n }

// Double is a 64 bit floating point node.
type Double struct{ ieee }

func (*Double) Kind() Kind { return DoubleKind }
func (n *Double) Value() float64 { return n.v }
func (n *Double) Copy() Node { return n }
func (n *Double) copyWith(map[Node]Node) Node { return n }

// BigDecimal is an arbitrary precision decimal node. It is always finite.
type BigDecimal struct {
	defaults
	v *apd.Decimal
}

func (*BigDecimal) Kind() Kind { return BigDecimalKind }
func (n *BigDecimal) Copy() Node { return n }
func (n *BigDecimal) copyWith(map[Node]Node) Node { return n }
func (n *BigDecimal) String() string { return n.v.String() }

// Value returns a copy of the decimal.
func (n *BigDecimal) Value() *apd.Decimal { return new(apd.Decimal).Set(n.v) }

func (n *BigDecimal) AsBool(bool) bool { return !n.v.IsZero() }

func (n *BigDecimal) AsByte(def int8) int8 {
	if v, ok := truncDecimal(n.v); ok && numrange.BigFitsByte(v) {
		return int8(v.Int64())
	}
	return def
}

func (n *BigDecimal) AsShort(def int16) int16 {
	if v, ok := truncDecimal(n.v); ok && numrange.BigFitsShort(v) {
		return int16(v.Int64())
	}
	return def
}

func (n *BigDecimal) AsInt(def int32) int32 {
	if v, ok := truncDecimal(n.v); ok && numrange.BigFitsInt(v) {
		return int32(v.Int64())
	}
	return def
}

func (n *BigDecimal) AsLong(def int64) int64 {
	if v, ok := truncDecimal(n.v); ok && numrange.BigFitsLong(v) {
		return v.Int64()
	}
	return def
}

func (n *BigDecimal) AsBigInt(def *big.Int) *big.Int {
	if v, ok := truncDecimal(n.v); ok {
		return v
	}
	return def
}

func (n *BigDecimal) AsFloat(float32) float32 { return float32(n.AsDouble(0)) }

func (n *BigDecimal) AsDouble(float64) float64 {
	// out of range values parse to +-Inf, which is the closest double
	f, _ := strconv.ParseFloat(n.v.String(), 64)
	return f
}

func (n *BigDecimal) AsBigDecimal(*apd.Decimal) *apd.Decimal { return n.Value() }
func (n *BigDecimal) AsText(string) string { return n.v.String() }

func (n *BigDecimal) AsTime(def time.Time) time.Time {
	if v, ok := truncDecimal(n.v); ok && numrange.BigFitsLong(v) {
		return time.UnixMilli(v.Int64()).UTC()
	}
	return def
}

// Fitter is implemented by the nodes which can report whether their value
// fits a narrower integral width: the integral kinds, Float and Double.
type Fitter interface {
	FitsByte() bool
	FitsShort() bool
	FitsInt() bool
	FitsLong() bool
}

var (
	_ Fitter = (*Float)(nil)
	_ Fitter = (*Double)(nil)
)
