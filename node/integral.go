package node

import (
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/ydom/numrange"
)

// fixedInt holds the value of the integral kinds of 64 bits or less. The
// embedding type fixes the width, and construction guarantees the value is
// in range for it.
type fixedInt struct {
	defaults
	v int64
}

func (n *fixedInt) String() string { return strconv.FormatInt(n.v, 10) }

func (n *fixedInt) FitsByte() bool { return numrange.LongFitsByte(n.v) }
func (n *fixedInt) FitsShort() bool { return numrange.LongFitsShort(n.v) }
func (n *fixedInt) FitsInt() bool { return numrange.LongFitsInt(n.v) }
func (n *fixedInt) FitsLong() bool { return true }

func (n *fixedInt) AsBool(bool) bool { return n.v != 0 }

func (n *fixedInt) AsByte(def int8) int8 {
	if n.FitsByte() {
		return int8(n.v)
	}
	return def
}

func (n *fixedInt) AsShort(def int16) int16 {
	if n.FitsShort() {
		return int16(n.v)
	}
	return def
}

func (n *fixedInt) AsInt(def int32) int32 {
	if n.FitsInt() {
		return int32(n.v)
	}
	return def
}

func (n *fixedInt) AsLong(int64) int64 { return n.v }
func (n *fixedInt) AsBigInt(*big.Int) *big.Int { return big.NewInt(n.v) }
func (n *fixedInt) AsFloat(float32) float32 { return float32(n.v) }
func (n *fixedInt) AsDouble(float64) float64 { return float64(n.v) }
func (n *fixedInt) AsBigDecimal(*apd.Decimal) *apd.Decimal { return apd.New(n.v, 0) }
func (n *fixedInt) AsText(string) string { return n.String() }

// AsTime interprets the value as Unix milliseconds.
func (n *fixedInt) AsTime(time.Time) time.Time { return time.UnixMilli(n.v).UTC() }

// Byte is an 8 bit integer node.
type Byte struct{ fixedInt }

func (*Byte) Kind() Kind { return ByteKind }
func (n *Byte) Value() int8 { return int8(n.v) }
func (n *Byte) Copy() Node { return n }
func (n *Byte) copyWith(map[Node]Node) Node { return n }

// Short is a 16 bit integer node.
type Short struct{ fixedInt }

func (*Short) Kind() Kind { return ShortKind }
func (n *Short) Value() int16 { return int16(n.v) }
func (n *Short) Copy() Node { return n }
func (n *Short) copyWith(map[Node]Node) Node { return n }

// Int is a 32 bit integer node.
type Int struct{ fixedInt }

func (*Int) Kind() Kind { return IntKind }
func (n *Int) Value() int32 { return int32(n.v) }
func (n *Int) Copy() Node { return n }
func (n *Int) copyWith(map[Node]Node) Node { return n }

// Long is a 64 bit integer node.
type Long struct{ fixedInt }

func (*Long) Kind() Kind { return LongKind }
func (n *Long) Value() int64 { return n.v }
func (n *Long) Copy() Node { return n }
func (n *Long) copyWith(map[Node]Node) Node { return n }

// BigInt is an arbitrary precision integer node.
type BigInt struct {
	defaults
	v *big.Int
}

func (*BigInt) Kind() Kind { return BigIntKind }
func (n *BigInt) Copy() Node { return n }
func (n *BigInt) copyWith(map[Node]Node) Node { return n }
func (n *BigInt) String() string { return n.v.String() }

// Value returns a copy of the integer.
func (n *BigInt) Value() *big.Int { return new(big.Int).Set(n.v) }

func (n *BigInt) FitsByte() bool { return numrange.BigFitsByte(n.v) }
func (n *BigInt) FitsShort() bool { return numrange.BigFitsShort(n.v) }
func (n *BigInt) FitsInt() bool { return numrange.BigFitsInt(n.v) }
func (n *BigInt) FitsLong() bool { return numrange.BigFitsLong(n.v) }

func (n *BigInt) AsBool(bool) bool { return n.v.Sign() != 0 }

func (n *BigInt) AsByte(def int8) int8 {
	if n.FitsByte() {
		return int8(n.v.Int64())
	}
	return def
}

func (n *BigInt) AsShort(def int16) int16 {
	if n.FitsShort() {
		return int16(n.v.Int64())
	}
	return def
}

func (n *BigInt) AsInt(def int32) int32 {
	if n.FitsInt() {
		return int32(n.v.Int64())
	}
	return def
}

func (n *BigInt) AsLong(def int64) int64 {
	if n.FitsLong() {
		return n.v.Int64()
	}
	return def
}

func (n *BigInt) AsBigInt(*big.Int) *big.Int { return n.Value() }

func (n *BigInt) AsFloat(float32) float32 {
	f, _ := new(big.Float).SetInt(n.v).Float32()
	return f
}

func (n *BigInt) AsDouble(float64) float64 {
	f, _ := new(big.Float).SetInt(n.v).Float64()
	return f
}

func (n *BigInt) AsBigDecimal(def *apd.Decimal) *apd.Decimal {
	d, _, err := apd.NewFromString(n.v.String())
	if err != nil {
		return def
	}
	return d
}

func (n *BigInt) AsText(string) string { return n.v.String() }

func (n *BigInt) AsTime(def time.Time) time.Time {
	if n.FitsLong() {
		return time.UnixMilli(n.v.Int64()).UTC()
	}
	return def
}

// Integral is implemented by the integral kinds.
type Integral interface {
	Node
	Fitter
	isIntegral()
}

func (*fixedInt) isIntegral() {}
func (*BigInt) isIntegral() {}

var (
	_ Integral = (*Byte)(nil)
	_ Integral = (*Short)(nil)
	_ Integral = (*Int)(nil)
	_ Integral = (*Long)(nil)
	_ Integral = (*BigInt)(nil)
)
