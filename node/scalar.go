package node

import (
	"encoding/base64"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/signadot/ydom/numrange"
)

// Null is the node for an explicitly empty value. There is exactly one.
type Null struct{ defaults }

var nullNode = &Null{}

// NullNode returns the null singleton.
func NullNode() *Null { return nullNode }

func (*Null) Kind() Kind { return NullKind }
func (*Null) IsNull() bool { return true }
func (n *Null) Copy() Node { return n }
func (n *Null) copyWith(map[Node]Node) Node { return n }
func (*Null) String() string { return "null" }

// Bool is a boolean node. There are exactly two, see True and False.
type Bool struct {
	defaults
	v bool
}

var (
	trueNode  = &Bool{v: true}
	falseNode = &Bool{v: false}
)

func True() *Bool  { return trueNode }
func False() *Bool { return falseNode }

func boolNode(v bool) *Bool {
	if v {
		return trueNode
	}
	return falseNode
}

func (*Bool) Kind() Kind { return BoolKind }
func (n *Bool) Value() bool { return n.v }
func (n *Bool) Copy() Node { return n }
func (n *Bool) copyWith(map[Node]Node) Node { return n }
func (n *Bool) String() string { return strconv.FormatBool(n.v) }

func (n *Bool) bit() int64 {
	if n.v {
		return 1
	}
	return 0
}

func (n *Bool) AsBool(bool) bool { return n.v }
func (n *Bool) AsByte(int8) int8 { return int8(n.bit()) }
func (n *Bool) AsShort(int16) int16 { return int16(n.bit()) }
func (n *Bool) AsInt(int32) int32 { return int32(n.bit()) }
func (n *Bool) AsLong(int64) int64 { return n.bit() }
func (n *Bool) AsBigInt(*big.Int) *big.Int { return big.NewInt(n.bit()) }
func (n *Bool) AsFloat(float32) float32 { return float32(n.bit()) }
func (n *Bool) AsDouble(float64) float64 { return float64(n.bit()) }
func (n *Bool) AsBigDecimal(*apd.Decimal) *apd.Decimal { return apd.New(n.bit(), 0) }
func (n *Bool) AsText(string) string { return n.String() }

// Text is a string node.
type Text struct {
	defaults
	v string
}

func (*Text) Kind() Kind { return TextKind }
func (n *Text) Value() string { return n.v }
func (n *Text) Copy() Node { return n }
func (n *Text) copyWith(map[Node]Node) Node { return n }
func (n *Text) String() string { return strconv.Quote(n.v) }

func (n *Text) AsBool(def bool) bool {
	if b, ok := parseBool(n.v); ok {
		return b
	}
	return def
}

func (n *Text) AsByte(def int8) int8 {
	if v, ok := parseInteger(n.v); ok && numrange.BigFitsByte(v) {
		return int8(v.Int64())
	}
	return def
}

func (n *Text) AsShort(def int16) int16 {
	if v, ok := parseInteger(n.v); ok && numrange.BigFitsShort(v) {
		return int16(v.Int64())
	}
	return def
}

func (n *Text) AsInt(def int32) int32 {
	if v, ok := parseInteger(n.v); ok && numrange.BigFitsInt(v) {
		return int32(v.Int64())
	}
	return def
}

func (n *Text) AsLong(def int64) int64 {
	if v, ok := parseInteger(n.v); ok && numrange.BigFitsLong(v) {
		return v.Int64()
	}
	return def
}

func (n *Text) AsBigInt(def *big.Int) *big.Int {
	if v, ok := parseInteger(n.v); ok {
		return v
	}
	return def
}

func (n *Text) AsFloat(def float32) float32 {
	if f, ok := parseDouble(n.v); ok {
		return float32(f)
	}
	return def
}

func (n *Text) AsDouble(def float64) float64 {
	if f, ok := parseDouble(n.v); ok {
		return f
	}
	return def
}

func (n *Text) AsBigDecimal(def *apd.Decimal) *apd.Decimal {
	if d, ok := parseBigDecimal(n.v); ok {
		return d
	}
	return def
}

func (n *Text) AsText(string) string { return n.v }

// AsBinary returns the raw bytes of the text. It does not decode base64.
func (n *Text) AsBinary([]byte) []byte { return []byte(n.v) }

func (n *Text) AsTime(def time.Time) time.Time {
	if t, ok := parseTime(n.v); ok {
		return t
	}
	return def
}

// Binary is an immutable byte sequence.
type Binary struct {
	defaults
	v []byte
}

func (*Binary) Kind() Kind { return BinaryKind }
func (n *Binary) Copy() Node { return n }
func (n *Binary) copyWith(map[Node]Node) Node { return n }
func (n *Binary) String() string { return "!!binary " + n.AsText("") }

// Bytes returns a copy of the bytes.
func (n *Binary) Bytes() []byte { return append([]byte(nil), n.v...) }

// AsText returns the standard base64 encoding of the bytes.
func (n *Binary) AsText(string) string { return base64.StdEncoding.EncodeToString(n.v) }
func (n *Binary) AsBinary([]byte) []byte { return n.Bytes() }

// Time is an immutable instant.
type Time struct {
	defaults
	v time.Time
}

func (*Time) Kind() Kind { return TimeKind }
func (n *Time) Value() time.Time { return n.v }
func (n *Time) Copy() Node { return n }
func (n *Time) copyWith(map[Node]Node) Node { return n }
func (n *Time) String() string { return n.AsText("") }

func (n *Time) millis() int64 { return n.v.UnixMilli() }

// AsText formats the instant as RFC 3339 with the offset it was created
// with, which Text.AsTime parses back.
func (n *Time) AsText(string) string { return n.v.Format(time.RFC3339Nano) }
func (n *Time) AsTime(time.Time) time.Time { return n.v }

func (n *Time) AsByte(def int8) int8 {
	if m := n.millis(); numrange.LongFitsByte(m) {
		return int8(m)
	}
	return def
}

func (n *Time) AsShort(def int16) int16 {
	if m := n.millis(); numrange.LongFitsShort(m) {
		return int16(m)
	}
	return def
}

func (n *Time) AsInt(def int32) int32 {
	if m := n.millis(); numrange.LongFitsInt(m) {
		return int32(m)
	}
	return def
}

func (n *Time) AsLong(int64) int64 { return n.millis() }
func (n *Time) AsBigInt(*big.Int) *big.Int { return big.NewInt(n.millis()) }
func (n *Time) AsFloat(float32) float32 { return float32(n.millis()) }
func (n *Time) AsDouble(float64) float64 { return float64(n.millis()) }
func (n *Time) AsBigDecimal(*apd.Decimal) *apd.Decimal { return apd.New(n.millis(), 0) }
