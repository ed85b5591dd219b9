package node

import (
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Node is a value in a document tree.
//
// The set of implementations is closed: *Null, *Bool, *Text, *Binary, *Time,
// *Byte, *Short, *Int, *Long, *BigInt, *Float, *Double, *BigDecimal, *Map,
// *OrderedMap, *Pairs, *Set, *Sequence and the missing sentinel returned by
// Missing. Consumers dispatch with a type switch or on Kind.
//
// The As methods never fail: when the node cannot supply a value of the
// requested kind they return def.
type Node interface {
	Kind() Kind
	// Exists is false only for the missing sentinel.
	Exists() bool
	IsNull() bool
	IsContainer() bool
	// Len is the number of entries or elements of a container, 0 otherwise.
	Len() int

	AsBool(def bool) bool
	AsByte(def int8) int8
	AsShort(def int16) int16
	AsInt(def int32) int32
	AsLong(def int64) int64
	AsBigInt(def *big.Int) *big.Int
	AsFloat(def float32) float32
	AsDouble(def float64) float64
	AsBigDecimal(def *apd.Decimal) *apd.Decimal
	AsText(def string) string
	AsBinary(def []byte) []byte
	AsTime(def time.Time) time.Time

	// Path returns the child at seg, or the missing sentinel.
	Path(seg any) Node
	Has(seg any) bool
	// HasNotNull is Has with the additional requirement that the child is
	// not the null node.
	HasNotNull(seg any) bool

	// Copy returns a deep copy. Immutable nodes return themselves.
	Copy() Node
	String() string

	copyWith(memo map[Node]Node) Node
}

// defaults supplies the behavior of a node that is neither a container nor
// able to coerce to anything.
type defaults struct{}

func (defaults) Exists() bool { return true }
func (defaults) IsNull() bool { return false }
func (defaults) IsContainer() bool { return false }
func (defaults) Len() int { return 0 }

func (defaults) AsBool(def bool) bool { return def }
func (defaults) AsByte(def int8) int8 { return def }
func (defaults) AsShort(def int16) int16 { return def }
func (defaults) AsInt(def int32) int32 { return def }
func (defaults) AsLong(def int64) int64 { return def }
func (defaults) AsBigInt(def *big.Int) *big.Int { return def }
func (defaults) AsFloat(def float32) float32 { return def }
func (defaults) AsDouble(def float64) float64 { return def }
func (defaults) AsBigDecimal(def *apd.Decimal) *apd.Decimal { return def }
func (defaults) AsText(def string) string { return def }
func (defaults) AsBinary(def []byte) []byte { return def }
func (defaults) AsTime(def time.Time) time.Time { return def }

func (defaults) Path(any) Node { return missingNode }
func (defaults) Has(any) bool { return false }
func (defaults) HasNotNull(any) bool { return false }

// Type-default accessors.

func BoolValue(n Node) bool { return n.AsBool(false) }
func ByteValue(n Node) int8 { return n.AsByte(0) }
func ShortValue(n Node) int16 { return n.AsShort(0) }
func IntValue(n Node) int32 { return n.AsInt(0) }
func LongValue(n Node) int64 { return n.AsLong(0) }
func BigIntValue(n Node) *big.Int { return n.AsBigInt(nil) }
func FloatValue(n Node) float32 { return n.AsFloat(0) }
func DoubleValue(n Node) float64 { return n.AsDouble(0) }
func BigDecimalValue(n Node) *apd.Decimal { return n.AsBigDecimal(nil) }
func TextValue(n Node) string { return n.AsText("") }
func BinaryValue(n Node) []byte { return n.AsBinary(nil) }
func TimeValue(n Node) time.Time { return n.AsTime(time.Time{}) }
