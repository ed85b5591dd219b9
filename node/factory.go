package node

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Precision decides which decimal kind a Factory produces.
type Precision int

const (
	// ArbitraryPrecision keeps the width the caller asked for.
	ArbitraryPrecision Precision = iota
	// DoublePrecision produces Double nodes for every decimal.
	DoublePrecision
	// FloatPrecision produces Float nodes for every decimal.
	FloatPrecision
)

func ParsePrecision(v string) (Precision, error) {
	p, ok := map[string]Precision{
		"arbitrary": ArbitraryPrecision,
		"big":       ArbitraryPrecision,
		"double":    DoublePrecision,
		"float":     FloatPrecision,
	}[v]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: precision %q", ErrInvalidArgument, v)
}

func (p Precision) String() string {
	switch p {
	case ArbitraryPrecision:
		return "arbitrary"
	case DoublePrecision:
		return "double"
	case FloatPrecision:
		return "float"
	default:
		return "<unknown precision>"
	}
}

func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Precision) UnmarshalText(d []byte) error {
	pp, err := ParsePrecision(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Factory constructs nodes. It is the only way to create them, and it
// applies two policies: absent inputs become the null node, and decimals
// take the kind given by the factory's Precision.
//
// A Factory is immutable and may be shared between goroutines.
type Factory struct {
	precision Precision
}

type FactoryOption func(*Factory)

func WithPrecision(p Precision) FactoryOption {
	return func(f *Factory) { f.precision = p }
}

func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = NewFactory()

// DefaultFactory returns a shared ArbitraryPrecision factory.
func DefaultFactory() *Factory { return defaultFactory }

func (f *Factory) Precision() Precision { return f.precision }

func (f *Factory) Null() Node { return nullNode }

func (f *Factory) Bool(v bool) Node { return boolNode(v) }

func (f *Factory) Byte(v int8) Node { return &Byte{fixedInt{v: int64(v)}} }

func (f *Factory) Short(v int16) Node { return &Short{fixedInt{v: int64(v)}} }

func (f *Factory) Int(v int32) Node { return &Int{fixedInt{v: int64(v)}} }

func (f *Factory) Long(v int64) Node { return &Long{fixedInt{v: v}} }

// BigInt returns a BigInt node holding a copy of v, without narrowing. See
// Integral for the narrowing constructor.
func (f *Factory) BigInt(v *big.Int) Node {
	if v == nil {
		return nullNode
	}
	return &BigInt{v: new(big.Int).Set(v)}
}

func (f *Factory) Float(v float32) Node {
	if f.precision == DoublePrecision {
		return &Double{ieee{v: float64(v), bits: 64}}
	}
	return &Float{ieee{v: float64(v), bits: 32}}
}

func (f *Factory) Double(v float64) Node {
	if f.precision == FloatPrecision {
		return &Float{ieee{v: float64(float32(v)), bits: 32}}
	}
	return &Double{ieee{v: v, bits: 64}}
}

// BigDecimal returns a node for a copy of v. Under DoublePrecision and
// FloatPrecision the value is rounded to that width. Non finite values
// always become Double (or Float) nodes.
func (f *Factory) BigDecimal(v *apd.Decimal) Node {
	if v == nil {
		return nullNode
	}
	if f.precision != ArbitraryPrecision || v.Form != apd.Finite {
		d, _ := strconv.ParseFloat(v.String(), 64)
		return f.Double(d)
	}
	return &BigDecimal{v: new(apd.Decimal).Set(v)}
}

func (f *Factory) Text(v string) Node { return &Text{v: v} }

// Binary returns a node holding a copy of v, or the null node if v is nil.
func (f *Factory) Binary(v []byte) Node {
	if v == nil {
		return nullNode
	}
	return &Binary{v: append([]byte{}, v...)}
}

func (f *Factory) Time(v time.Time) Node { return &Time{v: v} }

func (f *Factory) Map() *Map {
	return &Map{keyed{f: f, es: newEntries(true)}}
}

func (f *Factory) OrderedMap() *OrderedMap {
	return &OrderedMap{keyed{f: f, es: newEntries(false)}}
}

func (f *Factory) Pairs() *Pairs {
	return &Pairs{f: f, es: newEntries(false)}
}

func (f *Factory) Set() *Set {
	return &Set{f: f, es: newEntries(false)}
}

func (f *Factory) Sequence() *Sequence { return &Sequence{f: f} }

// From converts a Go value to a node.
//
// nil and nil pointers become the null node and nodes are returned as is.
// Integers of explicit width keep it, while int, uint and the other unsigned
// types are narrowed as by Integral. []any and []Node become a Sequence and
// map[string]any a Map, converting the elements recursively.
func (f *Factory) From(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return nullNode, nil
	case Node:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nullNode, nil
		}
		return stored(x), nil
	case bool:
		return f.Bool(x), nil
	case int8:
		return f.Byte(x), nil
	case int16:
		return f.Short(x), nil
	case int32:
		return f.Int(x), nil
	case int64:
		return f.Long(x), nil
	case int:
		return f.IntegralLong(int64(x)), nil
	case uint8:
		return f.IntegralLong(int64(x)), nil
	case uint16:
		return f.IntegralLong(int64(x)), nil
	case uint32:
		return f.IntegralLong(int64(x)), nil
	case uint:
		return f.Integral(new(big.Int).SetUint64(uint64(x))), nil
	case uint64:
		return f.Integral(new(big.Int).SetUint64(x)), nil
	case float32:
		return f.Float(x), nil
	case float64:
		return f.Double(x), nil
	case *big.Int:
		return f.BigInt(x), nil
	case big.Int:
		return f.BigInt(&x), nil
	case *apd.Decimal:
		return f.BigDecimal(x), nil
	case apd.Decimal:
		return f.BigDecimal(&x), nil
	case string:
		return f.Text(x), nil
	case []byte:
		return f.Binary(x), nil
	case time.Time:
		return f.Time(x), nil
	case []Node:
		seq := f.Sequence()
		for _, elt := range x {
			if err := seq.Add(elt); err != nil {
				return nil, err
			}
		}
		return seq, nil
	case []any:
		seq := f.Sequence()
		for _, elt := range x {
			if err := seq.Add(elt); err != nil {
				return nil, err
			}
		}
		return seq, nil
	case map[string]any:
		m := f.Map()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := m.Put(k, x[k]); err != nil {
				return nil, err
			}
		}
		return m, nil
	}
	return f.fromPointer(v)
}

func (f *Factory) fromPointer(v any) (Node, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: cannot make a node from %T", ErrInvalidArgument, v)
	}
	if rv.IsNil() {
		return nullNode, nil
	}
	switch rv.Elem().Kind() {
	case reflect.Pointer, reflect.Interface:
		return nil, fmt.Errorf("%w: cannot make a node from %T", ErrInvalidArgument, v)
	}
	return f.From(rv.Elem().Interface())
}
