package node

import (
	"bytes"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Equal reports whether a and b are structurally equal.
//
// Integral nodes are equal when their values are, whatever their widths, and
// likewise decimal nodes; an integral node never equals a decimal one. A Float
// equals a Double or BigDecimal when its shortest decimal rendering does, and
// NaN equals NaN. Otherwise the kinds must match. Map, OrderedMap and Set
// compare as unordered collections, Pairs and Sequence in order.
//
// Equal does not terminate on trees containing indirect cycles.
func Equal(a, b Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	ka, kb := a.Kind(), b.Kind()
	switch {
	case ka.IsIntegral() && kb.IsIntegral():
		return compareIntegral(a, b) == 0
	case ka.IsDecimal() && kb.IsDecimal():
		return compareDecimal(a, b) == 0
	case ka != kb:
		return false
	}
	switch x := a.(type) {
	case *Null, *missing:
		return true
	case *Bool:
		return x.v == b.(*Bool).v
	case *Text:
		return x.v == b.(*Text).v
	case *Binary:
		return bytes.Equal(x.v, b.(*Binary).v)
	case *Time:
		return x.v.Equal(b.(*Time).v)
	case *Map:
		return keyedEqual(&x.es, &b.(*Map).es)
	case *OrderedMap:
		return keyedEqual(&x.es, &b.(*OrderedMap).es)
	case *Set:
		return keyedEqual(&x.es, &b.(*Set).es)
	case *Pairs:
		return listEqual(&x.es, &b.(*Pairs).es)
	case *Sequence:
		y := b.(*Sequence)
		if len(x.list) != len(y.list) {
			return false
		}
		for i := range x.list {
			if !Equal(x.list[i], y.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// keyedEqual compares entries with unique keys, ignoring order.
func keyedEqual(a, b *entries) bool {
	if a.len() != b.len() {
		return false
	}
	for _, e := range a.list {
		o := b.lookup(e.key)
		if o == nil || !Equal(e.val, o.val) {
			return false
		}
	}
	return true
}

func listEqual(a, b *entries) bool {
	if a.len() != b.len() {
		return false
	}
	for i, e := range a.list {
		o := b.list[i]
		if !Equal(e.key, o.key) || !Equal(e.val, o.val) {
			return false
		}
	}
	return true
}

// integralValue returns the value of an integral node as an int64 when it
// fits, and as a big.Int otherwise.
func integralValue(n Node) (int64, *big.Int) {
	switch x := n.(type) {
	case *Byte:
		return x.v, nil
	case *Short:
		return x.v, nil
	case *Int:
		return x.v, nil
	case *Long:
		return x.v, nil
	case *BigInt:
		if x.v.IsInt64() {
			return x.v.Int64(), nil
		}
		return 0, x.v
	}
	return 0, nil
}

func compareIntegral(a, b Node) int {
	ia, ba := integralValue(a)
	ib, bb := integralValue(b)
	if ba == nil && bb == nil {
		switch {
		case ia < ib:
			return -1
		case ia > ib:
			return 1
		}
		return 0
	}
	if ba == nil {
		ba = big.NewInt(ia)
	}
	if bb == nil {
		bb = big.NewInt(ib)
	}
	return ba.Cmp(bb)
}

// decimal classes, in sort order
const (
	decNegInf = iota
	decFinite
	decPosInf
	decNaN
)

// decimalValue returns the class of a numeric node, and for finite values
// its exact decimal value. Float values use their shortest rendering.
func decimalValue(n Node) (int, *apd.Decimal) {
	switch x := n.(type) {
	case *Float:
		return ieeeValue(&x.ieee)
	case *Double:
		return ieeeValue(&x.ieee)
	case *BigDecimal:
		return decFinite, x.v
	case Integral:
		i, b := integralValue(n)
		if b == nil {
			return decFinite, apd.New(i, 0)
		}
		d, _, _ := apd.NewFromString(b.String())
		return decFinite, d
	}
	return decNaN, nil
}

func ieeeValue(n *ieee) (int, *apd.Decimal) {
	if d, ok := floatDecimal(n.v, n.bits); ok {
		return decFinite, d
	}
	switch {
	case n.v > 0:
		return decPosInf, nil
	case n.v < 0:
		return decNegInf, nil
	}
	return decNaN, nil
}

func compareDecimal(a, b Node) int {
	ca, da := decimalValue(a)
	cb, db := decimalValue(b)
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	case ca != decFinite:
		return 0
	}
	return da.Cmp(db)
}
