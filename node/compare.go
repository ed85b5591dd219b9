package node

import (
	"bytes"
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Compare agrees with Equal and orders nodes first by rank:
// missing < null < bool < number < text < binary < time < sequence < set <
// pairs < ordered map < map. Numbers compare by value, an integral ordering
// before an equal decimal. Maps and sets compare their entries in key order.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	ra, rb := rank(a.Kind()), rank(b.Kind())
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch x := a.(type) {
	case *Null, *missing:
		return 0
	case *Bool:
		return cmp.Compare(x.AsLong(0), b.AsLong(0))
	case *Text:
		return strings.Compare(x.v, b.(*Text).v)
	case *Binary:
		return bytes.Compare(x.v, b.(*Binary).v)
	case *Time:
		return x.v.Compare(b.(*Time).v)
	case *Sequence:
		return compareLists(x.list, b.(*Sequence).list)
	case *Pairs:
		return compareEntries(x.es.list, b.(*Pairs).es.list)
	case *Set:
		return compareEntries(sortedEntries(&x.es), sortedEntries(&b.(*Set).es))
	case *OrderedMap:
		return compareEntries(sortedEntries(&x.es), sortedEntries(&b.(*OrderedMap).es))
	case *Map:
		return compareEntries(sortedEntries(&x.es), sortedEntries(&b.(*Map).es))
	}
	return compareNumbers(a, b)
}

// rank returns the sorting rank of a kind.
func rank(k Kind) int {
	switch {
	case k == MissingKind:
		return 0
	case k == NullKind:
		return 1
	case k == BoolKind:
		return 2
	case k.IsNumber():
		return 3
	case k == TextKind:
		return 4
	case k == BinaryKind:
		return 5
	case k == TimeKind:
		return 6
	case k == SequenceKind:
		return 7
	case k == SetKind:
		return 8
	case k == PairsKind:
		return 9
	case k == OrderedMapKind:
		return 10
	case k == MapKind:
		return 11
	}
	return 100
}

func compareNumbers(a, b Node) int {
	ia, ib := a.Kind().IsIntegral(), b.Kind().IsIntegral()
	if ia && ib {
		return compareIntegral(a, b)
	}
	if c := compareDecimal(a, b); c != 0 {
		return c
	}
	// Sub-rank: integral < decimal
	switch {
	case ia && !ib:
		return -1
	case !ia && ib:
		return 1
	}
	return 0
}

func compareLists(a, b []Node) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareEntries(a, b []*entry) int {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i].key, b[i].key); c != 0 {
			return c
		}
		if c := Compare(a[i].val, b[i].val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func sortedEntries(es *entries) []*entry {
	return slices.SortedStableFunc(slices.Values(es.list), func(x, y *entry) int {
		return Compare(x.key, y.key)
	})
}

// SortedEntries iterates over the entries of a Map, OrderedMap, Pairs or
// Set ordered by key, using Compare. Set elements are the keys and have null
// values. Other nodes have no entries.
func SortedEntries(n Node) iter.Seq2[Node, Node] {
	var es *entries
	switch x := n.(type) {
	case *Map:
		es = &x.es
	case *OrderedMap:
		es = &x.es
	case *Pairs:
		es = &x.es
	case *Set:
		es = &x.es
	}
	return func(yield func(Node, Node) bool) {
		if es == nil {
			return
		}
		for _, e := range sortedEntries(es) {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
