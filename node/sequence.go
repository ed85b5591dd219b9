package node

import (
	"fmt"
	"iter"
	"math"
	"math/big"
	"slices"
)

// Sequence is an ordered list of nodes.
type Sequence struct {
	defaults
	f    *Factory
	list []Node
}

func (*Sequence) Kind() Kind { return SequenceKind }
func (s *Sequence) IsContainer() bool { return true }
func (s *Sequence) Len() int { return len(s.list) }

func (s *Sequence) node(v any) (Node, error) {
	vn, err := s.f.From(v)
	if err != nil {
		return nil, err
	}
	return s.check(vn)
}

func (s *Sequence) check(v Node) (Node, error) {
	v = stored(v)
	if v == s {
		return nil, fmt.Errorf("%w: %s into itself", ErrCycle, SequenceKind)
	}
	return v, nil
}

// Add appends v, converted with the factory of s.
func (s *Sequence) Add(v any) error {
	vn, err := s.node(v)
	if err != nil {
		return err
	}
	s.list = append(s.list, vn)
	return nil
}

func (s *Sequence) AddNode(v Node) error {
	vn, err := s.check(v)
	if err != nil {
		return err
	}
	s.list = append(s.list, vn)
	return nil
}

// Insert places v at position i, shifting the elements from i on. i may be
// Len().
func (s *Sequence) Insert(i int, v any) error {
	if i < 0 || i > len(s.list) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndex, i, len(s.list))
	}
	vn, err := s.node(v)
	if err != nil {
		return err
	}
	s.list = slices.Insert(s.list, i, vn)
	return nil
}

// SetAt replaces the element at position i.
func (s *Sequence) SetAt(i int, v any) error {
	if i < 0 || i >= len(s.list) {
		return fmt.Errorf("%w: set at %d of %d", ErrIndex, i, len(s.list))
	}
	vn, err := s.node(v)
	if err != nil {
		return err
	}
	s.list[i] = vn
	return nil
}

// RemoveAt removes and returns the element at position i, or returns nil if
// i is out of range.
func (s *Sequence) RemoveAt(i int) Node {
	if i < 0 || i >= len(s.list) {
		return nil
	}
	res := s.list[i]
	s.list = slices.Delete(s.list, i, i+1)
	return res
}

// Get returns the element at position i, or nil.
func (s *Sequence) Get(i int) Node {
	if i < 0 || i >= len(s.list) {
		return nil
	}
	return s.list[i]
}

func (s *Sequence) Path(seg any) Node {
	if i, ok := index(seg); ok {
		if v := s.Get(i); v != nil {
			return v
		}
	}
	return missingNode
}

func (s *Sequence) Has(seg any) bool { return s.Path(seg).Exists() }

func (s *Sequence) HasNotNull(seg any) bool {
	v := s.Path(seg)
	return v.Exists() && !v.IsNull()
}

func (s *Sequence) Elements() iter.Seq[Node] { return slices.Values(s.list) }

func (s *Sequence) Copy() Node { return s.copyWith(map[Node]Node{}) }

func (s *Sequence) copyWith(memo map[Node]Node) Node {
	if c, ok := memo[s]; ok {
		return c
	}
	res := &Sequence{f: s.f, list: make([]Node, 0, len(s.list))}
	memo[s] = res
	for _, v := range s.list {
		res.list = append(res.list, v.copyWith(memo))
	}
	return res
}

func (s *Sequence) String() string { return format(s) }

// index converts a positional segment to an int. Go integers and integral
// nodes are accepted.
func index(seg any) (int, bool) {
	switch x := seg.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return fitInt(x)
	case uint:
		return fitUint(uint64(x))
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return fitUint(uint64(x))
	case uint64:
		return fitUint(x)
	case *big.Int:
		if x != nil && x.IsInt64() {
			return fitInt(x.Int64())
		}
	case Integral:
		if x.FitsLong() {
			return fitInt(x.AsLong(0))
		}
	}
	return 0, false
}

func fitInt(v int64) (int, bool) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}

func fitUint(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}
	return int(v), true
}
