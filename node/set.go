package node

import (
	"fmt"
	"iter"
)

// Set is an insertion ordered container of unique elements. Uniqueness is
// by Equal.
type Set struct {
	defaults
	f  *Factory
	es entries
}

func (*Set) Kind() Kind { return SetKind }
func (s *Set) IsContainer() bool { return true }
func (s *Set) Len() int { return s.es.len() }

// Add adds v, converted with the factory of s, unless an equal element is
// already present.
func (s *Set) Add(v any) error {
	vn, err := s.f.From(v)
	if err != nil {
		return err
	}
	_, err = s.AddNode(vn)
	return err
}

// AddNode adds v and reports whether it was not already present.
func (s *Set) AddNode(v Node) (bool, error) {
	v = stored(v)
	if v == s {
		return false, fmt.Errorf("%w: %s into itself", ErrCycle, SetKind)
	}
	if s.es.lookup(v) != nil {
		return false, nil
	}
	s.es.add(v, nullNode)
	return true, nil
}

func (s *Set) Contains(v any) bool {
	vn, err := s.f.From(v)
	if err != nil {
		return false
	}
	return s.es.lookup(vn) != nil
}

// Remove removes the element equal to v and reports whether there was one.
func (s *Set) Remove(v any) bool {
	vn, err := s.f.From(v)
	if err != nil {
		return false
	}
	return s.es.remove(vn) != nil
}

// Get returns the i'th element in insertion order, or nil.
func (s *Set) Get(i int) Node {
	if e := s.es.at(i); e != nil {
		return e.key
	}
	return nil
}

func (s *Set) Path(seg any) Node {
	if i, ok := index(seg); ok {
		if v := s.Get(i); v != nil {
			return v
		}
	}
	return missingNode
}

func (s *Set) Has(seg any) bool { return s.Path(seg).Exists() }

func (s *Set) HasNotNull(seg any) bool {
	v := s.Path(seg)
	return v.Exists() && !v.IsNull()
}

func (s *Set) Elements() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, e := range s.es.list {
			if !yield(e.key) {
				return
			}
		}
	}
}

func (s *Set) Copy() Node { return s.copyWith(map[Node]Node{}) }

func (s *Set) copyWith(memo map[Node]Node) Node {
	if c, ok := memo[s]; ok {
		return c
	}
	res := &Set{f: s.f}
	memo[s] = res
	res.es = s.es.copyWith(memo)
	return res
}

func (s *Set) String() string { return format(s) }
