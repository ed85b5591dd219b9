package node

import (
	"fmt"
	"iter"
)

// keyed is the storage shared by Map and OrderedMap.
type keyed struct {
	defaults
	f  *Factory
	es entries
}

func (m *keyed) IsContainer() bool { return true }
func (m *keyed) Len() int { return m.es.len() }

// key converts a Go value to a key node. Unsupported values yield nil.
func (m *keyed) key(k any) Node {
	kn, err := m.f.From(k)
	if err != nil {
		return nil
	}
	return kn
}

func (m *keyed) putNode(self, k, v Node) error {
	k, v = stored(k), stored(v)
	if k == self || v == self {
		return fmt.Errorf("%w: %s into itself", ErrCycle, self.Kind())
	}
	m.es.put(k, v)
	return nil
}

func (m *keyed) put(self Node, k, v any) error {
	kn, err := m.f.From(k)
	if err != nil {
		return err
	}
	vn, err := m.f.From(v)
	if err != nil {
		return err
	}
	return m.putNode(self, kn, vn)
}

// Get returns the value stored under k, or nil if there is none.
func (m *keyed) Get(k any) Node {
	kn := m.key(k)
	if kn == nil {
		return nil
	}
	if e := m.es.lookup(kn); e != nil {
		return e.val
	}
	return nil
}

// Path returns the value stored under seg, or the missing node.
func (m *keyed) Path(seg any) Node {
	if v := m.Get(seg); v != nil {
		return v
	}
	return missingNode
}

func (m *keyed) Has(seg any) bool { return m.Get(seg) != nil }

func (m *keyed) HasNotNull(seg any) bool {
	v := m.Get(seg)
	return v != nil && !v.IsNull()
}

// Remove removes the entry for k and returns its value, or nil if there was
// none.
func (m *keyed) Remove(k any) Node {
	kn := m.key(k)
	if kn == nil {
		return nil
	}
	return m.es.remove(kn)
}

// Entries iterates over the keys and values.
func (m *keyed) Entries() iter.Seq2[Node, Node] {
	return m.es.seq()
}

func (m *keyed) Keys() []Node {
	res := make([]Node, 0, m.es.len())
	for _, e := range m.es.list {
		res = append(res, e.key)
	}
	return res
}

func (m *keyed) Values() []Node {
	res := make([]Node, 0, m.es.len())
	for _, e := range m.es.list {
		res = append(res, e.val)
	}
	return res
}

// Map is a container of unique keys. The iteration order is unspecified and
// changes on removal.
type Map struct{ keyed }

func (*Map) Kind() Kind { return MapKind }

// Put stores v under k, replacing any value already there. Both are
// converted with the map's factory.
func (m *Map) Put(k, v any) error { return m.put(m, k, v) }

func (m *Map) PutNode(k, v Node) error { return m.putNode(m, k, v) }

func (m *Map) Copy() Node { return m.copyWith(map[Node]Node{}) }

func (m *Map) copyWith(memo map[Node]Node) Node {
	if c, ok := memo[m]; ok {
		return c
	}
	res := &Map{keyed{f: m.f}}
	memo[m] = res
	res.es = m.es.copyWith(memo)
	return res
}

func (m *Map) String() string { return format(m) }

// OrderedMap is a container of unique keys kept in insertion order.
// Replacing the value of a key keeps its position.
type OrderedMap struct{ keyed }

func (*OrderedMap) Kind() Kind { return OrderedMapKind }

// Put stores v under k, replacing any value already there. Both are
// converted with the map's factory.
func (m *OrderedMap) Put(k, v any) error { return m.put(m, k, v) }

func (m *OrderedMap) PutNode(k, v Node) error { return m.putNode(m, k, v) }

func (m *OrderedMap) Copy() Node { return m.copyWith(map[Node]Node{}) }

func (m *OrderedMap) copyWith(memo map[Node]Node) Node {
	if c, ok := memo[m]; ok {
		return c
	}
	res := &OrderedMap{keyed{f: m.f}}
	memo[m] = res
	res.es = m.es.copyWith(memo)
	return res
}

func (m *OrderedMap) String() string { return format(m) }
