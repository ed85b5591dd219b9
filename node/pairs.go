package node

import (
	"fmt"
	"iter"
)

// Pairs is an insertion ordered list of key value pairs in which keys may
// repeat.
type Pairs struct {
	defaults
	f  *Factory
	es entries
}

func (*Pairs) Kind() Kind { return PairsKind }
func (p *Pairs) IsContainer() bool { return true }
func (p *Pairs) Len() int { return p.es.len() }

// Add appends a pair, converting k and v with the factory of p.
func (p *Pairs) Add(k, v any) error {
	kn, err := p.f.From(k)
	if err != nil {
		return err
	}
	vn, err := p.f.From(v)
	if err != nil {
		return err
	}
	return p.AddNode(kn, vn)
}

func (p *Pairs) AddNode(k, v Node) error {
	k, v = stored(k), stored(v)
	if k == p || v == p {
		return fmt.Errorf("%w: %s into itself", ErrCycle, PairsKind)
	}
	p.es.add(k, v)
	return nil
}

func (p *Pairs) key(k any) Node {
	kn, err := p.f.From(k)
	if err != nil {
		return nil
	}
	return kn
}

// Get returns the first value added under k, or nil.
func (p *Pairs) Get(k any) Node {
	kn := p.key(k)
	if kn == nil {
		return nil
	}
	if e := p.es.lookup(kn); e != nil {
		return e.val
	}
	return nil
}

// GetAll returns the values added under k in insertion order.
func (p *Pairs) GetAll(k any) []Node {
	kn := p.key(k)
	if kn == nil {
		return nil
	}
	var res []Node
	for _, e := range p.es.lookupAll(kn) {
		res = append(res, e.val)
	}
	return res
}

// At returns the i'th key and value, or nils when i is out of range.
func (p *Pairs) At(i int) (Node, Node) {
	e := p.es.at(i)
	if e == nil {
		return nil, nil
	}
	return e.key, e.val
}

// Path returns the first value added under seg, or the missing node.
func (p *Pairs) Path(seg any) Node {
	if v := p.Get(seg); v != nil {
		return v
	}
	return missingNode
}

func (p *Pairs) Has(seg any) bool { return p.Get(seg) != nil }

func (p *Pairs) HasNotNull(seg any) bool {
	v := p.Get(seg)
	return v != nil && !v.IsNull()
}

// RemoveAll removes every pair with key k and returns how many there were.
func (p *Pairs) RemoveAll(k any) int {
	kn := p.key(k)
	if kn == nil {
		return 0
	}
	return p.es.removeAll(kn)
}

func (p *Pairs) Entries() iter.Seq2[Node, Node] {
	return p.es.seq()
}

func (p *Pairs) Copy() Node { return p.copyWith(map[Node]Node{}) }

func (p *Pairs) copyWith(memo map[Node]Node) Node {
	if c, ok := memo[p]; ok {
		return c
	}
	res := &Pairs{f: p.f}
	memo[p] = res
	res.es = p.es.copyWith(memo)
	return res
}

func (p *Pairs) String() string { return format(p) }
