package node

import (
	"iter"
	"slices"
)

type entry struct {
	key, val Node
	pos      int
}

// entries is an insertion ordered list of key value entries indexed by the
// hash of the key. Keys may repeat; callers wanting unique keys look up
// before adding.
//
// When swap is set, removal moves the last entry into the vacated position
// instead of shifting the tail.
type entries struct {
	list  []*entry
	index map[uint64][]*entry
	swap  bool
}

func newEntries(swap bool) entries {
	return entries{index: map[uint64][]*entry{}, swap: swap}
}

func (es *entries) len() int { return len(es.list) }

// lookup returns the first entry whose key equals k.
func (es *entries) lookup(k Node) *entry {
	for _, e := range es.index[Hash(k)] {
		if Equal(e.key, k) {
			return e
		}
	}
	return nil
}

func (es *entries) lookupAll(k Node) []*entry {
	var res []*entry
	for _, e := range es.index[Hash(k)] {
		if Equal(e.key, k) {
			res = append(res, e)
		}
	}
	return res
}

func (es *entries) add(k, v Node) {
	e := &entry{key: k, val: v, pos: len(es.list)}
	es.list = append(es.list, e)
	h := Hash(k)
	es.index[h] = append(es.index[h], e)
}

// put replaces the value of the entry for k, or adds one.
func (es *entries) put(k, v Node) {
	if e := es.lookup(k); e != nil {
		e.val = v
		return
	}
	es.add(k, v)
}

func (es *entries) drop(e *entry) {
	h := Hash(e.key)
	bucket := slices.DeleteFunc(es.index[h], func(o *entry) bool { return o == e })
	if len(bucket) == 0 {
		delete(es.index, h)
	} else {
		es.index[h] = bucket
	}
	last := len(es.list) - 1
	if es.swap {
		moved := es.list[last]
		es.list[e.pos] = moved
		moved.pos = e.pos
		es.list[last] = nil
		es.list = es.list[:last]
		return
	}
	es.list = slices.Delete(es.list, e.pos, e.pos+1)
	for i := e.pos; i < len(es.list); i++ {
		es.list[i].pos = i
	}
}

// remove drops the first entry for k and returns its value, or nil.
func (es *entries) remove(k Node) Node {
	e := es.lookup(k)
	if e == nil {
		return nil
	}
	es.drop(e)
	return e.val
}

func (es *entries) removeAll(k Node) int {
	all := es.lookupAll(k)
	for i := len(all) - 1; i >= 0; i-- {
		es.drop(all[i])
	}
	return len(all)
}

func (es *entries) at(i int) *entry {
	if i < 0 || i >= len(es.list) {
		return nil
	}
	return es.list[i]
}

func (es *entries) copyWith(memo map[Node]Node) entries {
	res := newEntries(es.swap)
	res.list = make([]*entry, 0, len(es.list))
	for _, e := range es.list {
		res.add(e.key.copyWith(memo), e.val.copyWith(memo))
	}
	return res
}

func (es *entries) seq() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for _, e := range es.list {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
