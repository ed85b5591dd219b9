package construct

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/ydom/debug"
	"github.com/signadot/ydom/node"
)

// Builder assembles a tree from the events of one document, creating every
// node with its factory.
type Builder struct {
	f       *node.Factory
	stack   []frame
	anchors map[string]node.Node
	root    node.Node
	n       int
}

type frame struct {
	begin Event
	// c is the container being filled. It is nil for !!omap and !!pairs
	// sequences, whose entries collect in items until the end event.
	c      node.Node
	items  []node.Node
	key    node.Node
	hasKey bool
}

func NewBuilder(f *node.Factory) *Builder {
	return &Builder{f: f, anchors: map[string]node.Node{}}
}

// Event processes the next event.
func (b *Builder) Event(ev Event) error {
	b.n++
	if debug.Build() {
		debug.Logf("build event %d: %s\n", b.n, ev)
	}
	if b.root != nil {
		return fmt.Errorf("%w: event %d (%s) after the end of the value", ErrEvents, b.n, ev.Type)
	}
	var err error
	switch ev.Type {
	case BeginMapping:
		b.stack = append(b.stack, frame{begin: ev, c: b.mapping(ShortTag(ev.Tag))})
	case BeginSequence:
		fr := frame{begin: ev}
		switch ShortTag(ev.Tag) {
		case TagOrderedMap, TagPairs:
		default:
			fr.c = b.f.Sequence()
		}
		b.stack = append(b.stack, fr)
	case EndMapping, EndSequence:
		err = b.end(ev)
	case Scalar:
		var n node.Node
		n, err = b.scalar(ev)
		if err == nil {
			err = b.add(n, ev.Anchor)
		}
	case Alias:
		n, ok := b.anchors[ev.Anchor]
		if !ok {
			return fmt.Errorf("%w: event %d: unknown alias *%s", ErrEvents, b.n, ev.Anchor)
		}
		err = b.add(n, "")
	default:
		return fmt.Errorf("%w: event %d: unknown event type %d", ErrEvents, b.n, ev.Type)
	}
	if err != nil {
		return fmt.Errorf("event %d: %w", b.n, err)
	}
	return nil
}

func (b *Builder) mapping(tag string) node.Node {
	switch tag {
	case TagOrderedMap:
		return b.f.OrderedMap()
	case TagPairs:
		return b.f.Pairs()
	case TagSet:
		return b.f.Set()
	}
	return b.f.Map()
}

func (b *Builder) end(ev Event) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("%w: unexpected %s", ErrEvents, ev.Type)
	}
	fr := b.stack[len(b.stack)-1]
	wantMapping := ev.Type == EndMapping
	if (fr.begin.Type == BeginMapping) != wantMapping {
		return fmt.Errorf("%w: %s closes %s", ErrEvents, ev.Type, fr.begin.Type)
	}
	if fr.hasKey {
		return fmt.Errorf("%w: mapping key %s has no value", ErrEvents, fr.key)
	}
	b.stack = b.stack[:len(b.stack)-1]
	n := fr.c
	if n == nil {
		var err error
		n, err = b.entrySequence(ShortTag(fr.begin.Tag), fr.items)
		if err != nil {
			return err
		}
	}
	return b.add(n, fr.begin.Anchor)
}

// entrySequence converts the items of an !!omap or !!pairs sequence, each a
// single entry mapping.
func (b *Builder) entrySequence(tag string, items []node.Node) (node.Node, error) {
	var (
		om  *node.OrderedMap
		p   *node.Pairs
		res node.Node
	)
	if tag == TagOrderedMap {
		om = b.f.OrderedMap()
		res = om
	} else {
		p = b.f.Pairs()
		res = p
	}
	for i, item := range items {
		m, ok := item.(*node.Map)
		if !ok || m.Len() != 1 {
			return nil, fmt.Errorf("%w: %s item %d is not a single entry mapping", ErrStructure, tag, i)
		}
		for k, v := range m.Entries() {
			var err error
			if om != nil {
				if om.Has(k) {
					return nil, fmt.Errorf("%w: %s repeats key %s", ErrStructure, tag, k)
				}
				err = om.PutNode(k, v)
			} else {
				err = p.AddNode(k, v)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// add places a finished node in the enclosing collection, or makes it the
// root.
func (b *Builder) add(n node.Node, anchor string) error {
	if anchor != "" {
		b.anchors[anchor] = n
	}
	if len(b.stack) == 0 {
		b.root = n
		return nil
	}
	fr := &b.stack[len(b.stack)-1]
	if fr.begin.Type == BeginSequence {
		if fr.c == nil {
			fr.items = append(fr.items, n)
			return nil
		}
		return fr.c.(*node.Sequence).AddNode(n)
	}
	if !fr.hasKey {
		fr.key, fr.hasKey = n, true
		return nil
	}
	k := fr.key
	fr.key, fr.hasKey = nil, false
	switch c := fr.c.(type) {
	case *node.Map:
		return c.PutNode(k, n)
	case *node.OrderedMap:
		return c.PutNode(k, n)
	case *node.Pairs:
		return c.AddNode(k, n)
	case *node.Set:
		_, err := c.AddNode(k)
		return err
	}
	return fmt.Errorf("%w: no container for %s", ErrEvents, fr.begin.Type)
}

// Done returns the finished tree.
func (b *Builder) Done() (node.Node, error) {
	if b.root == nil {
		if len(b.stack) != 0 {
			return nil, fmt.Errorf("%w: unclosed structures: %d remaining", ErrEvents, len(b.stack))
		}
		return nil, fmt.Errorf("%w: no value", ErrEvents)
	}
	return b.root, nil
}

// Build builds a tree from the events of one document.
func Build(f *node.Factory, events []Event) (node.Node, error) {
	b := NewBuilder(f)
	for _, ev := range events {
		if err := b.Event(ev); err != nil {
			return nil, err
		}
	}
	return b.Done()
}

// Source supplies events. Next returns io.EOF after the last one.
type Source interface {
	Next() (Event, error)
}

// BuildFrom builds a tree from the events of src.
func BuildFrom(f *node.Factory, src Source) (node.Node, error) {
	b := NewBuilder(f)
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return b.Done()
		}
		if err != nil {
			return nil, err
		}
		if err := b.Event(ev); err != nil {
			return nil, err
		}
	}
}

// SliceSource is a Source over a slice of events.
type SliceSource struct {
	Events []Event
}

func (s *SliceSource) Next() (Event, error) {
	if len(s.Events) == 0 {
		return Event{}, io.EOF
	}
	ev := s.Events[0]
	s.Events = s.Events[1:]
	return ev, nil
}
