// Package dump prints node trees as an indented outline in which every
// value carries its kind, optionally colored.
package dump

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/signadot/ydom/node"
)

type Option func(*state)

// WithColors colors the output. A nil c disables colors.
func WithColors(c *Colors) Option {
	return func(s *state) { s.colors = c }
}

// WithIndent sets the number of spaces per level, 2 by default.
func WithIndent(n int) Option {
	return func(s *state) { s.indent = n }
}

type state struct {
	colors *Colors
	indent int
	w      *bufio.Writer
	path   map[node.Node]bool
}

// Tag returns the outline tag of a kind.
func Tag(k node.Kind) string {
	switch k {
	case node.MissingKind:
		return "!!missing"
	case node.TextKind:
		return "!!str"
	case node.TimeKind:
		return "!!timestamp"
	case node.ByteKind:
		return "!!int8"
	case node.ShortKind:
		return "!!int16"
	case node.IntKind:
		return "!!int32"
	case node.LongKind:
		return "!!int64"
	case node.BigIntKind:
		return "!!bigint"
	case node.FloatKind:
		return "!!float32"
	case node.DoubleKind:
		return "!!float64"
	case node.BigDecimalKind:
		return "!!decimal"
	}
	return k.Tag()
}

// Write writes the outline of n to w.
func Write(w io.Writer, n node.Node, opts ...Option) error {
	s := &state{indent: 2, w: bufio.NewWriter(w), path: map[node.Node]bool{}}
	for _, opt := range opts {
		opt(s)
	}
	s.value(n, 0)
	return s.w.Flush()
}

// String returns the outline of n.
func String(n node.Node, opts ...Option) string {
	buf := bytes.NewBuffer(nil)
	_ = Write(buf, n, opts...)
	return buf.String()
}

func (s *state) color(k node.Kind, a ColorAttr, v string) string {
	if s.colors == nil {
		return v
	}
	return s.colors.Color(k, a, v)
}

func (s *state) pad(depth int) {
	s.w.WriteString(strings.Repeat(" ", depth*s.indent))
}

// value writes n, whose line has already been started, and its children.
func (s *state) value(n node.Node, depth int) {
	k := n.Kind()
	s.w.WriteString(s.color(k, TagColor, Tag(k)))
	if !k.IsContainer() {
		if k != node.NullKind && k != node.MissingKind {
			s.w.WriteByte(' ')
			s.w.WriteString(s.color(k, ValueColor, scalarText(n)))
		}
		s.w.WriteByte('\n')
		return
	}
	if s.path[n] {
		s.w.WriteString(" <cycle>\n")
		return
	}
	if n.Len() == 0 {
		if k == node.SequenceKind {
			s.w.WriteString(" []\n")
		} else {
			s.w.WriteString(" {}\n")
		}
		return
	}
	s.w.WriteByte('\n')
	s.path[n] = true
	defer delete(s.path, n)

	switch x := n.(type) {
	case *node.Sequence:
		for v := range x.Elements() {
			s.item(k, v, depth+1)
		}
	case *node.Set:
		for v := range x.Elements() {
			s.item(k, v, depth+1)
		}
	case *node.Map:
		for key, v := range node.SortedEntries(x) {
			s.entry(k, key, v, depth+1)
		}
	case *node.OrderedMap:
		for key, v := range x.Entries() {
			s.entry(k, key, v, depth+1)
		}
	case *node.Pairs:
		for key, v := range x.Entries() {
			s.entry(k, key, v, depth+1)
		}
	}
}

func (s *state) item(parent node.Kind, v node.Node, depth int) {
	s.pad(depth)
	s.w.WriteString(s.color(parent, SepColor, "- "))
	s.value(v, depth)
}

func (s *state) entry(parent node.Kind, key, v node.Node, depth int) {
	s.pad(depth)
	s.w.WriteString(s.color(parent, KeyColor, key.String()))
	s.w.WriteString(s.color(parent, SepColor, ": "))
	s.value(v, depth)
}

func scalarText(n node.Node) string {
	if n.Kind() == node.BinaryKind {
		return n.AsText("")
	}
	return n.String()
}
