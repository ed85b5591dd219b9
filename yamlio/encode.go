package yamlio

import (
	"bytes"
	"io"
	"strconv"

	"github.com/signadot/ydom/construct"
	"github.com/signadot/ydom/node"
	"gopkg.in/yaml.v3"
)

// Encode renders n as a YAML document.
func Encode(n node.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes each of docs to w as a YAML document.
func Write(w io.Writer, docs ...node.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, n := range docs {
		if err := enc.Encode(ToYAML(n)); err != nil {
			return err
		}
	}
	return enc.Close()
}

// ToYAML converts n to a yaml.v3 node tree which decodes back to a tree
// equal to n. Containers reachable more than once are anchored at their
// first occurrence and aliased afterwards.
func ToYAML(n node.Node) *yaml.Node {
	c := &converter{shared: map[node.Node]bool{}, anchors: map[node.Node]*yaml.Node{}}
	c.count(n, map[node.Node]bool{})
	return c.node(n)
}

type converter struct {
	shared  map[node.Node]bool
	anchors map[node.Node]*yaml.Node
}

// count marks containers seen more than once as shared.
func (c *converter) count(n node.Node, seen map[node.Node]bool) {
	if !n.IsContainer() {
		return
	}
	if seen[n] {
		c.shared[n] = true
		return
	}
	seen[n] = true
	switch x := n.(type) {
	case *node.Set:
		for v := range x.Elements() {
			c.count(v, seen)
		}
	case *node.Sequence:
		for v := range x.Elements() {
			c.count(v, seen)
		}
	default:
		for k, v := range node.SortedEntries(n) {
			c.count(k, seen)
			c.count(v, seen)
		}
	}
}

func (c *converter) node(n node.Node) *yaml.Node {
	if a, ok := c.anchors[n]; ok {
		return &yaml.Node{Kind: yaml.AliasNode, Value: a.Anchor, Alias: a}
	}
	if !n.IsContainer() {
		return scalar(n)
	}
	y := &yaml.Node{Kind: yaml.MappingNode, Tag: construct.TagMap}
	if c.shared[n] {
		y.Anchor = "a" + strconv.Itoa(len(c.anchors)+1)
		c.anchors[n] = y
	}
	switch x := n.(type) {
	case *node.Map:
		for k, v := range node.SortedEntries(x) {
			y.Content = append(y.Content, c.node(k), c.node(v))
		}
	case *node.OrderedMap:
		y.Kind, y.Tag = yaml.SequenceNode, construct.TagOrderedMap
		for k, v := range x.Entries() {
			y.Content = append(y.Content, c.entry(k, v))
		}
	case *node.Pairs:
		y.Kind, y.Tag = yaml.SequenceNode, construct.TagPairs
		for k, v := range x.Entries() {
			y.Content = append(y.Content, c.entry(k, v))
		}
	case *node.Set:
		y.Tag = construct.TagSet
		for v := range x.Elements() {
			y.Content = append(y.Content, c.node(v), scalar(node.NullNode()))
		}
	case *node.Sequence:
		y.Kind, y.Tag = yaml.SequenceNode, construct.TagSeq
		for v := range x.Elements() {
			y.Content = append(y.Content, c.node(v))
		}
	}
	return y
}

func (c *converter) entry(k, v node.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     construct.TagMap,
		Content: []*yaml.Node{c.node(k), c.node(v)},
	}
}

var plainResolver = node.DefaultFactory()

func scalar(n node.Node) *yaml.Node {
	y := &yaml.Node{Kind: yaml.ScalarNode, Value: n.AsText("")}
	k := n.Kind()
	switch {
	case k == node.NullKind, k == node.MissingKind:
		y.Tag, y.Value = construct.TagNull, "null"
	case k == node.BoolKind:
		y.Tag = construct.TagBool
	case k.IsIntegral():
		y.Tag = construct.TagInt
	case k.IsDecimal():
		y.Tag = construct.TagFloat
	case k == node.BinaryKind:
		y.Tag, y.Style = construct.TagBinary, yaml.TaggedStyle
	case k == node.TimeKind:
		y.Tag, y.Style = construct.TagTimestamp, yaml.TaggedStyle
	default:
		y.Tag = construct.TagStr
		if construct.Resolve(plainResolver, y.Value).Kind() != node.TextKind {
			y.Style = yaml.DoubleQuotedStyle
		}
	}
	return y
}
