// Package yamlio reads and writes node trees as YAML using gopkg.in/yaml.v3.
package yamlio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/ydom/construct"
	"github.com/signadot/ydom/node"
	"gopkg.in/yaml.v3"
)

// Decode builds a tree for each document of a YAML stream.
func Decode(f *node.Factory, data []byte) ([]node.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var res []node.Node
	for i := 0; ; i++ {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		n, err := build(f, &doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, n)
	}
}

// DecodeOne builds the tree of the first document of a YAML stream. An
// empty stream yields the null node.
func DecodeOne(f *node.Factory, data []byte) (node.Node, error) {
	var doc yaml.Node
	err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return f.Null(), nil
	}
	if err != nil {
		return nil, err
	}
	return build(f, &doc)
}

func build(f *node.Factory, doc *yaml.Node) (node.Node, error) {
	evs, err := Events(doc)
	if err != nil {
		return nil, err
	}
	return construct.Build(f, evs)
}

// Events flattens a yaml.v3 node tree into construction events. Only tags
// written in the source are carried, and aliases stay aliases.
func Events(doc *yaml.Node) ([]construct.Event, error) {
	var evs []construct.Event
	if err := events(doc, &evs); err != nil {
		return nil, err
	}
	return evs, nil
}

func events(y *yaml.Node, evs *[]construct.Event) error {
	tag := ""
	if y.Style&yaml.TaggedStyle != 0 {
		tag = y.Tag
	}
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			*evs = append(*evs, construct.Event{Type: construct.Scalar, Plain: true})
			return nil
		}
		return events(y.Content[0], evs)
	case yaml.ScalarNode:
		*evs = append(*evs, construct.Event{
			Type:   construct.Scalar,
			Tag:    tag,
			Anchor: y.Anchor,
			Value:  y.Value,
			Plain:  y.Style&quoted == 0,
		})
		return nil
	case yaml.AliasNode:
		*evs = append(*evs, construct.Event{Type: construct.Alias, Anchor: y.Value})
		return nil
	case yaml.MappingNode, yaml.SequenceNode:
		begin, end := construct.BeginMapping, construct.EndMapping
		if y.Kind == yaml.SequenceNode {
			begin, end = construct.BeginSequence, construct.EndSequence
		}
		*evs = append(*evs, construct.Event{Type: begin, Tag: tag, Anchor: y.Anchor})
		for _, c := range y.Content {
			if err := events(c, evs); err != nil {
				return err
			}
		}
		*evs = append(*evs, construct.Event{Type: end})
		return nil
	}
	return fmt.Errorf("%w: line %d: unexpected yaml node kind %d", construct.ErrEvents, y.Line, y.Kind)
}

const quoted = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle
