// Package jsonio reads and writes node trees as JSON using
// github.com/goccy/go-json, and applies RFC 6902 patches to them.
package jsonio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/signadot/ydom/construct"
	"github.com/signadot/ydom/node"
)

// Decode builds the tree of the JSON value in data. Numbers are narrowed as
// plain YAML numbers are, so 1 is a Byte and 1.5 a decimal.
func Decode(f *node.Factory, data []byte) (node.Node, error) {
	return Read(f, bytes.NewReader(data))
}

// Read is Decode on a reader.
func Read(f *node.Factory, r io.Reader) (node.Node, error) {
	return construct.BuildFrom(f, NewSource(r))
}

// Source turns the tokens of a JSON text into construction events.
type Source struct {
	dec *json.Decoder
}

func NewSource(r io.Reader) *Source {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Source{dec: dec}
}

func (s *Source) Next() (construct.Event, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return construct.Event{}, io.EOF
		}
		return construct.Event{}, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return construct.Event{Type: construct.BeginMapping}, nil
		case '}':
			return construct.Event{Type: construct.EndMapping}, nil
		case '[':
			return construct.Event{Type: construct.BeginSequence}, nil
		case ']':
			return construct.Event{Type: construct.EndSequence}, nil
		}
	case string:
		return construct.Event{Type: construct.Scalar, Tag: construct.TagStr, Value: v}, nil
	case json.Number:
		return construct.Event{Type: construct.Scalar, Value: string(v), Plain: true}, nil
	case bool:
		ev := construct.Event{Type: construct.Scalar, Tag: construct.TagBool, Value: "false", Plain: true}
		if v {
			ev.Value = "true"
		}
		return ev, nil
	case nil:
		return construct.Event{Type: construct.Scalar, Tag: construct.TagNull, Value: "null", Plain: true}, nil
	}
	return construct.Event{}, fmt.Errorf("%w: unexpected json token %v (%T)", construct.ErrEvents, tok, tok)
}
