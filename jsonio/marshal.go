package jsonio

import (
	"bytes"
	"iter"

	json "github.com/goccy/go-json"
	"github.com/signadot/ydom/node"
)

// Marshal renders n as compact JSON.
//
// Maps, ordered maps and pairs become objects; map keys are sorted and the
// others keep their order, so pairs may repeat keys. Sets and sequences
// become arrays. Binary values are base64 strings, times RFC 3339 strings
// and non finite decimals the strings .inf, -.inf and .nan.
func Marshal(n node.Node) ([]byte, error) {
	var buf bytes.Buffer
	w := &writer{buf: &buf}
	if err := w.write(n, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is Marshal with each element on its own line, starting with
// prefix followed by one copy of indent per level of nesting. Numbers are
// written as Marshal writes them, whatever their magnitude.
func MarshalIndent(n node.Node, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	w := &writer{buf: &buf, prefix: prefix, indent: indent, pretty: true}
	if err := w.write(n, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type writer struct {
	buf            *bytes.Buffer
	prefix, indent string
	pretty         bool
}

func (w *writer) newline(depth int) {
	if !w.pretty {
		return
	}
	w.buf.WriteByte('\n')
	w.buf.WriteString(w.prefix)
	for range depth {
		w.buf.WriteString(w.indent)
	}
}

func (w *writer) write(n node.Node, depth int) error {
	k := n.Kind()
	switch {
	case k == node.NullKind, k == node.MissingKind:
		w.buf.WriteString("null")
	case k == node.BoolKind, k.IsIntegral():
		w.buf.WriteString(n.AsText(""))
	case k.IsDecimal():
		switch s := n.AsText(""); s {
		case node.InfToken, node.NegInfToken, node.NaNToken:
			return w.writeString(s)
		default:
			w.buf.WriteString(s)
		}
	case k == node.SequenceKind:
		return w.writeArray(n.(*node.Sequence).Elements(), depth)
	case k == node.SetKind:
		return w.writeArray(n.(*node.Set).Elements(), depth)
	case k == node.MapKind:
		return w.writeObject(node.SortedEntries(n), depth)
	case k == node.OrderedMapKind:
		return w.writeObject(n.(*node.OrderedMap).Entries(), depth)
	case k == node.PairsKind:
		return w.writeObject(n.(*node.Pairs).Entries(), depth)
	default:
		return w.writeString(n.AsText(""))
	}
	return nil
}

func (w *writer) writeString(s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	w.buf.Write(d)
	return nil
}

func (w *writer) writeArray(vs iter.Seq[node.Node], depth int) error {
	w.buf.WriteByte('[')
	i := 0
	for v := range vs {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		i++
		w.newline(depth + 1)
		if err := w.write(v, depth+1); err != nil {
			return err
		}
	}
	if i > 0 {
		w.newline(depth)
	}
	w.buf.WriteByte(']')
	return nil
}

func (w *writer) writeObject(es iter.Seq2[node.Node, node.Node], depth int) error {
	w.buf.WriteByte('{')
	i := 0
	for k, v := range es {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		i++
		w.newline(depth + 1)
		if err := w.writeString(keyText(k)); err != nil {
			return err
		}
		w.buf.WriteByte(':')
		if w.pretty {
			w.buf.WriteByte(' ')
		}
		if err := w.write(v, depth+1); err != nil {
			return err
		}
	}
	if i > 0 {
		w.newline(depth)
	}
	w.buf.WriteByte('}')
	return nil
}

// keyText is the object key for k: the text of a scalar, null for the null
// node and the flow rendering of a container.
func keyText(k node.Node) string {
	switch {
	case k.IsNull():
		return "null"
	case k.IsContainer():
		return k.String()
	}
	return k.AsText("")
}
