package node

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Step is a parsed path such as a.b[0]. Each step holds either a field name
// or an index and links to the next one.
//
// Path syntax:
//   - "a.b" → field b of field a
//   - "a[0]" → element 0 of field a
//   - "[0][1]" → element 1 of element 0
//   - "a.'b.c'" → field "b.c" of field a; fields may be single or double
//     quoted
//   - "" → the root (nil *Step)
type Step struct {
	Field *string
	Index *int
	Next  *Step
}

// ParsePath parses a path. Syntax errors wrap ErrPath.
func ParsePath(p string) (*Step, error) {
	if p == "" {
		return nil, nil
	}
	root := &Step{}
	if err := parseFrag(p, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

// At returns the node found by following path from n, or the missing node
// when a step is absent or the path does not parse.
func At(n Node, path string) Node {
	p, err := ParsePath(path)
	if err != nil {
		return missingNode
	}
	return p.Resolve(n)
}

// Resolve follows the steps from n.
func (s *Step) Resolve(n Node) Node {
	for x := s; x != nil && n.Exists(); x = x.Next {
		switch {
		case x.Field != nil:
			if !n.Kind().IsKeyed() {
				return missingNode
			}
			n = n.Path(*x.Field)
		case x.Index != nil:
			n = n.Path(*x.Index)
		}
	}
	return n
}

func (s *Step) String() string {
	if s == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := s; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			if quoteField(*x.Field) {
				buf.WriteString(strconv.Quote(*x.Field))
			} else {
				buf.WriteString(*x.Field)
			}
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func quoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, ".[]'\" \t\n")
}

func parseFrag(frag string, s *Step, first bool) error {
	var rest string
	switch {
	case frag[0] == '[':
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i], 10, 63)
		if err != nil {
			return fmt.Errorf("invalid index %q", frag[1:i])
		}
		index := int(u64)
		s.Index = &index
		rest = frag[i+1:]
	case frag[0] == '.' || first:
		if frag[0] == '.' {
			frag = frag[1:]
		}
		field, r, err := parseField(frag)
		if err != nil {
			return err
		}
		s.Field = &field
		rest = r
	default:
		return fmt.Errorf("expected '.' or '[', got %q", frag[0])
	}
	if rest == "" {
		return nil
	}
	s.Next = &Step{}
	return parseFrag(rest, s.Next, false)
}

// parseField parses a field name, which is quoted or runs up to the next
// '.' or '['.
func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	switch frag[0] {
	case '"':
		for i := 1; i < len(frag); i++ {
			switch frag[i] {
			case '\\':
				i++
			case '"':
				field, err := strconv.Unquote(frag[:i+1])
				if err != nil {
					return "", "", fmt.Errorf("invalid quoted field: %w", err)
				}
				return field, frag[i+1:], nil
			}
		}
		return "", "", fmt.Errorf("unterminated quoted field")
	case '\'':
		var b strings.Builder
		for i := 1; i < len(frag); i++ {
			if frag[i] != '\'' {
				b.WriteByte(frag[i])
				continue
			}
			if i+1 < len(frag) && frag[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			return b.String(), frag[i+1:], nil
		}
		return "", "", fmt.Errorf("unterminated quoted field")
	}
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		return frag, "", nil
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}
