package construct

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/signadot/ydom/debug"
	"github.com/signadot/ydom/node"
)

var (
	floatRE     = regexp.MustCompile(`^[-+]?(\.[0-9][0-9_]*|[0-9][0-9_]*(\.[0-9_]*)?)([eE][-+]?[0-9]+)?$`)
	timestampRE = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}([Tt ]|$)`)
)

var specialFloats = map[string]bool{
	".inf": true, ".Inf": true, ".INF": true,
	"+.inf": true, "+.Inf": true, "+.INF": true,
	"-.inf": true, "-.Inf": true, "-.INF": true,
	".nan": true, ".NaN": true, ".NAN": true,
}

func isNull(v string) bool {
	switch v {
	case "", "~", "null", "Null", "NULL":
		return true
	}
	return false
}

func yamlBool(v string) (bool, bool) {
	switch v {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

// scalar builds the node for a Scalar event.
func (b *Builder) scalar(ev Event) (node.Node, error) {
	f := b.f
	v := ev.Value
	tag := ShortTag(ev.Tag)
	switch tag {
	case "":
		if !ev.Plain {
			return f.Text(v), nil
		}
		n := Resolve(f, v)
		if debug.Narrow() {
			debug.Logf("resolved %q as %s\n", v, n.Kind())
		}
		return n, nil
	case TagStr:
		return f.Text(v), nil
	case TagNull:
		if !isNull(v) {
			return nil, fmt.Errorf("%w: %s %q", ErrScalar, tag, v)
		}
		return f.Null(), nil
	case TagBool:
		bv, ok := yamlBool(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrScalar, tag, v)
		}
		return f.Bool(bv), nil
	case TagInt:
		n, err := f.IntegralText(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScalar, err)
		}
		return n, nil
	case TagFloat:
		n, err := f.DecimalText(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScalar, err)
		}
		return n, nil
	case TagBinary:
		d, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(v), ""))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScalar, tag, err)
		}
		return f.Binary(d), nil
	case TagTimestamp:
		t, err := node.ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScalar, err)
		}
		return f.Time(t), nil
	}
	return f.Text(v), nil
}

// Resolve gives an untagged plain scalar the first matching kind among
// null, bool, integral, decimal and timestamp, and otherwise text.
func Resolve(f *node.Factory, v string) node.Node {
	if isNull(v) {
		return f.Null()
	}
	if bv, ok := yamlBool(v); ok {
		return f.Bool(bv)
	}
	if c := v[0]; c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
		if n, err := f.IntegralText(v); err == nil {
			return n
		}
		if specialFloats[v] || floatRE.MatchString(v) {
			if n, err := f.DecimalText(v); err == nil {
				return n
			}
		}
		if timestampRE.MatchString(v) {
			if t, err := node.ParseTime(v); err == nil {
				return f.Time(t)
			}
		}
	}
	return f.Text(v)
}
