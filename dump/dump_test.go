package dump

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ydom/node"
)

func TestWrite(t *testing.T) {
	f := node.DefaultFactory()
	m := f.Map()
	_ = m.Put("b", []any{int32(1), "x", nil})
	_ = m.Put("a", f.Binary([]byte("hi")))
	om := f.OrderedMap()
	_ = om.Put("z", 1.5)
	_ = om.Put("y", f.Set())
	_ = m.Put("c", om)

	want := strings.Join([]string{
		`!!map`,
		`  "a": !!binary aGk=`,
		`  "b": !!seq`,
		`    - !!int32 1`,
		`    - !!str "x"`,
		`    - !!null`,
		`  "c": !!omap`,
		`    "z": !!float64 1.5`,
		`    "y": !!set {}`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, String(m)); diff != "" {
		t.Errorf("outline (-want +got):\n%s", diff)
	}

	if got := String(node.Missing()); got != "!!missing\n" {
		t.Errorf("missing = %q", got)
	}
	if got := String(f.Sequence(), WithIndent(4)); got != "!!seq []\n" {
		t.Errorf("empty sequence = %q", got)
	}
}

func TestWriteIndent(t *testing.T) {
	f := node.DefaultFactory()
	p := f.Pairs()
	_ = p.Add("k", 1)
	_ = p.Add("k", []any{true})
	want := "!!pairs\n    \"k\": !!int8 1\n    \"k\": !!seq\n        - !!bool true\n"
	if diff := cmp.Diff(want, String(p, WithIndent(4))); diff != "" {
		t.Errorf("outline (-want +got):\n%s", diff)
	}
}

func TestWriteColors(t *testing.T) {
	f := node.DefaultFactory()
	colors := NewColors()
	var calls []string
	colors.Map[Colorable{Kind: node.TextKind, Attr: ValueColor}] = func(v string, _ ...any) string {
		calls = append(calls, v)
		return "<" + v + ">"
	}
	got := String(f.Text("100%"), WithColors(colors))
	if !strings.Contains(got, `<"100%">`) {
		t.Errorf("colored output %q", got)
	}
	if diff := cmp.Diff([]string{`"100%"`}, calls); diff != "" {
		t.Errorf("color calls (-want +got):\n%s", diff)
	}
}
