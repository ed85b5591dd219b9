package yamlio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ydom/construct"
	"github.com/signadot/ydom/node"
	"gopkg.in/yaml.v3"
)

func TestDecode(t *testing.T) {
	f := node.DefaultFactory()
	tests := []struct {
		name string
		in   string
		path string
		kind node.Kind
		text string
	}{
		{"int", "a: 12", "a", node.ByteKind, "12"},
		{"quoted int", "a: '12'", "a", node.TextKind, "12"},
		{"literal", "a: |\n  x\n", "a", node.TextKind, "x\n"},
		{"long", "a: 4000000000", "a", node.LongKind, "4000000000"},
		{"decimal", "a: 2.50", "a", node.BigDecimalKind, "2.50"},
		{"inf", "a: -.inf", "a", node.DoubleKind, "-.inf"},
		{"null", "a: ~", "a", node.NullKind, ""},
		{"empty value", "a:", "a", node.NullKind, ""},
		{"bool", "a: True", "a", node.BoolKind, "true"},
		{"yes is text", "a: yes", "a", node.TextKind, "yes"},
		{"date", "a: 2002-12-14", "a", node.TimeKind, "2002-12-14T00:00:00Z"},
		{"tagged str", "a: !!str 1", "a", node.TextKind, "1"},
		{"tagged float", "a: !!float 1", "a", node.BigDecimalKind, "1"},
		{"long tag", "a: !<tag:yaml.org,2002:int> 7", "a", node.ByteKind, "7"},
		{"binary", "a: !!binary aGVsbG8=", "a", node.BinaryKind, "aGVsbG8="},
		{"custom tag", "a: !x 1", "a", node.TextKind, "1"},
		{"nested", "a: {b: [1, {c: x}]}", "a.b[1].c", node.TextKind, "x"},
		{"omap", "a: !!omap [x: 1, y: 2]", "a", node.OrderedMapKind, ""},
		{"pairs", "a: !!pairs [x: 1, x: 2]", "a", node.PairsKind, ""},
		{"set", "a: !!set {x, y}", "a", node.SetKind, ""},
		{"root scalar", "hello", "", node.TextKind, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := DecodeOne(f, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			got := n
			if tt.path != "" {
				got = node.At(n, tt.path)
			}
			if got.Kind() != tt.kind {
				t.Fatalf("kind = %s, want %s", got.Kind(), tt.kind)
			}
			if got.IsContainer() {
				return
			}
			if s := got.AsText(""); s != tt.text {
				t.Errorf("text = %q, want %q", s, tt.text)
			}
		})
	}
}

func TestDecodeStream(t *testing.T) {
	f := node.DefaultFactory()
	docs, err := Decode(f, []byte("a: 1\n---\n- x\n---\n"))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []node.Kind
	for _, d := range docs {
		kinds = append(kinds, d.Kind())
	}
	if diff := cmp.Diff([]node.Kind{node.MapKind, node.SequenceKind, node.NullKind}, kinds); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}

	docs, err = Decode(f, nil)
	if err != nil || len(docs) != 0 {
		t.Errorf("empty stream: %v %v", docs, err)
	}
	n, err := DecodeOne(f, nil)
	if err != nil || !n.IsNull() {
		t.Errorf("empty one: %v %v", n, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	f := node.DefaultFactory()
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"bad int", "a: !!int x", construct.ErrScalar},
		{"bad omap", "!!omap [1, 2]", construct.ErrStructure},
		{"recursive", "&a [*a]", construct.ErrEvents},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOne(f, []byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
	if _, err := DecodeOne(f, []byte("a: [")); err == nil {
		t.Error("syntax error not reported")
	}
}

func TestAliases(t *testing.T) {
	f := node.DefaultFactory()
	n, err := DecodeOne(f, []byte("a: &x {b: 1}\nc: *x\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Path("a") != n.Path("c") {
		t.Fatal("alias does not share the anchored node")
	}
	out, err := Encode(n)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "&a1") || !strings.Contains(string(out), "*a1") {
		t.Errorf("shared node not anchored:\n%s", out)
	}
	back, err := DecodeOne(f, out)
	if err != nil {
		t.Fatal(err)
	}
	if back.Path("a") != back.Path("c") {
		t.Error("identity lost in round trip")
	}
}

func TestEvents(t *testing.T) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte("&m !!omap [k: 'v']"), &doc); err != nil {
		t.Fatal(err)
	}
	evs, err := Events(&doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []construct.Event{
		{Type: construct.BeginSequence, Tag: "!!omap", Anchor: "m"},
		{Type: construct.BeginMapping},
		{Type: construct.Scalar, Value: "k", Plain: true},
		{Type: construct.Scalar, Value: "v"},
		{Type: construct.EndMapping},
		{Type: construct.EndSequence},
	}
	if diff := cmp.Diff(want, evs); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	f := node.DefaultFactory()
	m := f.Map()
	must(t, m.Put("int8", int8(3)))
	must(t, m.Put("long", int64(1)<<40))
	must(t, m.Put("double", 0.1))
	must(t, m.Put("nan", f.Double(math.NaN())))
	must(t, m.Put("text num", "12"))
	must(t, m.Put("text bool", "true"))
	must(t, m.Put("text date", "2020-01-01"))
	must(t, m.Put("empty", ""))
	must(t, m.Put("bin", []byte{0, 1, 2}))
	must(t, m.Put(int32(5), "int key"))
	om := f.OrderedMap()
	must(t, om.Put("z", 1))
	must(t, om.Put("a", 2))
	must(t, m.PutNode(f.Text("omap"), om))
	p := f.Pairs()
	must(t, p.Add("k", 1))
	must(t, p.Add("k", 2))
	must(t, m.PutNode(f.Text("pairs"), p))
	s := f.Set()
	must(t, s.Add("x"))
	must(t, s.Add(1))
	must(t, m.PutNode(f.Text("set"), s))
	seq := f.Sequence()
	must(t, seq.Add(nil))
	must(t, seq.Add(false))
	must(t, m.PutNode(f.Text("seq"), seq))

	out, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	back, err := DecodeOne(f, out)
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if !node.Equal(m, back) {
		t.Errorf("round trip differs:\n%s\n%v\n%v", out, m, back)
	}
	if back.Path("omap").Kind() != node.OrderedMapKind || back.Path("pairs").Kind() != node.PairsKind {
		t.Errorf("container kinds lost:\n%s", out)
	}
}

func TestEncodeSortsKeys(t *testing.T) {
	f := node.DefaultFactory()
	m := f.Map()
	for _, k := range []string{"c", "a", "b"} {
		must(t, m.Put(k, 1))
	}
	out, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a: 1\nb: 1\nc: 1\n", string(out)); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
