package construct

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ydom/node"
)

func plain(v string) Event  { return Event{Type: Scalar, Value: v, Plain: true} }
func quoted(v string) Event { return Event{Type: Scalar, Value: v} }
func tagged(tag, v string) Event {
	return Event{Type: Scalar, Tag: tag, Value: v, Plain: true}
}

func mapping(tag string, evs ...Event) []Event {
	res := []Event{{Type: BeginMapping, Tag: tag}}
	res = append(res, evs...)
	return append(res, Event{Type: EndMapping})
}

func sequence(tag string, evs ...Event) []Event {
	res := []Event{{Type: BeginSequence, Tag: tag}}
	res = append(res, evs...)
	return append(res, Event{Type: EndSequence})
}

func concat(evss ...[]Event) []Event {
	var res []Event
	for _, evs := range evss {
		res = append(res, evs...)
	}
	return res
}

func TestResolve(t *testing.T) {
	f := node.DefaultFactory()
	tests := []struct {
		ev   Event
		kind node.Kind
		text string
	}{
		{plain(""), node.NullKind, ""},
		{plain("~"), node.NullKind, ""},
		{plain("Null"), node.NullKind, ""},
		{plain("true"), node.BoolKind, "true"},
		{plain("FALSE"), node.BoolKind, "false"},
		{plain("yes"), node.TextKind, "yes"},
		{plain("12"), node.ByteKind, "12"},
		{plain("-300"), node.ShortKind, "-300"},
		{plain("0x10"), node.ByteKind, "16"},
		{plain("99999999999"), node.LongKind, "99999999999"},
		{plain("123456789012345678901234567890"), node.BigIntKind, "123456789012345678901234567890"},
		{plain("1.5"), node.BigDecimalKind, "1.5"},
		{plain(".5"), node.BigDecimalKind, "0.5"},
		{plain("1e3"), node.BigDecimalKind, "1E+3"},
		{plain(".inf"), node.DoubleKind, ".inf"},
		{plain("-.Inf"), node.DoubleKind, "-.inf"},
		{plain(".NaN"), node.DoubleKind, ".nan"},
		{plain("nan"), node.TextKind, "nan"},
		{plain("2002-12-14"), node.TimeKind, "2002-12-14T00:00:00Z"},
		{plain("2002-12-14x"), node.TextKind, "2002-12-14x"},
		{plain("1.2.3"), node.TextKind, "1.2.3"},
		{plain("- x"), node.TextKind, "- x"},
		{quoted("12"), node.TextKind, "12"},
		{quoted(""), node.TextKind, ""},
		{tagged("!!str", "true"), node.TextKind, "true"},
		{tagged("tag:yaml.org,2002:int", "7"), node.ByteKind, "7"},
		{tagged("!!float", "7"), node.BigDecimalKind, "7"},
		{tagged("!!null", "null"), node.NullKind, ""},
		{tagged("!!binary", "aGVs\n bG8="), node.BinaryKind, "aGVsbG8="},
		{tagged("!!timestamp", "2001-12-14 21:59:43.10 -5"), node.TimeKind, "2001-12-14T21:59:43.1-05:00"},
		{tagged("!custom", "12"), node.TextKind, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.ev.String(), func(t *testing.T) {
			n, err := Build(f, []Event{tt.ev})
			if err != nil {
				t.Fatal(err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", n.Kind(), tt.kind)
			}
			if got := n.AsText(""); got != tt.text {
				t.Errorf("text = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestScalarErrors(t *testing.T) {
	f := node.DefaultFactory()
	for _, ev := range []Event{
		tagged("!!int", "1.5"),
		tagged("!!float", "abc"),
		tagged("!!bool", "yes"),
		tagged("!!null", "nothing"),
		tagged("!!binary", "@@@"),
		tagged("!!timestamp", "today"),
	} {
		t.Run(ev.String(), func(t *testing.T) {
			_, err := Build(f, []Event{ev})
			if !errors.Is(err, ErrScalar) {
				t.Errorf("err = %v, want ErrScalar", err)
			}
		})
	}
}

func TestPrecision(t *testing.T) {
	f := node.NewFactory(node.WithPrecision(node.FloatPrecision))
	n, err := Build(f, concat(sequence("", plain("1.5"), tagged("!!float", "2"), plain("3"))))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []node.Kind
	for v := range n.(*node.Sequence).Elements() {
		kinds = append(kinds, v.Kind())
	}
	if diff := cmp.Diff([]node.Kind{node.FloatKind, node.FloatKind, node.ByteKind}, kinds); diff != "" {
		t.Errorf("kinds (-want +got):\n%s", diff)
	}
}

func TestCollections(t *testing.T) {
	f := node.DefaultFactory()
	evs := concat(
		[]Event{{Type: BeginMapping}},
		[]Event{plain("map")}, mapping("", plain("b"), plain("1")),
		[]Event{plain("omap")}, mapping("!!omap", plain("z"), plain("1"), plain("a"), plain("2")),
		[]Event{plain("omapseq")}, sequence("tag:yaml.org,2002:omap",
			concat(mapping("", plain("z"), plain("1")), mapping("", plain("a"), plain("2")))...),
		[]Event{plain("pairs")}, sequence("!!pairs",
			concat(mapping("", plain("k"), plain("1")), mapping("", plain("k"), plain("2")))...),
		[]Event{plain("set")}, mapping("!!set", plain("x"), plain(""), plain("y"), plain(""), plain("x"), plain("")),
		[]Event{plain("seq")}, sequence("", plain("1"), quoted("two")),
		[]Event{{Type: EndMapping}},
	)
	n, err := Build(f, evs)
	if err != nil {
		t.Fatal(err)
	}
	wantKinds := map[string]node.Kind{
		"map":     node.MapKind,
		"omap":    node.OrderedMapKind,
		"omapseq": node.OrderedMapKind,
		"pairs":   node.PairsKind,
		"set":     node.SetKind,
		"seq":     node.SequenceKind,
	}
	for k, want := range wantKinds {
		if got := n.Path(k).Kind(); got != want {
			t.Errorf("%s kind = %s, want %s", k, got, want)
		}
	}
	if !node.Equal(n.Path("omap"), n.Path("omapseq")) {
		t.Errorf("omap forms differ: %v vs %v", n.Path("omap"), n.Path("omapseq"))
	}
	var keys []string
	for _, k := range n.Path("omap").(*node.OrderedMap).Keys() {
		keys = append(keys, k.AsText(""))
	}
	if diff := cmp.Diff([]string{"z", "a"}, keys); diff != "" {
		t.Errorf("omap keys (-want +got):\n%s", diff)
	}
	if got := len(n.Path("pairs").(*node.Pairs).GetAll("k")); got != 2 {
		t.Errorf("pairs has %d values for k", got)
	}
	if got := n.Path("set").Len(); got != 2 {
		t.Errorf("set has %d elements", got)
	}
	if got := node.At(n, "seq[1]").AsText(""); got != "two" {
		t.Errorf("seq[1] = %q", got)
	}
}

func TestAliases(t *testing.T) {
	f := node.DefaultFactory()
	evs := concat(
		[]Event{{Type: BeginSequence}},
		[]Event{{Type: BeginMapping, Anchor: "m"}, plain("a"), plain("1"), {Type: EndMapping}},
		[]Event{{Type: Alias, Anchor: "m"}},
		[]Event{{Type: Scalar, Value: "big", Anchor: "s", Plain: true}},
		[]Event{{Type: Alias, Anchor: "s"}},
		[]Event{{Type: EndSequence}},
	)
	n, err := Build(f, evs)
	if err != nil {
		t.Fatal(err)
	}
	seq := n.(*node.Sequence)
	if seq.Get(0) != seq.Get(1) {
		t.Error("alias does not share the anchored instance")
	}
	if seq.Get(2) != seq.Get(3) {
		t.Error("scalar alias does not share the anchored instance")
	}
	c := seq.Copy().(*node.Sequence)
	if c.Get(0) != c.Get(1) || c.Get(0) == seq.Get(0) {
		t.Error("copy does not preserve aliasing")
	}
}

func TestEventErrors(t *testing.T) {
	f := node.DefaultFactory()
	tests := []struct {
		name string
		evs  []Event
		err  error
	}{
		{"empty", nil, ErrEvents},
		{"unclosed", []Event{{Type: BeginSequence}}, ErrEvents},
		{"unbalanced", []Event{{Type: EndMapping}}, ErrEvents},
		{"mismatched", []Event{{Type: BeginSequence}, {Type: EndMapping}}, ErrEvents},
		{"dangling key", mapping("", plain("k")), ErrEvents},
		{"two roots", []Event{plain("1"), plain("2")}, ErrEvents},
		{"unknown alias", []Event{{Type: Alias, Anchor: "x"}}, ErrEvents},
		{"recursive alias", []Event{{Type: BeginSequence, Anchor: "x"}, {Type: Alias, Anchor: "x"}, {Type: EndSequence}}, ErrEvents},
		{"bad omap item", sequence("!!omap", plain("x")), ErrStructure},
		{"omap item size", sequence("!!omap", mapping("", plain("a"), plain("1"), plain("b"), plain("2"))...), ErrStructure},
		{"omap repeats", sequence("!!omap", concat(mapping("", plain("a"), plain("1")), mapping("", plain("a"), plain("2")))...), ErrStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(f, tt.evs)
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestBuildFrom(t *testing.T) {
	f := node.DefaultFactory()
	src := &SliceSource{Events: sequence("", plain("18446744073709551616"), tagged("!!timestamp", "2020-01-02"))}
	n, err := BuildFrom(f, src)
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 64)
	if got := n.Path(0).AsBigInt(nil); got.Cmp(want) != 0 {
		t.Errorf("[0] = %v", got)
	}
	if got := n.Path(1).AsTime(time.Time{}); !got.Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("[1] = %v", got)
	}
}
