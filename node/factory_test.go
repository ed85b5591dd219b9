package node

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
)

func TestIntegralNarrowing(t *testing.T) {
	f := DefaultFactory()
	tests := []struct {
		text string
		kind Kind
	}{
		{"0", ByteKind},
		{"127", ByteKind},
		{"-128", ByteKind},
		{"128", ShortKind},
		{"-129", ShortKind},
		{"32767", ShortKind},
		{"32768", IntKind},
		{"-2147483648", IntKind},
		{"2147483648", LongKind},
		{"9223372036854775807", LongKind},
		{"9223372036854775808", BigIntKind},
		{"-9223372036854775809", BigIntKind},
		{"1_000", ShortKind},
		{"+5", ByteKind},
		{"0xff", ShortKind},
		{"0o17", ByteKind},
		{"0b101", ByteKind},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n, err := f.IntegralText(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("IntegralText(%q) kind = %s, want %s", tt.text, n.Kind(), tt.kind)
			}
			want, _ := parseInteger(tt.text)
			if got := n.AsBigInt(nil); got.Cmp(want) != 0 {
				t.Errorf("IntegralText(%q) = %s, want %s", tt.text, got, want)
			}
		})
	}

	for _, bad := range []string{"", "1.5", "abc", "0x", "--1", "1e3"} {
		t.Run("bad "+bad, func(t *testing.T) {
			if _, err := f.IntegralText(bad); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("IntegralText(%q) err = %v, want ErrInvalidArgument", bad, err)
			}
		})
	}

	if f.Integral(nil) != NullNode() {
		t.Error("Integral(nil) is not null")
	}
}

func TestDecimalText(t *testing.T) {
	tests := []struct {
		name      string
		precision Precision
		text      string
		kind      Kind
		want      float64
	}{
		{"arbitrary", ArbitraryPrecision, "1_000.5", BigDecimalKind, 1000.5},
		{"double", DoublePrecision, "1_000.5", DoubleKind, 1000.5},
		{"float", FloatPrecision, "0.25", FloatKind, 0.25},
		{"exponent", ArbitraryPrecision, "1e3", BigDecimalKind, 1000},
		{"inf", ArbitraryPrecision, ".inf", DoubleKind, math.Inf(1)},
		{"plus inf", ArbitraryPrecision, "+.INF", DoubleKind, math.Inf(1)},
		{"neg inf", ArbitraryPrecision, "-.inf", DoubleKind, math.Inf(-1)},
		{"float inf", FloatPrecision, ".inf", FloatKind, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory(WithPrecision(tt.precision))
			n, err := f.DecimalText(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", n.Kind(), tt.kind)
			}
			if got := n.AsDouble(0); got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
	n, err := DefaultFactory().DecimalText(".NaN")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != DoubleKind || !math.IsNaN(n.AsDouble(0)) {
		t.Errorf(".NaN = %s %v", n.Kind(), n)
	}
	if _, err := DefaultFactory().DecimalText("one"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("DecimalText(one) err = %v", err)
	}
}

func TestPrecisionPolicy(t *testing.T) {
	big1 := apd.New(15, -1)
	tests := []struct {
		precision                 Precision
		float, double, bigDecimal Kind
	}{
		{ArbitraryPrecision, FloatKind, DoubleKind, BigDecimalKind},
		{DoublePrecision, DoubleKind, DoubleKind, DoubleKind},
		{FloatPrecision, FloatKind, FloatKind, FloatKind},
	}
	for _, tt := range tests {
		t.Run(tt.precision.String(), func(t *testing.T) {
			f := NewFactory(WithPrecision(tt.precision))
			if got := f.Float(1.5).Kind(); got != tt.float {
				t.Errorf("Float kind = %s, want %s", got, tt.float)
			}
			if got := f.Double(1.5).Kind(); got != tt.double {
				t.Errorf("Double kind = %s, want %s", got, tt.double)
			}
			n := f.BigDecimal(big1)
			if got := n.Kind(); got != tt.bigDecimal {
				t.Errorf("BigDecimal kind = %s, want %s", got, tt.bigDecimal)
			}
			if got := n.AsDouble(0); got != 1.5 {
				t.Errorf("BigDecimal value = %v", got)
			}
		})
	}

	p, err := ParsePrecision("double")
	if err != nil || p != DoublePrecision {
		t.Errorf("ParsePrecision(double) = %v, %v", p, err)
	}
	if _, err := ParsePrecision("quad"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParsePrecision(quad) err = %v", err)
	}
}

func TestNullNormalization(t *testing.T) {
	f := DefaultFactory()
	for name, n := range map[string]Node{
		"binary":      f.Binary(nil),
		"big int":     f.BigInt(nil),
		"big decimal": f.BigDecimal(nil),
	} {
		if n != NullNode() {
			t.Errorf("%s(nil) = %v, want null", name, n)
		}
	}
	if f.Binary([]byte{}) == NullNode() {
		t.Error("empty binary is null")
	}
}

func TestFrom(t *testing.T) {
	f := DefaultFactory()
	s := "s"
	var nilMap *Map
	var nilString *string
	huge := uint64(math.MaxUint64)
	tests := []struct {
		name string
		v    any
		kind Kind
	}{
		{"nil", nil, NullKind},
		{"nil node", nilMap, NullKind},
		{"nil pointer", nilString, NullKind},
		{"bool", true, BoolKind},
		{"int narrows", 5, ByteKind},
		{"int narrows to short", 1000, ShortKind},
		{"int8", int8(5), ByteKind},
		{"int16", int16(5), ShortKind},
		{"int32", int32(5), IntKind},
		{"int64", int64(5), LongKind},
		{"uint8", uint8(200), ShortKind},
		{"uint64", uint64(7), ByteKind},
		{"huge uint64", huge, BigIntKind},
		{"float32", float32(1.5), FloatKind},
		{"float64", 1.5, DoubleKind},
		{"big int", big.NewInt(3), BigIntKind},
		{"decimal", apd.New(1, -1), BigDecimalKind},
		{"string", "x", TextKind},
		{"string pointer", &s, TextKind},
		{"bytes", []byte("x"), BinaryKind},
		{"nil bytes", []byte(nil), NullKind},
		{"time", time.Now(), TimeKind},
		{"slice", []any{1, "a", nil}, SequenceKind},
		{"nodes", []Node{True()}, SequenceKind},
		{"map", map[string]any{"a": 1}, MapKind},
		{"node", True(), BoolKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := f.From(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("From(%#v) kind = %s, want %s", tt.v, n.Kind(), tt.kind)
			}
		})
	}

	for _, bad := range []any{struct{}{}, make(chan int), []string{"a"}} {
		if _, err := f.From(bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("From(%T) err = %v, want ErrInvalidArgument", bad, err)
		}
	}

	n, err := f.From(map[string]any{"a": []any{int64(1), "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := At(n, "a[1]").AsText(""); got != "b" {
		t.Errorf("a[1] = %q", got)
	}
	if got := At(n, "a[0]").Kind(); got != LongKind {
		t.Errorf("a[0] kind = %s", got)
	}
}
