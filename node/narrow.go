package node

import (
	"fmt"
	"math/big"

	"github.com/signadot/ydom/numrange"
)

// Integral returns the narrowest integral node holding v: Byte, then Short,
// Int, Long and finally BigInt. A nil v yields the null node.
func (f *Factory) Integral(v *big.Int) Node {
	if v == nil {
		return nullNode
	}
	if numrange.BigFitsLong(v) {
		return f.IntegralLong(v.Int64())
	}
	return &BigInt{v: new(big.Int).Set(v)}
}

// IntegralLong is Integral for values already known to fit in an int64.
func (f *Factory) IntegralLong(v int64) Node {
	switch {
	case numrange.LongFitsByte(v):
		return f.Byte(int8(v))
	case numrange.LongFitsShort(v):
		return f.Short(int16(v))
	case numrange.LongFitsInt(v):
		return f.Int(int32(v))
	default:
		return f.Long(v)
	}
}

// IntegralText parses an integer literal and narrows it as Integral does.
// The literal may carry a sign, underscores between digits and a 0x, 0o or
// 0b prefix.
func (f *Factory) IntegralText(s string) (Node, error) {
	v, ok := parseInteger(s)
	if !ok {
		return nil, fmt.Errorf("%w: not an integer: %q", ErrInvalidArgument, s)
	}
	return f.Integral(v), nil
}

// DecimalText parses a decimal literal, including the .inf, -.inf and .nan
// tokens, and builds the node the factory's precision calls for.
func (f *Factory) DecimalText(s string) (Node, error) {
	norm := normalizeNumber(s)
	if v, ok := specialFloat(norm); ok {
		return f.Double(v), nil
	}
	d, ok := parseBigDecimal(norm)
	if !ok {
		return nil, fmt.Errorf("%w: not a decimal: %q", ErrInvalidArgument, s)
	}
	return f.BigDecimal(d), nil
}
