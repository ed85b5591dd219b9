// Package numrange reports whether integers fit into narrower signed widths.
//
// Each check is an inclusive comparison against the target width's minimum
// and maximum, expressed in the width of the value being checked.
package numrange

import (
	"math"
	"math/big"
)

var (
	minLong  = big.NewInt(math.MinInt64)
	maxLong  = big.NewInt(math.MaxInt64)
	minInt   = big.NewInt(math.MinInt32)
	maxInt   = big.NewInt(math.MaxInt32)
	minShort = big.NewInt(math.MinInt16)
	maxShort = big.NewInt(math.MaxInt16)
	minByte  = big.NewInt(math.MinInt8)
	maxByte  = big.NewInt(math.MaxInt8)
)

func bigIn(v, lo, hi *big.Int) bool {
	if v == nil {
		return false
	}
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

// BigFitsLong reports whether v fits in 64 bits. A nil v fits nowhere.
func BigFitsLong(v *big.Int) bool { return bigIn(v, minLong, maxLong) }

// BigFitsInt reports whether v fits in 32 bits.
func BigFitsInt(v *big.Int) bool { return bigIn(v, minInt, maxInt) }

// BigFitsShort reports whether v fits in 16 bits.
func BigFitsShort(v *big.Int) bool { return bigIn(v, minShort, maxShort) }

// BigFitsByte reports whether v fits in 8 bits.
func BigFitsByte(v *big.Int) bool { return bigIn(v, minByte, maxByte) }

func LongFitsInt(v int64) bool {
	return v >= int64(math.MinInt32) && v <= int64(math.MaxInt32)
}

func LongFitsShort(v int64) bool {
	return v >= int64(math.MinInt16) && v <= int64(math.MaxInt16)
}

func LongFitsByte(v int64) bool {
	return v >= int64(math.MinInt8) && v <= int64(math.MaxInt8)
}

func IntFitsShort(v int32) bool {
	return v >= int32(math.MinInt16) && v <= int32(math.MaxInt16)
}

func IntFitsByte(v int32) bool {
	return v >= int32(math.MinInt8) && v <= int32(math.MaxInt8)
}

func ShortFitsByte(v int16) bool {
	return v >= int16(math.MinInt8) && v <= int16(math.MaxInt8)
}
