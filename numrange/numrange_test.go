package numrange

import (
	"math"
	"math/big"
	"testing"
)

func TestBigFits(t *testing.T) {
	over := new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))
	under := new(big.Int).Sub(big.NewInt(math.MinInt64), big.NewInt(1))
	tests := []struct {
		name                     string
		v                        *big.Int
		byte_, short, int_, long bool
	}{
		{"zero", big.NewInt(0), true, true, true, true},
		{"max byte", big.NewInt(127), true, true, true, true},
		{"min byte", big.NewInt(-128), true, true, true, true},
		{"above byte", big.NewInt(128), false, true, true, true},
		{"below byte", big.NewInt(-129), false, true, true, true},
		{"max short", big.NewInt(32767), false, true, true, true},
		{"above short", big.NewInt(32768), false, false, true, true},
		{"min int", big.NewInt(math.MinInt32), false, false, true, true},
		{"below int", big.NewInt(math.MinInt32 - 1), false, false, false, true},
		{"max long", big.NewInt(math.MaxInt64), false, false, false, true},
		{"above long", over, false, false, false, false},
		{"below long", under, false, false, false, false},
		{"nil", nil, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BigFitsByte(tt.v); got != tt.byte_ {
				t.Errorf("BigFitsByte(%v) = %v, want %v", tt.v, got, tt.byte_)
			}
			if got := BigFitsShort(tt.v); got != tt.short {
				t.Errorf("BigFitsShort(%v) = %v, want %v", tt.v, got, tt.short)
			}
			if got := BigFitsInt(tt.v); got != tt.int_ {
				t.Errorf("BigFitsInt(%v) = %v, want %v", tt.v, got, tt.int_)
			}
			if got := BigFitsLong(tt.v); got != tt.long {
				t.Errorf("BigFitsLong(%v) = %v, want %v", tt.v, got, tt.long)
			}
		})
	}
}

func TestNativeFits(t *testing.T) {
	if !LongFitsInt(math.MaxInt32) || LongFitsInt(math.MaxInt32+1) {
		t.Error("LongFitsInt boundary")
	}
	if !LongFitsShort(math.MinInt16) || LongFitsShort(math.MinInt16-1) {
		t.Error("LongFitsShort boundary")
	}
	if !LongFitsByte(-128) || LongFitsByte(128) {
		t.Error("LongFitsByte boundary")
	}
	if !IntFitsShort(math.MaxInt16) || IntFitsShort(math.MaxInt16+1) {
		t.Error("IntFitsShort boundary")
	}
	if !IntFitsByte(127) || IntFitsByte(-129) {
		t.Error("IntFitsByte boundary")
	}
	if !ShortFitsByte(-128) || ShortFitsByte(200) {
		t.Error("ShortFitsByte boundary")
	}
}
