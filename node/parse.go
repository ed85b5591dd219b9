package node

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Decimal literal tokens recognized after normalization.
const (
	InfToken    = ".inf"
	NegInfToken = "-.inf"
	NaNToken    = ".nan"
)

// normalizeNumber trims, lower-cases and strips digit separators.
func normalizeNumber(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
}

// parseInteger parses a base 10 integer with an optional sign, or a 0x, 0o or
// 0b prefixed integer. Underscores are ignored.
func parseInteger(s string) (*big.Int, bool) {
	s = normalizeNumber(s)
	if s == "" {
		return nil, false
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	base := 10
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base = 16
			s = s[2:]
		case 'o':
			base = 8
			s = s[2:]
		case 'b':
			base = 2
			s = s[2:]
		}
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return nil, false
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	if neg {
		v.Neg(v)
	}
	return v, true
}

// specialFloat maps the infinity and not-a-number tokens.
func specialFloat(norm string) (float64, bool) {
	switch norm {
	case InfToken, "+" + InfToken:
		return math.Inf(1), true
	case NegInfToken:
		return math.Inf(-1), true
	case NaNToken:
		return math.NaN(), true
	}
	return 0, false
}

// parseDouble accepts the literals parseBigDecimal does plus the special
// tokens. Values beyond the double range give +-Inf.
func parseDouble(s string) (float64, bool) {
	norm := normalizeNumber(s)
	if f, ok := specialFloat(norm); ok {
		return f, true
	}
	d, ok := parseBigDecimal(norm)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// parseBigDecimal parses a finite decimal.
func parseBigDecimal(s string) (*apd.Decimal, bool) {
	norm := normalizeNumber(s)
	if norm == "" {
		return nil, false
	}
	if _, ok := specialFloat(norm); ok {
		return nil, false
	}
	d, _, err := apd.NewFromString(norm)
	if err != nil || d.Form != apd.Finite {
		return nil, false
	}
	return d, true
}

func parseBool(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// parseTime accepts RFC 3339 and the YAML timestamp forms. Values without a
// zone are UTC.
func parseTime(s string) (time.Time, bool) {
	s = yamlZone(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// yamlZone rewrites a trailing space separated zone such as " -5" or
// " +05:30" to the numeric form time.Parse understands.
func yamlZone(s string) string {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 || !strings.Contains(s[:i], ":") {
		return s
	}
	z := s[i+1:]
	if len(z) < 2 || (z[0] != '+' && z[0] != '-') {
		return s
	}
	hh, mm, _ := strings.Cut(z[1:], ":")
	if len(hh) == 1 {
		hh = "0" + hh
	}
	if mm == "" {
		mm = "00"
	}
	if len(hh) != 2 || len(mm) != 2 {
		return s
	}
	return strings.TrimSpace(s[:i]) + z[:1] + hh + ":" + mm
}

// ParseTime parses a timestamp as Text.AsTime does.
func ParseTime(s string) (time.Time, error) {
	t, ok := parseTime(s)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: not a timestamp: %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// truncDecimal returns the integer part of a finite decimal.
func truncDecimal(d *apd.Decimal) (*big.Int, bool) {
	if d == nil || d.Form != apd.Finite {
		return nil, false
	}
	s := d.Text('f')
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	return new(big.Int).SetString(s, 10)
}

// truncFloat returns the integer part of a finite float.
func truncFloat(f float64) (*big.Int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	res, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return res, true
}

// floatDecimal converts a float to the shortest decimal that reads back to
// the same value at the given bit size.
func floatDecimal(f float64, bits int) (*apd.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'g', -1, bits))
	if err != nil {
		return nil, false
	}
	return d, true
}
