package rules

import (
	"math"
	"unicode"
)

// LeadingInt parses the integer prefix of value. Leading whitespace and a
// single sign are accepted; parsing stops at the first non-digit. ok is false
// when no digit was read. Values beyond the int64 range saturate.
func LeadingInt(value string) (n int64, ok bool) {
	runes := []rune(value)
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}

	negative := false
	if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
		negative = runes[i] == '-'
		i++
	}

	var acc uint64
	saturated := false
	for ; i < len(runes); i++ {
		r := runes[i]
		if r < '0' || r > '9' {
			break
		}
		ok = true
		if saturated {
			continue
		}
		d := uint64(r - '0')
		if acc > (math.MaxInt64-d)/10 {
			saturated = true
			continue
		}
		acc = acc*10 + d
	}
	if !ok {
		return 0, false
	}

	switch {
	case saturated && negative:
		return math.MinInt64, true
	case saturated:
		return math.MaxInt64, true
	case negative:
		return -int64(acc), true
	default:
		return int64(acc), true
	}
}
