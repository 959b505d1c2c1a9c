package calculator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ParsePrice parses a catalog price such as "$8.00", "€ 1,250.50" or "3.5".
// One leading currency symbol and thousands separators are tolerated.
// It returns zero and false when the text is not a plain decimal number.
func ParsePrice(text string) (decimal.Decimal, bool) {
	s, negative := strings.CutPrefix(strings.TrimSpace(text), "-")
	if r, size := utf8.DecodeRuneInString(s); unicode.Is(unicode.Sc, r) {
		s = strings.TrimLeftFunc(s[size:], unicode.IsSpace)
	}
	if !isPlainNumber(s) {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// isPlainNumber reports whether s holds only ASCII digits, commas and dots,
// with at least one digit.
func isPlainNumber(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',' || r == '.':
		default:
			return false
		}
	}
	return digits > 0
}
