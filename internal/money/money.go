// Package money parses and formats Brazilian-convention monetary values:
// "." groups thousands, "," separates decimals, "R$" marks currency.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches one monetary figure: optional currency marker,
// optional sign, dot-grouped or plain integer part, optional 1-2 digit
// decimal part after "," or ".".
var amountPattern = regexp.MustCompile(`-?\s?(?:R\$\s*)?-?(?:\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+(?:[.,]\d{1,2})?)`)

// ParseAmount extracts a monetary amount from free-form text.
//
// When the text contains several numeric figures (an inline document number
// next to the real value, say) the one with the greatest absolute value
// wins. Returns an invalid NullDecimal when nothing parses.
func ParseAmount(text string) decimal.NullDecimal {
	if strings.TrimSpace(text) == "" {
		return decimal.NullDecimal{}
	}

	var best decimal.Decimal
	found := false
	for _, m := range amountPattern.FindAllString(text, -1) {
		d, ok := parseMatch(m)
		if !ok {
			continue
		}
		if !found || d.Abs().GreaterThan(best.Abs()) {
			best = d
			found = true
		}
	}
	if !found {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: best, Valid: true}
}

// parseMatch converts one regex match to a decimal, resolving the
// thousands/decimal separator ambiguity. A "." is a decimal point only
// when 1-2 digits follow it and no "," is present; otherwise it groups
// thousands (the Brazilian default).
func parseMatch(m string) (decimal.Decimal, bool) {
	s := strings.NewReplacer("R$", "", " ", "", "\u00a0", "").Replace(m)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "-")
	if s == "" {
		return decimal.Decimal{}, false
	}

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Contains(s, "."):
		i := strings.LastIndex(s, ".")
		if len(s)-i-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		} else {
			s = strings.ReplaceAll(s[:i], ".", "") + "." + s[i+1:]
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// FormatBRL renders a value with exactly two decimals, "." thousands and
// "," decimals: 1234.5 -> "1.234,50". Absent values render as "".
func FormatBRL(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	s := d.Decimal.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}

	out := b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
