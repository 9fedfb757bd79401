// Package textnorm canonicalizes free-form cell text so header matching
// is insensitive to case, accents and punctuation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, drops everything that is not alphanumeric
// or whitespace, lowercases and trims. Idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	var b strings.Builder
	b.Grow(len(out))
	for _, r := range strings.ToLower(out) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Flatten is Normalize with all whitespace removed, for matching phrases
// whose sources disagree on spacing ("Saldo Anterior" vs "SaldoAnterior").
func Flatten(s string) string {
	return strings.Join(strings.Fields(Normalize(s)), "")
}
