// Package dates extracts calendar dates from free-form statement cells.
// Ambiguous day/month order always resolves day-first.
package dates

import (
	"regexp"
	"strings"
	"time"
)

// Layout is the canonical day-first rendering of parsed dates.
const Layout = "02/01/2006"

// pattern couples an extraction regex with the Go layout that parses the
// match after "-" separators are normalized to "/". Earlier entries win.
type pattern struct {
	re     *regexp.Regexp
	layout string
}

var patterns = []pattern{
	{regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`), "02/01/2006"},
	{regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`), "02/01/2006"},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "2006/01/02"},
	{regexp.MustCompile(`\b\d{8}\b`), "02012006"},
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2}\b`), "2/1/06"},
}

// fallbackLayouts parse inputs no pattern extracted, day before month.
var fallbackLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"2/1/06",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"2006/01/02 15:04:05",
}

// Parse extracts a date from text. The first matching pattern wins; a
// match that is not a valid calendar date yields (zero, false) rather
// than falling through to a weaker pattern.
func Parse(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	for _, p := range patterns {
		m := p.re.FindString(s)
		if m == "" {
			continue
		}
		m = strings.ReplaceAll(m, "-", "/")
		t, err := time.Parse(p.layout, m)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	s = strings.ReplaceAll(s, "-", "/")
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Render formats a parsed date as DD/MM/YYYY. Zero dates render as "".
func Render(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(Layout)
}
