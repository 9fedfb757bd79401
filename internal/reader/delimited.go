package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/extrato-dev/extrato/internal/model"
)

// ErrUndecodable marks a delimited file no encoding/delimiter combination
// could decode into a usable grid.
var ErrUndecodable = errors.New("no supported encoding and delimiter combination decodes the file")

// DelimitedOpener reads csv/txt exports. Bank portals disagree on both
// encoding and delimiter, so every combination is probed before failing.
type DelimitedOpener struct{}

var csvEncodings = []struct {
	name string
	enc  encoding.Encoding // nil means plain UTF-8
}{
	{"utf-8", nil},
	{"latin-1", charmap.ISO8859_1},
	{"windows-1252", charmap.Windows1252},
}

var delimiters = []rune{',', ';', '\t', '|'}

// Extensions returns the extensions this opener claims.
func (o *DelimitedOpener) Extensions() []string { return []string{".csv", ".txt"} }

// Open decodes the file under each encoding/delimiter pair, first-line
// sniffing deciding the probe order, and returns the first combination
// that yields a multi-column grid.
func (o *DelimitedOpener) Open(path string) ([]Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	for _, enc := range csvEncodings {
		text, ok := decode(data, enc.enc)
		if !ok {
			continue
		}
		for _, sep := range sniffOrder(text) {
			grid, ok := parseDelimited(text, sep)
			if !ok {
				continue
			}
			return []Sheet{{Name: "CSV", Grid: grid}}, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUndecodable)
}

func decode(data []byte, enc encoding.Encoding) (string, bool) {
	if enc == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// sniffOrder ranks candidate delimiters by how often each occurs on the
// sniff line, most frequent first. Frequency matters: a semicolon-delimited
// Brazilian row also contains decimal commas ("50,00"), and only the real
// separator repeats once per column.
func sniffOrder(text string) []rune {
	line := sniffLine(text)
	order := append([]rune(nil), delimiters...)
	sort.SliceStable(order, func(i, j int) bool {
		return strings.Count(line, string(order[i])) > strings.Count(line, string(order[j]))
	})
	return order
}

// sniffLine returns the first line containing any candidate delimiter,
// skipping title lines that precede the header.
func sniffLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsAny(line, string(delimiters)) {
			return line
		}
	}
	return ""
}

// parseDelimited accepts a candidate only when some row splits into at
// least two columns; a wrong delimiter degenerates to one column per row.
func parseDelimited(text string, sep rune) (model.Grid, bool) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil || len(records) == 0 {
		return nil, false
	}

	multi := false
	for _, rec := range records {
		if len(rec) > 1 {
			multi = true
			break
		}
	}
	if !multi {
		return nil, false
	}
	return records, true
}
