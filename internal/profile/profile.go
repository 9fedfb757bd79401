// Package profile models per-institution statement layout: which roles a
// header row must carry, the synonym lists that identify them, and the
// post-processing quirks each bank's export needs.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/extrato-dev/extrato/internal/schema"
)

// Profile describes one institution's statement layout.
type Profile struct {
	Name string `yaml:"name"`

	// RequiredRoles must all match on a single row for it to qualify as
	// the header row.
	RequiredRoles []schema.Role   `yaml:"required_roles"`
	Synonyms      schema.Synonyms `yaml:"synonyms"`

	// ValuePrefersSecond picks the second value-like column when two
	// match (document-number columns come first in sources that have both).
	ValuePrefersSecond bool `yaml:"value_prefers_second,omitempty"`

	// ScanOpeningBalance enables the independent "saldo anterior" row scan.
	ScanOpeningBalance bool `yaml:"scan_opening_balance,omitempty"`

	// ReconstructBalance derives a daily running balance from the values;
	// profiles whose source carries a trustworthy balance column leave it
	// off and pass the column through.
	ReconstructBalance bool `yaml:"reconstruct_balance,omitempty"`

	// TrimTrailingRows drops a fixed number of footer rows. Positional,
	// per the source institution; applied only when enough rows exist.
	TrimTrailingRows int `yaml:"trim_trailing_rows,omitempty"`

	// Output column titles and filename suffix.
	DateHeader    string `yaml:"date_header"`
	ValueHeader   string `yaml:"value_header"`
	BalanceHeader string `yaml:"balance_header,omitempty"`
	OutputSuffix  string `yaml:"output_suffix,omitempty"`
}

// TracksBalance reports whether the canonical output carries a balance
// column, either reconstructed or copied from source.
func (p Profile) TracksBalance() bool {
	if p.ReconstructBalance {
		return true
	}
	for _, r := range p.RequiredRoles {
		if r == schema.RoleBalance {
			return true
		}
	}
	return false
}

// Suffix returns the output filename suffix, defaulting to "extraido".
func (p Profile) Suffix() string {
	if p.OutputSuffix != "" {
		return p.OutputSuffix
	}
	return "extraido"
}

// Load reads additional profiles from a YAML file.
func Load(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	var doc struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	return doc.Profiles, nil
}

// Save writes profiles to a YAML file.
func Save(path string, profiles []Profile) error {
	doc := struct {
		Profiles []Profile `yaml:"profiles"`
	}{Profiles: profiles}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profiles: %w", err)
	}
	return nil
}

// Find returns the profile named name. Later entries shadow earlier ones
// so user files can override built-ins.
func Find(profiles []Profile, name string) (Profile, error) {
	for i := len(profiles) - 1; i >= 0; i-- {
		if profiles[i].Name == name {
			return profiles[i], nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}
