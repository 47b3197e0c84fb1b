// Package jurisdiction resolves subdivision names to jurisdiction codes of
// the form "COUNTRY-SUBDIVISION".
package jurisdiction

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed us_states.yaml
var usStates []byte

// Table is the YAML layout of a jurisdiction table.
type Table struct {
	Country      string            `yaml:"country"`
	Subdivisions map[string]string `yaml:"subdivisions"`
}

// Lookup maps a subdivision's full name to its jurisdiction code.
type Lookup map[string]string

// Resolve returns the code for name. Names are compared after Unicode NFC
// normalization.
func (l Lookup) Resolve(name string) (string, bool) {
	code, ok := l[norm.NFC.String(name)]
	return code, ok
}

// Default returns the lookup for the US states covered by the research
// workbook.
func Default() Lookup {
	l, err := Parse(usStates)
	if err != nil {
		panic(fmt.Sprintf("jurisdiction: embedded table: %v", err))
	}
	return l
}

// Load reads a jurisdiction table from a YAML file.
func Load(path string) (Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse builds a lookup from a YAML jurisdiction table.
func Parse(data []byte) (Lookup, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse jurisdiction table: %w", err)
	}
	country := strings.TrimSpace(t.Country)
	if country == "" {
		return nil, fmt.Errorf("jurisdiction table: country is required")
	}
	if len(t.Subdivisions) == 0 {
		return nil, fmt.Errorf("jurisdiction table: no subdivisions")
	}

	l := make(Lookup, len(t.Subdivisions))
	for name, sub := range t.Subdivisions {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			return nil, fmt.Errorf("jurisdiction table: empty code for %q", name)
		}
		l[norm.NFC.String(name)] = country + "-" + sub
	}
	return l, nil
}
