// Package plan declares which sheets become which database tables and how
// their columns are mapped.
package plan

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/transform"
)

//go:embed tables.yaml
var defaultPlan []byte

// ErrInvalidPlan indicates a plan document failed validation.
var ErrInvalidPlan = errors.New("invalid plan")

// Kind selects how a sheet is converted.
type Kind string

const (
	// KindRecords normalizes each row into one record.
	KindRecords Kind = "records"
	// KindPivot turns each row into one metric record per column.
	KindPivot Kind = "pivot"
)

// AllowedTables lists the tables the import tool accepts.
var AllowedTables = []string{
	"jurisdictions", "instruments", "rule_assertions", "compliance_decisions",
	"case_law_events", "sources", "regulatory_families", "coverage_backlog", "us_state_matrix",
}

// Table describes the conversion of one sheet.
type Table struct {
	// Sheet is the source worksheet name.
	Sheet string `yaml:"sheet"`
	// Table is the destination table name.
	Table string `yaml:"table"`
	// Kind is records (default) or pivot.
	Kind Kind `yaml:"kind"`
	// Columns renames or drops source columns.
	Columns transform.ColumnMapping `yaml:"columns"`
	// Drop lists columns removed before renaming.
	Drop []string `yaml:"drop"`
	// Defaults lists columns added to records that lack them.
	Defaults []transform.Default `yaml:"defaults"`
	// Key is the jurisdiction name column of a pivot sheet.
	Key string `yaml:"key"`
}

// UnmarshalYAML decodes a table entry. An empty string rename target is
// rejected; only null drops a column.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	type rawTable Table
	if err := value.Decode((*rawTable)(t)); err != nil {
		return err
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != "columns" || value.Content[i+1].Kind != yaml.MappingNode {
			continue
		}
		cols := value.Content[i+1].Content
		for j := 0; j+1 < len(cols); j += 2 {
			target := cols[j+1]
			if target.Kind == yaml.ScalarNode && target.ShortTag() == "!!str" && target.Value == "" {
				return fmt.Errorf("line %d: column %q: empty target; use null to drop a column", target.Line, cols[j].Value)
			}
		}
	}
	return nil
}

// Plan is the ordered list of tables to produce.
type Plan struct {
	Tables []Table `yaml:"tables"`
}

// Default returns the built-in plan for the research workbook.
func Default() *Plan {
	p, err := Parse(defaultPlan)
	if err != nil {
		panic(fmt.Sprintf("plan: embedded plan: %v", err))
	}
	return p
}

// Load reads and validates a plan from a YAML file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a plan document.
func Parse(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	for i := range p.Tables {
		if p.Tables[i].Kind == "" {
			p.Tables[i].Kind = KindRecords
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks table names, kinds and column mappings.
func (p *Plan) Validate() error {
	if len(p.Tables) == 0 {
		return fmt.Errorf("%w: no tables", ErrInvalidPlan)
	}

	allowed := make(map[string]bool, len(AllowedTables))
	for _, t := range AllowedTables {
		allowed[t] = true
	}

	seen := make(map[string]bool, len(p.Tables))
	for i, t := range p.Tables {
		pos := i + 1
		if strings.TrimSpace(t.Sheet) == "" {
			return fmt.Errorf("%w: table %d: sheet is required", ErrInvalidPlan, pos)
		}
		if !allowed[t.Table] {
			return fmt.Errorf("%w: table %d: %q is not one of %s", ErrInvalidPlan, pos, t.Table, strings.Join(AllowedTables, ", "))
		}
		if seen[t.Table] {
			return fmt.Errorf("%w: table %d: %q listed twice", ErrInvalidPlan, pos, t.Table)
		}
		seen[t.Table] = true

		switch t.Kind {
		case KindRecords:
		case KindPivot:
			if t.Key == "" {
				return fmt.Errorf("%w: table %d: pivot needs a key column", ErrInvalidPlan, pos)
			}
		default:
			return fmt.Errorf("%w: table %d: unknown kind %q", ErrInvalidPlan, pos, t.Kind)
		}

		if err := t.Columns.Validate(t.Drop); err != nil {
			return fmt.Errorf("%w: table %d: %v", ErrInvalidPlan, pos, err)
		}
		for _, d := range t.Defaults {
			if d.Column == "" {
				return fmt.Errorf("%w: table %d: default without column", ErrInvalidPlan, pos)
			}
		}
	}
	return nil
}
