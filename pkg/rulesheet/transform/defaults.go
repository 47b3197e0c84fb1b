package transform

import "github.com/divine-age/rulesheet-go/pkg/rulesheet/models"

// Default supplies a value for a column that records may lack.
type Default struct {
	Column string      `yaml:"column"`
	Value  interface{} `yaml:"value"`
}

// ApplyDefaults adds every default column missing from a record. Columns
// already present, including ones holding nil, are left untouched.
func ApplyDefaults(records []models.Record, defaults []Default) {
	for i := range records {
		for _, d := range defaults {
			if !records[i].Has(d.Column) {
				records[i].Set(d.Column, d.Value)
			}
		}
	}
}
