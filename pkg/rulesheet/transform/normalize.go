package transform

import (
	"fmt"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
)

// Drop is the ColumnMapping target that removes a column.
const Drop = ""

// ColumnMapping maps a source column to its destination name, or to Drop.
// Columns absent from the mapping keep their name.
type ColumnMapping map[string]string

// Target returns the output name of column and whether it survives.
func (m ColumnMapping) Target(column string) (string, bool) {
	to, ok := m[column]
	if !ok {
		return column, true
	}
	if to == Drop {
		return "", false
	}
	return to, true
}

// Validate rejects mappings that would reintroduce a dropped column name
// through a rename.
func (m ColumnMapping) Validate(drop []string) error {
	removed := make(map[string]bool, len(drop))
	for _, c := range drop {
		removed[c] = true
	}
	for from, to := range m {
		if to == Drop {
			removed[from] = true
		}
	}
	for from, to := range m {
		if to != Drop && removed[to] {
			return fmt.Errorf("column %q renamed to dropped column %q", from, to)
		}
	}
	return nil
}

// Normalize converts sheet rows into records. Columns listed in drop or
// mapped to Drop are removed, the remaining mapped columns are renamed,
// every value is cleaned, and records without any non-nil value are
// discarded. Names that do not exist in the sheet are ignored.
func Normalize(sheet *models.Sheet, mapping ColumnMapping, drop []string) []models.Record {
	dropped := make(map[string]bool, len(drop))
	for _, c := range drop {
		dropped[c] = true
	}

	type column struct {
		src  int
		name string
	}
	var columns []column
	for i, name := range sheet.Columns {
		if dropped[name] {
			continue
		}
		to, keep := mapping.Target(name)
		if !keep {
			continue
		}
		columns = append(columns, column{src: i, name: to})
	}

	records := make([]models.Record, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rec := models.NewRecord(len(columns))
		for _, c := range columns {
			var raw interface{}
			if c.src < len(row) {
				raw = row[c.src]
			}
			rec.Set(c.name, Clean(raw))
		}
		// A later column renamed onto an earlier key replaces its value,
		// so emptiness is decided on the finished record.
		if rec.HasValue() {
			records = append(records, rec)
		}
	}
	return records
}
