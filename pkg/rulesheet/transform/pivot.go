package transform

import (
	"fmt"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
)

// Resolver maps a jurisdiction name to its code.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// Pivot turns a wide sheet keyed by key into one MetricRecord per
// (row, column) pair with a value. Rows with a blank key are skipped
// silently. Rows whose key the resolver does not know are skipped with a
// warning. Output follows row order, then column order.
func Pivot(sheet *models.Sheet, key string, resolver Resolver) ([]models.MetricRecord, []string) {
	records := []models.MetricRecord{}
	keyIdx := sheet.ColumnIndex(key)
	if keyIdx < 0 {
		return records, []string{fmt.Sprintf("column %q not found in sheet %q", key, sheet.Name)}
	}

	var warnings []string
	for i, row := range sheet.Rows {
		if keyIdx >= len(row) {
			continue
		}
		name := Clean(row[keyIdx])
		if name == nil {
			continue
		}
		code, ok := resolver.Resolve(Text(name))
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown %s %q at row %d - skipping", key, Text(name), sheet.RowNumber(i)))
			continue
		}

		for j, column := range sheet.Columns {
			if j == keyIdx || j >= len(row) {
				continue
			}
			v := Clean(row[j])
			if v == nil {
				continue
			}
			records = append(records, models.MetricRecord{
				StateJurisdictionID: code,
				MetricName:          column,
				MetricValue:         Text(v),
			})
		}
	}
	return records, warnings
}
