package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet loads a worksheet in full. The first non-empty row is the
// header; every later row becomes a data row aligned with the header
// columns. Cell values are typed: booleans, int64 or float64 for numbers,
// ISO text for date-formatted numbers, strings otherwise, nil for blanks.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	sheet := &models.Sheet{Name: sheetName}
	headerIdx, width := findHeaderBounds(rows)
	if headerIdx < 0 {
		return sheet, nil
	}
	sheet.HeaderRow = headerIdx + 1
	sheet.Columns = headerNames(rows[headerIdx], width)

	dates := newDateReader(f)
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		row := make(models.Row, width)
		for colIdx, raw := range rows[rowIdx] {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			v, err := cellValue(f, sheetName, cellName, raw, dates)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			row[colIdx] = v
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

// cellValue types a raw cell value according to the cell's stored type
// and number format.
func cellValue(f *excelize.File, sheetName, cellName, raw string, dates *dateReader) (interface{}, error) {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || raw == "TRUE" || raw == "true", nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return raw, nil
	}

	v := parseValue(raw)
	if _, isText := v.(string); isText {
		return v, nil
	}
	if dates.isDateCell(sheetName, cellName) {
		if s, ok := dates.format(raw); ok {
			return s, nil
		}
	}
	return v, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
