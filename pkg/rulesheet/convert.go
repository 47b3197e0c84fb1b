package rulesheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/logging"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/output"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/parser"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/plan"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/transform"
)

// Convert reads the workbook and writes one JSON file per planned table,
// in plan order. onTable, when non-nil, is called after each file is
// written. The first failing table stops the run; files written before it
// are kept and listed in the returned summary.
func Convert(ctx context.Context, opts Options, onTable func(models.TableResult)) (*models.Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(opts.SourcePath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	f, err := excelize.OpenFile(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, opts.SourcePath, err)
	}
	defer f.Close()
	logging.Debug("workbook opened", "path", opts.SourcePath, "sheets", len(f.GetSheetList()))

	summary := &models.Summary{
		BookName:  filepath.Base(opts.SourcePath),
		OutputDir: opts.OutputDir,
		Tables:    []models.TableResult{},
	}
	for i, t := range opts.Plan.Tables {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := convertTable(f, i+1, t, opts)
		if err != nil {
			return summary, err
		}
		summary.Add(result)
		if onTable != nil {
			onTable(result)
		}
	}

	return summary, nil
}

// convertTable reads one sheet, applies its plan entry, and writes the
// output file.
func convertTable(f *excelize.File, index int, t plan.Table, opts Options) (models.TableResult, error) {
	result := models.TableResult{
		Index: index,
		Sheet: t.Sheet,
		Table: t.Table,
		File:  output.FileName(index, t.Table),
	}

	sheet, err := parser.ReadSheet(f, t.Sheet)
	if err != nil {
		return result, NewConversionError(index, t, "read", err)
	}
	logging.Debug("sheet loaded", "sheet", t.Sheet, "columns", len(sheet.Columns), "rows", len(sheet.Rows))

	var data interface{}
	switch t.Kind {
	case plan.KindPivot:
		records, warnings := transform.Pivot(sheet, t.Key, opts.Jurisdictions)
		for _, w := range warnings {
			logging.Warn("pivot row skipped", "sheet", t.Sheet, "reason", w)
		}
		data = records
		result.Rows = len(records)
		result.Warnings = warnings
	default:
		records := transform.Normalize(sheet, t.Columns, t.Drop)
		transform.ApplyDefaults(records, t.Defaults)
		data = records
		result.Rows = len(records)
	}

	path, err := output.WriteFile(opts.OutputDir, result.File, data)
	if err != nil {
		return result, NewConversionError(index, t, "write", err)
	}
	logging.Debug("table written", "table", t.Table, "path", path, "rows", result.Rows)

	return result, nil
}
