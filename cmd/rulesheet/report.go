package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
)

// tableLabelWidth pads progress labels so file names line up.
const tableLabelWidth = 28

func label(t models.TableResult) string {
	return fmt.Sprintf("%d. %s", t.Index, t.Sheet)
}

// reporter prints human-readable progress for a conversion run.
type reporter struct {
	w io.Writer
}

func (r *reporter) start(source string) {
	fmt.Fprintln(r.w, "Converting Excel to JSON files...")
	fmt.Fprintf(r.w, "Reading: %s\n\n", source)
}

// table prints the completion line of one written file and its warnings.
func (r *reporter) table(t models.TableResult) {
	for _, w := range t.Warnings {
		fmt.Fprintf(r.w, "   Warning: %s\n", w)
	}
	fmt.Fprintf(r.w, "%-*s -> %-32s (%3d rows)\n", tableLabelWidth, label(t), t.File, t.Rows)
}

// partial notes which files were written before a failure.
func (r *reporter) partial(s *models.Summary) {
	fmt.Fprintf(r.w, "\nStopped after %d of the planned files: %s\n", len(s.Tables), strings.Join(s.Files(), ", "))
}

// finish prints totals and the manual import steps.
func (r *reporter) finish(s *models.Summary, importURL string) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Generated %d files with %d total rows", len(s.Tables), s.TotalRows)
	if n := s.WarningCount(); n > 0 {
		fmt.Fprintf(r.w, " (%d warnings)", n)
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, "Next steps:")
	fmt.Fprintln(r.w, "1. Start the import tool: npx wrangler dev")
	fmt.Fprintf(r.w, "2. Visit: %s\n", importURL)
	fmt.Fprintln(r.w, "3. For each file below, copy the JSON and import:")
	fmt.Fprintln(r.w)
	for _, t := range s.Tables {
		fmt.Fprintf(r.w, "   %d. Open %s\n", t.Index, t.File)
		fmt.Fprintf(r.w, "      Select table: %s\n", t.Table)
		fmt.Fprintln(r.w, "      Copy and paste the JSON content")
		fmt.Fprintln(r.w, "      Click 'Import Data'")
		fmt.Fprintln(r.w)
	}
}
