package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
)

func TestReporterTable(t *testing.T) {
	var buf bytes.Buffer
	r := &reporter{w: &buf}

	r.table(models.TableResult{Index: 1, Sheet: "Jurisdictions", Table: "jurisdictions", File: "1-jurisdictions.json", Rows: 42})
	r.table(models.TableResult{
		Index: 9, Sheet: "USStateMatrix", Table: "us_state_matrix", File: "9-us_state_matrix.json", Rows: 7,
		Warnings: []string{`unknown state "Atlantis" at row 4 - skipping`},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "1. Jurisdictions "))
	assert.True(t, strings.HasSuffix(lines[0], "( 42 rows)"))
	assert.Contains(t, lines[1], `Warning: unknown state "Atlantis"`)
	assert.True(t, strings.HasPrefix(lines[2], "9. USStateMatrix "))
	assert.True(t, strings.HasSuffix(lines[2], "(  7 rows)"))
	assert.Equal(t, strings.Index(lines[0], "->"), strings.Index(lines[2], "->"))
}

func TestReporterFinish(t *testing.T) {
	var s models.Summary
	s.Add(models.TableResult{Index: 1, Table: "jurisdictions", File: "1-jurisdictions.json", Rows: 3})
	s.Add(models.TableResult{Index: 2, Table: "instruments", File: "2-instruments.json", Rows: 4, Warnings: []string{"w"}})

	var buf bytes.Buffer
	(&reporter{w: &buf}).finish(&s, "http://localhost:8787/import-export")

	out := buf.String()
	assert.Contains(t, out, "Generated 2 files with 7 total rows (1 warnings)")
	assert.Contains(t, out, "Visit: http://localhost:8787/import-export")
	assert.Contains(t, out, "1. Open 1-jurisdictions.json\n      Select table: jurisdictions")
	assert.Contains(t, out, "2. Open 2-instruments.json\n      Select table: instruments")
}

func TestRunMissingWorkbook(t *testing.T) {
	t.Setenv("RULESHEET_SOURCE", filepath.Join(t.TempDir(), "missing.xlsx"))
	t.Setenv("RULESHEET_OUTPUT_DIR", t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RULESHEET_SOURCE")
	assert.Contains(t, stdout.String(), "Reading: ")
	assert.Contains(t, stderr.String(), `level=ERROR msg="conversion failed"`)
}

func TestRunRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"extra.xlsx"})
	assert.Error(t, cmd.Execute())
}
