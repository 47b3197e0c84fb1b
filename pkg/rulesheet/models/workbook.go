package models

// TableResult describes one written output file.
type TableResult struct {
	// Index is the 1-based position of the table in the plan.
	Index int `json:"index"`
	// Sheet is the source worksheet name.
	Sheet string `json:"sheet"`
	// Table is the destination table name.
	Table string `json:"table"`
	// File is the output file name (no directory).
	File string `json:"file"`
	// Rows is the number of records written.
	Rows int `json:"rows"`
	// Warnings contains non-fatal diagnostics raised while converting.
	Warnings []string `json:"warnings,omitempty"`
}

// Summary accumulates the results of one conversion run.
type Summary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// OutputDir is the directory the files were written to.
	OutputDir string `json:"output_dir"`
	// Tables contains one entry per written file, in plan order.
	Tables []TableResult `json:"tables"`
	// TotalRows is the sum of Rows over all tables.
	TotalRows int `json:"total_rows"`
}

// Add appends a table result and updates the totals.
func (s *Summary) Add(t TableResult) {
	s.Tables = append(s.Tables, t)
	s.TotalRows += t.Rows
}

// Files returns the written file names in plan order.
func (s *Summary) Files() []string {
	files := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		files = append(files, t.File)
	}
	return files
}

// WarningCount returns the number of warnings over all tables.
func (s *Summary) WarningCount() int {
	n := 0
	for _, t := range s.Tables {
		n += len(t.Warnings)
	}
	return n
}
