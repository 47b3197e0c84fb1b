package models

// Row holds the cell values of one data row, aligned with Sheet.Columns.
// A nil element is a blank cell.
type Row []interface{}

// Sheet represents one worksheet loaded in full: a header row naming the
// columns and every data row below it.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// HeaderRow is the 1-based worksheet row holding the header.
	HeaderRow int
	// Columns contains the unique header names in column order.
	Columns []string
	// Rows contains the data rows below the header.
	Rows []Row
}

// ColumnIndex returns the position of the named column, or -1.
func (s *Sheet) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// RowNumber returns the 1-based worksheet row of data row i.
func (s *Sheet) RowNumber(i int) int {
	return s.HeaderRow + 1 + i
}
