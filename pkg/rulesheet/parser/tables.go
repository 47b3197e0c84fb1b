package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// findHeaderBounds locates the header row and the column count of the
// table. The header is the first row holding a non-blank cell; the width
// is the longest row from the header down. headerIdx is -1 for an empty
// sheet.
func findHeaderBounds(rows [][]string) (headerIdx, width int) {
	headerIdx = -1
	for rowIdx, row := range rows {
		if headerIdx < 0 {
			if !hasData(row) {
				continue
			}
			headerIdx = rowIdx
		}
		if len(row) > width {
			width = len(row)
		}
	}
	return headerIdx, width
}

// hasData reports whether any cell in row holds non-blank text.
func hasData(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

// headerNames builds unique column names from a header row.
// Names are trimmed and NFC-normalized. Blank headers become
// "Unnamed: <index>" and repeated names get ".1", ".2", ... suffixes.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		name := ""
		if colIdx < len(header) {
			name = norm.NFC.String(strings.TrimSpace(header[colIdx]))
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}

		if count := seen[name]; count > 0 {
			base := name
			for n := count; ; n++ {
				candidate := base + "." + strconv.Itoa(n)
				if seen[candidate] == 0 {
					name = candidate
					break
				}
			}
			seen[base]++
		}
		seen[name]++
		names[colIdx] = name
	}
	return names
}
