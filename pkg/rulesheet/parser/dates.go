// Package parser provides worksheet reading utilities.
package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// builtinDateFormats holds the built-in number format ids that display a
// date or time.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// dateReader recognizes date-formatted numeric cells and renders their
// serial values. Style lookups are cached per style id.
type dateReader struct {
	f        *excelize.File
	date1904 bool
	styles   map[int]bool
}

func newDateReader(f *excelize.File) *dateReader {
	d := &dateReader{f: f, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// isDateCell reports whether the cell's number format displays a date.
func (d *dateReader) isDateCell(sheetName, cellName string) bool {
	styleID, err := d.f.GetCellStyle(sheetName, cellName)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := d.styles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}
	d.styles[styleID] = isDate
	return isDate
}

// format renders an Excel serial date as "2006-01-02", or with a time of
// day when the serial has a fractional part.
func (d *dateReader) format(raw string) (string, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return "", false
	}
	t = t.Round(time.Second)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02"), true
	}
	return t.Format("2006-01-02 15:04:05"), true
}

// isDateFormatCode reports whether a custom number format code contains
// date or time tokens outside quoted literals and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	s := strings.ToLower(b.String())
	if s == "general" {
		return false
	}
	return strings.ContainsAny(s, "ydhs")
}
