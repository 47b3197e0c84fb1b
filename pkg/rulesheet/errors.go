package rulesheet

import (
	"errors"
	"fmt"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/parser"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/plan"
)

// ErrSourceUnavailable indicates the workbook is missing or unreadable.
var ErrSourceUnavailable = errors.New("source workbook unavailable")

// ErrSheetNotFound indicates a planned sheet is missing from the workbook.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidPlan indicates the table plan failed validation.
var ErrInvalidPlan = plan.ErrInvalidPlan

// ConversionError represents a failure while converting one table.
type ConversionError struct {
	Index int
	Sheet string
	Table string
	Stage string // "read", "write"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("table %d %s (sheet %q, %s): %v", e.Index, e.Table, e.Sheet, e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(index int, t plan.Table, stage string, err error) *ConversionError {
	return &ConversionError{
		Index: index,
		Sheet: t.Sheet,
		Table: t.Table,
		Stage: stage,
		Err:   err,
	}
}
