package profiler

import (
	"errors"
	"fmt"
)

// ErrDuplicateSheet is returned under DuplicateError when a sheet name repeats.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// SheetError represents a failure while profiling one sheet.
type SheetError struct {
	Sheet string
	Stage string // "rows", "profile"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("profiling error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, stage string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
