package exprofile

import (
	"errors"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/profiler"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/reader"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUnsupportedFormat indicates no reader handles the input's extension.
var ErrUnsupportedFormat = reader.ErrUnsupportedFormat

// ErrDuplicateSheet is returned under DuplicateError when a sheet name repeats.
var ErrDuplicateSheet = profiler.ErrDuplicateSheet

// SheetError represents a failure while profiling one sheet.
type SheetError = profiler.SheetError
