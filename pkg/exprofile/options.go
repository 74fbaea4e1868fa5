// Package exprofile profiles spreadsheet workbooks into per-sheet schema summaries.
package exprofile

import (
	"time"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/profiler"
)

// DuplicatePolicy decides what happens when a workbook lists a sheet name twice.
type DuplicatePolicy = profiler.DuplicatePolicy

const (
	// DuplicateOverwrite keeps the last sheet with a given name.
	DuplicateOverwrite = profiler.DuplicateOverwrite
	// DuplicateError fails the run with ErrDuplicateSheet.
	DuplicateError = profiler.DuplicateError
)

// Options configures profiling behavior.
type Options struct {
	// SampleSize bounds type inference to the first N non-empty values per column.
	// Zero uses profiler.DefaultSampleSize.
	SampleSize int
	// Parallelism is the number of sheets profiled at once. Zero or one is sequential.
	Parallelism int
	// IsolateSheetErrors records sheet read failures on the sheet instead of aborting.
	IsolateSheetErrors bool
	// NumericSummary adds min/max/mean/median for number values.
	NumericSummary bool
	// DuplicateSheets selects the duplicate sheet name policy.
	DuplicateSheets DuplicatePolicy
	// KeepPlaceholderHeaders specifies whether absent header cells become Column_<n> columns.
	// If nil, defaults to false.
	KeepPlaceholderHeaders *bool
	// Debugf receives reader timing messages. Nil discards them.
	Debugf func(format string, args ...interface{})
	// Now supplies the report timestamp. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default profiling options.
func DefaultOptions() Options {
	return Options{
		SampleSize:      profiler.DefaultSampleSize,
		Parallelism:     1,
		DuplicateSheets: DuplicateOverwrite,
	}
}

// ShouldKeepPlaceholderHeaders returns whether absent header cells are kept as placeholders.
func (o Options) ShouldKeepPlaceholderHeaders() bool {
	if o.KeepPlaceholderHeaders != nil {
		return *o.KeepPlaceholderHeaders
	}
	return false
}

// ProfilerConfig returns the profiler configuration for these options.
func (o Options) ProfilerConfig() profiler.Config {
	return profiler.Config{
		SampleSize:             o.SampleSize,
		KeepPlaceholderHeaders: o.ShouldKeepPlaceholderHeaders(),
		NumericSummary:         o.NumericSummary,
		IsolateSheetErrors:     o.IsolateSheetErrors,
		DuplicateSheets:        o.DuplicateSheets,
		Parallelism:            o.Parallelism,
		Now:                    o.Now,
	}
}

// ParseDuplicatePolicy parses "overwrite" or "error".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, bool) {
	switch s {
	case "", "overwrite":
		return DuplicateOverwrite, true
	case "error":
		return DuplicateError, true
	default:
		return DuplicateOverwrite, false
	}
}
