// Package profiler turns untyped sheet rows into typed schema summaries.
package profiler

import "time"

const (
	// DefaultSampleSize bounds how many non-empty values feed type inference.
	// Null accounting always covers the full column.
	DefaultSampleSize = 100
	// DefaultUniqueLimit caps the distinct-value sample per column.
	DefaultUniqueLimit = 10
	// DefaultSampleTextLimit is the rune length at which sample values are truncated.
	DefaultSampleTextLimit = 100
	// DefaultRelationshipSampleLimit caps evidence values per relationship candidate.
	DefaultRelationshipSampleLimit = 5
)

// RelationshipKeywords are matched as substrings of the lower-cased header.
var RelationshipKeywords = []string{
	"id", "ref", "link", "parent", "child", "climber",
	"user", "session", "booking", "coach", "trainer", "name",
}

// DuplicatePolicy decides what happens when a workbook lists a sheet name twice.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the last sheet with a given name.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateError fails the run with ErrDuplicateSheet.
	DuplicateError
)

// Config tunes the profiler. Zero values fall back to defaults.
type Config struct {
	SampleSize              int
	UniqueLimit             int
	SampleTextLimit         int
	RelationshipSampleLimit int
	// Keywords overrides RelationshipKeywords when non-empty.
	Keywords []string

	// KeepPlaceholderHeaders retains Column_<n> headers for absent header cells.
	KeepPlaceholderHeaders bool
	// NumericSummary adds min/max/mean/median for number values.
	NumericSummary bool

	// IsolateSheetErrors records a sheet read failure on that sheet
	// instead of failing the whole workbook.
	IsolateSheetErrors bool
	DuplicateSheets    DuplicatePolicy
	// Parallelism is the number of sheets profiled at once. Values <= 1 run sequentially.
	Parallelism int

	// Now supplies the report timestamp.
	Now func() time.Time
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.SampleSize <= 0 {
		c.SampleSize = DefaultSampleSize
	}
	if c.UniqueLimit <= 0 {
		c.UniqueLimit = DefaultUniqueLimit
	}
	if c.SampleTextLimit <= 0 {
		c.SampleTextLimit = DefaultSampleTextLimit
	}
	if c.RelationshipSampleLimit <= 0 {
		c.RelationshipSampleLimit = DefaultRelationshipSampleLimit
	}
	if len(c.Keywords) == 0 {
		c.Keywords = RelationshipKeywords
	}
	if c.Parallelism < 1 {
		c.Parallelism = 1
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
