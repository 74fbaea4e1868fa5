package models

// ColumnProfile holds derived statistics and samples for one column.
type ColumnProfile struct {
	// Name is the header name of the column.
	Name string
	// Index is the 0-based position of the column in the header row.
	Index int
	// RowCount is the number of data rows in the sheet.
	RowCount int
	// InferredTypes is the set of types seen in the sampling window.
	InferredTypes []DataType
	// NullCount is RowCount minus the number of non-empty values in the full column.
	NullCount int
	// UniqueValues is a bounded sample of distinct stringified values.
	UniqueValues []string
	// SampleValue is the first non-empty value, truncated. Nil when the column is empty.
	SampleValue *string
	// IsRelationshipCandidate is set when the header looks like a reference.
	IsRelationshipCandidate bool
	// RelationshipSamples holds evidence values for a relationship candidate.
	RelationshipSamples []string
	// Numeric is set only when numeric summaries are enabled and the column has numbers.
	Numeric *NumericSummary
}

// NumericSummary describes the numeric values of a column.
type NumericSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Relationship is a column flagged as a potential reference.
type Relationship struct {
	Column       string
	Type         string
	SampleValues []string
}
