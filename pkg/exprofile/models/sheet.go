package models

// SheetProfile is the schema summary of a single sheet.
type SheetProfile struct {
	// Name is the sheet name.
	Name string
	// RowCount is the number of data rows (the header row excluded).
	RowCount int
	// ColumnCount is the number of retained headers.
	ColumnCount int
	// ColumnNames lists retained headers in sheet order.
	ColumnNames []string
	// Columns maps header name to its profile.
	Columns map[string]ColumnProfile
	// Relationships lists relationship candidates in column order.
	Relationships []Relationship
	// Empty is set for sheets without any rows.
	Empty bool
	// Error records a read failure when per-sheet isolation is enabled.
	Error string
}
