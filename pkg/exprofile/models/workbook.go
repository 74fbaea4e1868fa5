package models

import "time"

// WorkbookReport aggregates the profiles of every sheet in a workbook.
type WorkbookReport struct {
	// FilePath is the source path as given by the caller.
	FilePath string
	// TotalSheets is the number of sheets listed by the workbook.
	TotalSheets int
	// SheetNames lists distinct sheet names in workbook order.
	SheetNames []string
	// Sheets maps sheet name to its profile.
	Sheets map[string]SheetProfile
	// AnalysisDate is captured once per report.
	AnalysisDate time.Time
}
