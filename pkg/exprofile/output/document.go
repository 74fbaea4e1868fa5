// Package output serializes workbook reports to JSON.
package output

import (
	"sort"
	"time"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// Document is the JSON form of a WorkbookReport.
type Document struct {
	FilePath     string                   `json:"file_path"`
	TotalSheets  int                      `json:"total_sheets"`
	Sheets       map[string]SheetDocument `json:"sheets"`
	AnalysisDate string                   `json:"analysis_date"`
}

// SheetDocument is the JSON form of a SheetProfile.
// Empty sheets carry only the leading fields; ColumnDetails is nil for them.
type SheetDocument struct {
	Name        string            `json:"name"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	ColumnNames []string          `json:"column_names"`
	SampleData  map[string]string `json:"sample_data"`
	*ColumnDetails
	Error string `json:"error,omitempty"`
}

// ColumnDetails holds the per-column maps of a non-empty sheet.
type ColumnDetails struct {
	DataTypes      map[string][]string              `json:"data_types"`
	NullCounts     map[string]int                   `json:"null_counts"`
	UniqueValues   map[string][]string              `json:"unique_values"`
	Relationships  []RelationshipDocument           `json:"relationships"`
	NumericSummary map[string]models.NumericSummary `json:"numeric_summary,omitempty"`
}

// RelationshipDocument is the JSON form of a Relationship.
type RelationshipDocument struct {
	Column       string   `json:"column"`
	Type         string   `json:"type"`
	SampleValues []string `json:"sample_values"`
}

// NewDocument converts a report into its JSON form.
func NewDocument(r *models.WorkbookReport) Document {
	doc := Document{
		FilePath:     r.FilePath,
		TotalSheets:  r.TotalSheets,
		Sheets:       make(map[string]SheetDocument, len(r.Sheets)),
		AnalysisDate: r.AnalysisDate.Format(time.RFC3339Nano),
	}
	for name, sheet := range r.Sheets {
		doc.Sheets[name] = NewSheetDocument(sheet)
	}
	return doc
}

// NewSheetDocument converts a sheet profile into its JSON form.
func NewSheetDocument(s models.SheetProfile) SheetDocument {
	doc := SheetDocument{
		Name:        s.Name,
		Rows:        s.RowCount,
		Columns:     s.ColumnCount,
		ColumnNames: nonNil(s.ColumnNames),
		SampleData:  make(map[string]string),
		Error:       s.Error,
	}
	if s.Empty {
		return doc
	}

	details := &ColumnDetails{
		DataTypes:     make(map[string][]string, len(s.Columns)),
		NullCounts:    make(map[string]int, len(s.Columns)),
		UniqueValues:  make(map[string][]string, len(s.Columns)),
		Relationships: make([]RelationshipDocument, 0, len(s.Relationships)),
	}
	for name, col := range s.Columns {
		types := make([]string, len(col.InferredTypes))
		for i, t := range col.InferredTypes {
			types[i] = string(t)
		}
		details.DataTypes[name] = types
		details.NullCounts[name] = col.NullCount
		details.UniqueValues[name] = nonNil(col.UniqueValues)
		if col.SampleValue != nil {
			doc.SampleData[name] = *col.SampleValue
		}
		if col.Numeric != nil {
			if details.NumericSummary == nil {
				details.NumericSummary = make(map[string]models.NumericSummary)
			}
			details.NumericSummary[name] = *col.Numeric
		}
	}
	for _, rel := range s.Relationships {
		details.Relationships = append(details.Relationships, RelationshipDocument{
			Column:       rel.Column,
			Type:         rel.Type,
			SampleValues: nonNil(rel.SampleValues),
		})
	}
	doc.ColumnDetails = details
	return doc
}

// Report converts a document back into a WorkbookReport.
// Sheet order is not part of the document, so SheetNames comes back sorted.
func (d Document) Report() (*models.WorkbookReport, error) {
	analyzed, err := time.Parse(time.RFC3339Nano, d.AnalysisDate)
	if err != nil {
		return nil, err
	}

	r := &models.WorkbookReport{
		FilePath:     d.FilePath,
		TotalSheets:  d.TotalSheets,
		SheetNames:   make([]string, 0, len(d.Sheets)),
		Sheets:       make(map[string]models.SheetProfile, len(d.Sheets)),
		AnalysisDate: analyzed,
	}
	for name, sheet := range d.Sheets {
		r.SheetNames = append(r.SheetNames, name)
		r.Sheets[name] = sheet.Profile()
	}
	sort.Strings(r.SheetNames)
	return r, nil
}

// Profile converts a sheet document back into a SheetProfile.
func (d SheetDocument) Profile() models.SheetProfile {
	p := models.SheetProfile{
		Name:          d.Name,
		RowCount:      d.Rows,
		ColumnCount:   d.Columns,
		ColumnNames:   nonNil(d.ColumnNames),
		Columns:       make(map[string]models.ColumnProfile),
		Relationships: []models.Relationship{},
		Empty:         d.ColumnDetails == nil,
		Error:         d.Error,
	}
	if d.ColumnDetails == nil {
		return p
	}

	candidates := make(map[string][]string, len(d.Relationships))
	for _, rel := range d.Relationships {
		samples := nonNil(rel.SampleValues)
		candidates[rel.Column] = samples
		p.Relationships = append(p.Relationships, models.Relationship{
			Column:       rel.Column,
			Type:         rel.Type,
			SampleValues: samples,
		})
	}

	for i, name := range p.ColumnNames {
		col := models.ColumnProfile{
			Name:         name,
			Index:        i,
			RowCount:     d.Rows,
			NullCount:    d.NullCounts[name],
			UniqueValues: nonNil(d.UniqueValues[name]),
		}
		for _, t := range d.DataTypes[name] {
			col.InferredTypes = append(col.InferredTypes, models.DataType(t))
		}
		if v, ok := d.SampleData[name]; ok {
			col.SampleValue = &v
		}
		if samples, ok := candidates[name]; ok {
			col.IsRelationshipCandidate = true
			col.RelationshipSamples = samples
		}
		if sum, ok := d.NumericSummary[name]; ok {
			col.Numeric = &sum
		}
		p.Columns[name] = col
	}
	return p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
