package profiler

import (
	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// ProfileSheet builds the schema summary of one sheet from its header row
// and the data rows that follow it.
//
// A sheet without any rows yields the empty terminal profile. Rows may be
// ragged; positions beyond a row's width count as absent.
func ProfileSheet(name string, header models.Row, data []models.Row, cfg Config) models.SheetProfile {
	cfg = cfg.withDefaults()

	if len(header) == 0 && len(data) == 0 {
		return emptySheet(name)
	}

	cols := retainHeaders(header, cfg.KeepPlaceholderHeaders)

	profile := models.SheetProfile{
		Name:          name,
		RowCount:      len(data),
		ColumnCount:   len(cols),
		ColumnNames:   make([]string, 0, len(cols)),
		Columns:       make(map[string]models.ColumnProfile, len(cols)),
		Relationships: []models.Relationship{},
	}

	for _, col := range cols {
		values := collectValues(data, col.index)
		cp := profileColumn(col, values, len(data), cfg)

		profile.ColumnNames = append(profile.ColumnNames, col.name)
		// Duplicate header names: the later column wins in the map.
		profile.Columns[col.name] = cp

		if cp.IsRelationshipCandidate {
			profile.Relationships = append(profile.Relationships, models.Relationship{
				Column:       col.name,
				Type:         models.RelationshipPotentialReference,
				SampleValues: cp.RelationshipSamples,
			})
		}
	}

	return profile
}

func emptySheet(name string) models.SheetProfile {
	return models.SheetProfile{
		Name:          name,
		ColumnNames:   []string{},
		Columns:       map[string]models.ColumnProfile{},
		Relationships: []models.Relationship{},
		Empty:         true,
	}
}

// collectValues returns the non-empty values of column idx in row order.
func collectValues(rows []models.Row, idx int) []models.Cell {
	var values []models.Cell
	for _, row := range rows {
		cell := row.At(idx)
		if cell.IsEmpty() {
			continue
		}
		values = append(values, cell)
	}
	return values
}
