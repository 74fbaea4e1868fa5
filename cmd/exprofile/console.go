package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

const summaryColumnLimit = 10

// printSummary writes the per-sheet overview shown while a workbook is analyzed.
func printSummary(w io.Writer, r *models.WorkbookReport) {
	fmt.Fprintf(w, "Analyzing: %s\n\n", r.FilePath)
	fmt.Fprintf(w, "Found %d sheets:\n\n", r.TotalSheets)

	for _, name := range r.SheetNames {
		sheet := r.Sheets[name]
		fmt.Fprintf(w, "  - %s\n", name)
		if sheet.Error != "" {
			fmt.Fprintf(w, "    (Skipped: %s)\n\n", sheet.Error)
			continue
		}
		if sheet.Empty {
			fmt.Fprintln(w, "    (Empty sheet)")
			continue
		}

		fmt.Fprintf(w, "    Rows: %d, Columns: %d\n", sheet.RowCount, sheet.ColumnCount)
		shown := sheet.ColumnNames
		if len(shown) > summaryColumnLimit {
			shown = shown[:summaryColumnLimit]
		}
		fmt.Fprintf(w, "    Columns: %s\n", strings.Join(shown, ", "))
		if extra := len(sheet.ColumnNames) - summaryColumnLimit; extra > 0 {
			fmt.Fprintf(w, "    ... and %d more\n", extra)
		}
		fmt.Fprintln(w)
	}
}

func printSaved(w io.Writer, path string) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nReport saved to: %s\n%s\n\n", rule, path, rule)
}

// printDetails writes the per-column analysis for every sheet.
func printDetails(w io.Writer, r *models.WorkbookReport) {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\nDETAILED SHEET ANALYSIS\n%s\n\n", rule, rule)

	for _, name := range r.SheetNames {
		sheet := r.Sheets[name]
		sheetRule := strings.Repeat("=", 60)
		fmt.Fprintf(w, "\n%s\nSHEET: %s\n%s\n", sheetRule, name, sheetRule)
		fmt.Fprintf(w, "Rows: %d | Columns: %d\n\n", sheet.RowCount, sheet.ColumnCount)

		if len(sheet.ColumnNames) == 0 {
			continue
		}

		refs := make(map[string]bool, len(sheet.Relationships))
		for _, rel := range sheet.Relationships {
			refs[rel.Column] = true
		}

		fmt.Fprintln(w, "Columns and Data Types:")
		for _, col := range sheet.ColumnNames {
			types := []string{string(models.TypeUnknown)}
			nulls := 0
			sample := "N/A"
			if p, ok := sheet.Columns[col]; ok {
				types = types[:0]
				for _, t := range p.InferredTypes {
					types = append(types, string(t))
				}
				nulls = p.NullCount
				if p.SampleValue != nil {
					sample = *p.SampleValue
				}
			}

			fmt.Fprintf(w, "  • %s\n", col)
			fmt.Fprintf(w, "    Type: %s | Nulls: %d\n", strings.Join(types, ", "), nulls)
			fmt.Fprintf(w, "    Sample: %s\n", sample)
			if refs[col] {
				fmt.Fprintln(w, "    Potential reference column")
			}
			fmt.Fprintln(w)
		}
	}
}
