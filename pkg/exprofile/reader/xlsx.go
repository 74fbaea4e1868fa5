package reader

import (
	"strconv"
	"sync"
	"time"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
	"github.com/xuri/excelize/v2"
)

// Workbook reads sheets from an Office Open XML workbook.
// Cached formula results are used; formulas are never evaluated.
type Workbook struct {
	file     *excelize.File
	date1904 bool
	settings settings

	mu         sync.Mutex
	dateStyles map[int]bool
}

// OpenWorkbook opens an xlsx-family file.
func OpenWorkbook(path string, opts ...Option) (*Workbook, error) {
	s := newSettings(opts)

	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s.debugf("[Workbook] %s opened in %.2fms", path, float64(time.Since(start).Nanoseconds())/1e6)

	wb := &Workbook{
		file:       f,
		settings:   s,
		dateStyles: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Rows returns every row of sheet as typed cells.
// It is safe for concurrent use.
func (w *Workbook) Rows(sheet string) ([]models.Row, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	raw, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	rows := make([]models.Row, len(raw))
	for r, values := range raw {
		row := make(models.Row, len(values))
		for c, value := range values {
			cell, err := w.cellAt(sheet, c+1, r+1, value)
			if err != nil {
				return nil, err
			}
			row[c] = cell
		}
		rows[r] = row
	}

	w.settings.debugf("[Workbook] sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// Close closes the underlying file.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// cellAt converts the raw value at (col, row), both 1-based, into a typed cell
// using the stored cell type and, for numbers, the applied number format.
func (w *Workbook) cellAt(sheet string, col, row int, raw string) (models.Cell, error) {
	if raw == "" {
		return models.Absent(), nil
	}

	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := w.file.GetCellType(sheet, ref)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return models.Bool(b), nil
		}
		return models.Text(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISOTime(raw); ok {
			return models.Date(t), nil
		}
		return models.Text(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.Text(raw), nil
	}

	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Text(raw), nil
	}

	isDate, err := w.isDateCell(sheet, ref)
	if err != nil {
		return models.Cell{}, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(n, w.date1904); err == nil {
			return models.Date(t), nil
		}
	}
	return models.Number(n), nil
}

// isDateCell reports whether the number format applied to ref renders a date.
func (w *Workbook) isDateCell(sheet, ref string) (bool, error) {
	styleID, err := w.file.GetCellStyle(sheet, ref)
	if err != nil {
		return false, err
	}
	if isDate, ok := w.dateStyles[styleID]; ok {
		return isDate, nil
	}

	isDate := false
	if style, err := w.file.GetStyle(styleID); err == nil && style != nil {
		isDate = isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	}
	w.dateStyles[styleID] = isDate
	return isDate, nil
}
