package reader

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	when := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	f.SetCellValue(sheetName, "A1", "id")
	f.SetCellValue(sheetName, "B1", "score")
	f.SetCellValue(sheetName, "C1", "active")
	f.SetCellValue(sheetName, "D1", "joined")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "D2", when)
	f.SetCellValue(sheetName, "A3", "Text")
	f.SetCellValue(sheetName, "B3", "12")

	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := OpenWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "Sheet1" || names[1] != "Empty" {
		t.Fatalf("Expected [Sheet1 Empty], got %v", names)
	}

	rows, err := wb.Rows(sheetName)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	if rows[0].At(0) != models.Text("id") {
		t.Errorf("Expected header 'id', got %+v", rows[0].At(0))
	}

	tests := []struct {
		name     string
		cell     models.Cell
		kind     models.Kind
		expected string
	}{
		{"integer", rows[1].At(0), models.KindNumber, "100"},
		{"float", rows[1].At(1), models.KindNumber, "200.5"},
		{"bool", rows[1].At(2), models.KindBool, "TRUE"},
		{"date", rows[1].At(3), models.KindDate, "2024-05-17 00:00:00"},
		{"text", rows[2].At(0), models.KindText, "Text"},
		{"numeric text", rows[2].At(1), models.KindText, "12"},
		{"missing", rows[2].At(2), models.KindAbsent, ""},
	}

	for _, tt := range tests {
		if tt.cell.Kind != tt.kind {
			t.Errorf("%s: expected kind %d, got %d (%+v)", tt.name, tt.kind, tt.cell.Kind, tt.cell)
		}
		if tt.cell.String() != tt.expected {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, tt.cell.String())
		}
	}

	empty, err := wb.Rows("Empty")
	if err != nil {
		t.Fatalf("Rows(Empty) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no rows in empty sheet, got %d", len(empty))
	}

	if _, err := wb.Rows("Missing"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestWorkbookCustomDateFormat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	format := "dd/mm/yyyy"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "booked")
	f.SetCellValue("Sheet1", "A2", 45000)
	f.SetCellValue("Sheet1", "A3", 45001)
	if err := f.SetCellStyle("Sheet1", "A2", "A2", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "dates.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := OpenWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	defer wb.Close()

	rows, err := wb.Rows("Sheet1")
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}

	if got := rows[1].At(0); got.Kind != models.KindDate {
		t.Errorf("Expected date-formatted serial to be a date, got %+v", got)
	} else if got.String() != "2023-03-15 00:00:00" {
		t.Errorf("Expected 2023-03-15 00:00:00, got %s", got.String())
	}
	if got := rows[2].At(0); got.Kind != models.KindNumber {
		t.Errorf("Expected unformatted serial to stay a number, got %+v", got)
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open("report.pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"book.xlsx", true},
		{"BOOK.XLSX", true},
		{"macro.xlsm", true},
		{"data.csv", true},
		{"legacy.xls", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if result := IsSupported(tt.path); result != tt.expected {
			t.Errorf("IsSupported(%q) = %v, expected %v", tt.path, result, tt.expected)
		}
	}
}
