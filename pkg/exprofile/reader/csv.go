package reader

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSVFile exposes a CSV file as a workbook with a single sheet named
// after the file (without extension).
type CSVFile struct {
	path     string
	sheet    string
	settings settings
}

// OpenCSV prepares a CSV file for reading. The file is read on Rows.
func OpenCSV(path string, opts ...Option) (*CSVFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	return &CSVFile{
		path:     path,
		sheet:    strings.TrimSuffix(base, filepath.Ext(base)),
		settings: newSettings(opts),
	}, nil
}

// SheetNames returns the single sheet name.
func (c *CSVFile) SheetNames() []string {
	return []string{c.sheet}
}

// Rows reads every record. A UTF-8 or UTF-16 byte order mark selects the
// decoding; without one the input is treated as UTF-8.
func (c *CSVFile) Rows(sheet string) ([]models.Row, error) {
	if sheet != c.sheet {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	f, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := time.Now()
	decoded := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	r := csv.NewReader(decoded)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	rows := make([]models.Row, len(records))
	for i, rec := range records {
		row := make(models.Row, len(rec))
		for j, v := range rec {
			row[j] = parseValue(v)
		}
		rows[i] = row
	}

	c.settings.debugf("[CSVFile] %s read in %.2fms (%d rows)",
		c.path, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// Close is a no-op; the file is only held open during Rows.
func (c *CSVFile) Close() error {
	return nil
}

// parseValue converts a CSV field into a typed cell.
// Numbers are tried first, then booleans, then ISO dates; anything else is text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.Absent()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.Number(f)
	}
	switch strings.ToLower(s) {
	case "true":
		return models.Bool(true)
	case "false":
		return models.Bool(false)
	}
	if t, ok := parseISOTime(s); ok {
		return models.Date(t)
	}
	return models.Text(s)
}
