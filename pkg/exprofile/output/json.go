package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// ToJSON serializes a report. Pretty output is indented by two spaces.
func ToJSON(r *models.WorkbookReport, pretty bool) ([]byte, error) {
	return encode(NewDocument(r), pretty)
}

// SheetToJSON serializes a single sheet profile.
func SheetToJSON(s *models.SheetProfile, pretty bool) ([]byte, error) {
	return encode(NewSheetDocument(*s), pretty)
}

// FromJSON parses a report written by ToJSON.
func FromJSON(data []byte) (*models.WorkbookReport, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Report()
}

// encode writes non-ASCII text and HTML characters as-is.
func encode(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
