// Package reader opens spreadsheet files and yields their sheets as typed rows.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// ErrUnsupportedFormat indicates a file extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Source is an opened workbook.
type Source interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns every row of a sheet, the header row included.
	Rows(sheet string) ([]models.Row, error)
	// Close releases the underlying file.
	Close() error
}

// Option configures a reader.
type Option func(*settings)

type settings struct {
	debugf func(format string, args ...interface{})
}

// WithDebugf sets the function used for timing and diagnostic messages.
func WithDebugf(fn func(format string, args ...interface{})) Option {
	return func(s *settings) {
		if fn != nil {
			s.debugf = fn
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{debugf: func(string, ...interface{}) {}}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// SupportedExtensions lists the file extensions Open accepts.
func SupportedExtensions() []string {
	return []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".csv"}
}

// IsSupported reports whether path has an extension Open accepts.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return workbookExtensions[ext] || ext == ".csv"
}

// Open opens path with the reader matching its extension.
func Open(path string, opts ...Option) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case workbookExtensions[ext]:
		return OpenWorkbook(path, opts...)
	case ext == ".csv":
		return OpenCSV(path, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
