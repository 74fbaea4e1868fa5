package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// WriteFile writes data to path through a temporary file in the same
// directory followed by a rename, so readers never observe a partial file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// WriteReport serializes r and writes it to path.
func WriteReport(r *models.WorkbookReport, path string, pretty bool) error {
	data, err := ToJSON(r, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return WriteFile(path, data)
}

// WriteSheetFiles writes one <sheet>.json file per sheet into dir.
// Names that collide once sanitized get a _2, _3, ... suffix in sheet order.
func WriteSheetFiles(r *models.WorkbookReport, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	used := make(map[string]bool, len(r.SheetNames))
	for _, name := range r.SheetNames {
		sheet := r.Sheets[name]
		data, err := SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}
		if err := WriteFile(filepath.Join(dir, uniqueFileName(sheetFileName(name), used)+".json"), data); err != nil {
			return err
		}
	}

	return nil
}

// sheetFileName replaces characters that are unsafe in file names.
func sheetFileName(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			out[i] = '_'
		}
	}
	return string(out)
}

// uniqueFileName returns base, or base with the first free numeric suffix,
// and marks the result as used. Comparison ignores case.
func uniqueFileName(base string, used map[string]bool) string {
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	used[strings.ToLower(name)] = true
	return name
}
