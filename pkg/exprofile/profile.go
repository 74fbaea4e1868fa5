package exprofile

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/profiler"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/reader"
)

// Profile opens the workbook at path and profiles every sheet.
func Profile(path string, opts Options) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	src, err := reader.Open(path, reader.WithDebugf(opts.Debugf))
	if err != nil {
		if errors.Is(err, reader.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer src.Close()

	return ProfileSource(src, path, opts)
}

// ProfileSource profiles an already opened workbook. path is recorded on the report.
func ProfileSource(src profiler.Source, path string, opts Options) (*models.WorkbookReport, error) {
	return profiler.ProfileWorkbook(src, path, opts.ProfilerConfig())
}
