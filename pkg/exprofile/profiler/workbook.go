package profiler

import (
	"context"
	"fmt"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
	"golang.org/x/sync/errgroup"
)

// Source yields the sheets of an already opened workbook.
//
// When Config.Parallelism is greater than one, Rows may be called from
// several goroutines at once.
type Source interface {
	// SheetNames returns sheet names in workbook order.
	SheetNames() []string
	// Rows returns every row of a sheet, the header row included.
	Rows(sheet string) ([]models.Row, error)
}

// ProfileWorkbook profiles every sheet of src and aggregates the results.
//
// A sheet read failure aborts the run with a *SheetError unless
// cfg.IsolateSheetErrors is set, in which case the message is recorded on
// that sheet's profile and the remaining sheets are still profiled.
func ProfileWorkbook(src Source, path string, cfg Config) (*models.WorkbookReport, error) {
	cfg = cfg.withDefaults()
	names := src.SheetNames()

	if cfg.DuplicateSheets == DuplicateError {
		if dup, ok := firstDuplicate(names); ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, dup)
		}
	}

	analyzed := cfg.Now()

	profiles, err := profileSheets(src, names, cfg)
	if err != nil {
		return nil, err
	}

	report := &models.WorkbookReport{
		FilePath:     path,
		TotalSheets:  len(names),
		SheetNames:   make([]string, 0, len(names)),
		Sheets:       make(map[string]models.SheetProfile, len(names)),
		AnalysisDate: analyzed,
	}
	for i, name := range names {
		if _, seen := report.Sheets[name]; !seen {
			report.SheetNames = append(report.SheetNames, name)
		}
		report.Sheets[name] = profiles[i]
	}

	return report, nil
}

func profileSheets(src Source, names []string, cfg Config) ([]models.SheetProfile, error) {
	profiles := make([]models.SheetProfile, len(names))

	if cfg.Parallelism <= 1 {
		for i, name := range names {
			p, err := profileSourceSheet(src, name, cfg)
			if err != nil {
				return nil, err
			}
			profiles[i] = p
		}
		return profiles, nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Parallelism)
	for i, name := range names {
		i, name := i, name // per-iteration copies (go1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return nil
			}
			p, err := profileSourceSheet(src, name, cfg)
			if err != nil {
				return err
			}
			profiles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func profileSourceSheet(src Source, name string, cfg Config) (models.SheetProfile, error) {
	rows, err := src.Rows(name)
	if err != nil {
		if cfg.IsolateSheetErrors {
			p := emptySheet(name)
			p.Error = err.Error()
			return p, nil
		}
		return models.SheetProfile{}, NewSheetError(name, "rows", err)
	}

	var header models.Row
	var data []models.Row
	if len(rows) > 0 {
		header = rows[0]
		data = rows[1:]
	}
	return ProfileSheet(name, header, data, cfg), nil
}

func firstDuplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}
	return "", false
}
