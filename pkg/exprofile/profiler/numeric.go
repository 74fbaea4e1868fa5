package profiler

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// summarizeNumbers describes the number values among values.
// Returns nil when there are none.
func summarizeNumbers(values []models.Cell) *models.NumericSummary {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if v.Kind == models.KindNumber {
			data = append(data, v.Num)
		}
	}
	if len(data) == 0 {
		return nil
	}

	min, err := stats.Min(data)
	if err != nil {
		return nil
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil
	}

	return &models.NumericSummary{
		Count:  len(data),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
	}
}
