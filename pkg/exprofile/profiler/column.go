package profiler

import (
	"strings"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// typeOrder fixes the output order of inferred type sets.
var typeOrder = []models.DataType{
	models.TypeNumber,
	models.TypeDate,
	models.TypeBoolean,
	models.TypeText,
}

func profileColumn(col column, values []models.Cell, rowCount int, cfg Config) models.ColumnProfile {
	cp := models.ColumnProfile{
		Name:          col.name,
		Index:         col.index,
		RowCount:      rowCount,
		InferredTypes: inferTypes(values, cfg.SampleSize),
		NullCount:     rowCount - len(values),
		UniqueValues:  uniqueValues(values, cfg.UniqueLimit),
	}

	if len(values) > 0 {
		sample := truncate(values[0].String(), cfg.SampleTextLimit)
		cp.SampleValue = &sample
	}

	if isRelationshipName(col.name, cfg.Keywords) {
		cp.IsRelationshipCandidate = true
		cp.RelationshipSamples = stringify(values, cfg.RelationshipSampleLimit)
	}

	if cfg.NumericSummary {
		cp.Numeric = summarizeNumbers(values)
	}

	return cp
}

// inferTypes classifies the first sampleSize values by their cell kind.
// Values past the sampling window never influence the result.
func inferTypes(values []models.Cell, sampleSize int) []models.DataType {
	if len(values) > sampleSize {
		values = values[:sampleSize]
	}
	if len(values) == 0 {
		return []models.DataType{models.TypeUnknown}
	}

	seen := make(map[models.DataType]bool, len(typeOrder))
	for _, v := range values {
		seen[v.DataType()] = true
	}

	types := make([]models.DataType, 0, len(seen))
	for _, t := range typeOrder {
		if seen[t] {
			types = append(types, t)
		}
	}
	return types
}

// uniqueValues returns up to limit distinct stringified values in first-seen order.
func uniqueValues(values []models.Cell, limit int) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, limit)
	for _, v := range values {
		if len(out) >= limit {
			break
		}
		s := v.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func stringify(values []models.Cell, limit int) []string {
	if len(values) > limit {
		values = values[:limit]
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// truncate cuts s to limit runes and appends "..." when it was longer.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func isRelationshipName(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
