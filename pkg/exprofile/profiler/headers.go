package profiler

import (
	"fmt"

	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

// column is a retained header bound to its position in the header row.
type column struct {
	name  string
	index int
}

// retainHeaders builds the header list from the first row.
// Absent cells become Column_<n> placeholders, which are only kept when
// keepPlaceholders is set. Empty names and the literal "None" are dropped.
func retainHeaders(header models.Row, keepPlaceholders bool) []column {
	cols := make([]column, 0, len(header))
	for i, cell := range header {
		var name string
		if cell.Kind == models.KindAbsent {
			if !keepPlaceholders {
				continue
			}
			name = fmt.Sprintf("Column_%d", i+1)
		} else {
			name = cell.String()
		}
		if name == "" || name == "None" {
			continue
		}
		cols = append(cols, column{name: name, index: i})
	}
	return cols
}
