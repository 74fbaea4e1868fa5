// Package models defines data structures for workbook profiling.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which payload a Cell carries.
type Kind int

const (
	// KindAbsent marks a missing cell (null, or beyond the row's width).
	KindAbsent Kind = iota
	// KindNumber is an integer or floating point value.
	KindNumber
	// KindText is a string value.
	KindText
	// KindBool is a boolean value.
	KindBool
	// KindDate is a date or date-time value.
	KindDate
)

// DateLayout is the layout used to stringify date cells.
const DateLayout = "2006-01-02 15:04:05"

// Cell is a single typed cell value.
// Only the payload field matching Kind is meaningful.
type Cell struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
	Time time.Time
}

// Row is an ordered sequence of cells.
type Row []Cell

// Absent returns an absent cell.
func Absent() Cell { return Cell{} }

// Number returns a numeric cell.
func Number(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }

// Text returns a text cell.
func Text(v string) Cell { return Cell{Kind: KindText, Str: v} }

// Bool returns a boolean cell.
func Bool(v bool) Cell { return Cell{Kind: KindBool, Bool: v} }

// Date returns a date cell.
func Date(v time.Time) Cell { return Cell{Kind: KindDate, Time: v} }

// String returns the display form of the cell value.
// Absent cells stringify to "".
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return formatNumber(c.Num)
	case KindText:
		return c.Str
	case KindBool:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindDate:
		return c.Time.Format(DateLayout)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell is absent or blank once stringified.
func (c Cell) IsEmpty() bool {
	if c.Kind == KindAbsent {
		return true
	}
	return strings.TrimSpace(c.String()) == ""
}

// DataType maps the cell's kind to the reported data type.
func (c Cell) DataType() DataType {
	switch c.Kind {
	case KindNumber:
		return TypeNumber
	case KindText:
		return TypeText
	case KindBool:
		return TypeBoolean
	case KindDate:
		return TypeDate
	default:
		return TypeUnknown
	}
}

// At returns the cell at index i, or an absent cell when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Absent()
	}
	return r[i]
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
