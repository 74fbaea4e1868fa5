package profiler

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/models"
)

func row(cells ...models.Cell) models.Row { return models.Row(cells) }

func num(v float64) models.Cell    { return models.Number(v) }
func text(v string) models.Cell    { return models.Text(v) }
func absent() models.Cell          { return models.Absent() }
func date(t time.Time) models.Cell { return models.Date(t) }

func TestProfileSheetBasic(t *testing.T) {
	header := row(text("id"), text("name"), text("age"))
	data := []models.Row{
		row(num(1), text("Alice"), num(30)),
		row(num(2), text("Bob"), absent()),
	}

	p := ProfileSheet("People", header, data, Config{})

	assert.Equal(t, "People", p.Name)
	assert.Equal(t, 2, p.RowCount)
	assert.Equal(t, 3, p.ColumnCount)
	assert.Equal(t, []string{"id", "name", "age"}, p.ColumnNames)
	assert.False(t, p.Empty)

	age := p.Columns["age"]
	assert.Equal(t, 1, age.NullCount)
	assert.Equal(t, []models.DataType{models.TypeNumber}, age.InferredTypes)
	assert.Contains(t, age.UniqueValues, "30")
	assert.False(t, age.IsRelationshipCandidate)
	require.NotNil(t, age.SampleValue)
	assert.Equal(t, "30", *age.SampleValue)

	assert.True(t, p.Columns["id"].IsRelationshipCandidate)
	assert.True(t, p.Columns["name"].IsRelationshipCandidate)

	require.Len(t, p.Relationships, 2)
	assert.Equal(t, "id", p.Relationships[0].Column)
	assert.Equal(t, models.RelationshipPotentialReference, p.Relationships[0].Type)
	assert.Equal(t, []string{"1", "2"}, p.Relationships[0].SampleValues)
	assert.Equal(t, "name", p.Relationships[1].Column)
	assert.Equal(t, []string{"Alice", "Bob"}, p.Relationships[1].SampleValues)
}

func TestProfileSheetEmpty(t *testing.T) {
	p := ProfileSheet("Blank", nil, nil, Config{})

	assert.True(t, p.Empty)
	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 0, p.ColumnCount)
	assert.Empty(t, p.ColumnNames)
	assert.Empty(t, p.Columns)
	assert.Empty(t, p.Relationships)
}

func TestProfileSheetHeaderOnly(t *testing.T) {
	p := ProfileSheet("Headers", row(text("Notes"), text("Amount")), nil, Config{})

	assert.False(t, p.Empty)
	assert.Equal(t, 0, p.RowCount)
	assert.Equal(t, 2, p.ColumnCount)
	for _, name := range p.ColumnNames {
		col := p.Columns[name]
		assert.Equal(t, []models.DataType{models.TypeUnknown}, col.InferredTypes)
		assert.Equal(t, 0, col.NullCount)
		assert.Nil(t, col.SampleValue)
		assert.Empty(t, col.UniqueValues)
	}
}

func TestSamplingWindowBlindSpot(t *testing.T) {
	data := make([]models.Row, 0, 151)
	for i := 0; i < 150; i++ {
		if i == 120 {
			data = append(data, row(text("outlier")))
		}
		data = append(data, row(num(float64(i))))
	}

	p := ProfileSheet("Numbers", row(text("value")), data, Config{})

	col := p.Columns["value"]
	assert.Equal(t, []models.DataType{models.TypeNumber}, col.InferredTypes)
	assert.Equal(t, 151, p.RowCount)
	assert.Equal(t, 0, col.NullCount)
}

func TestSampleSizeIsConfigurable(t *testing.T) {
	data := []models.Row{row(num(1)), row(text("x"))}

	p := ProfileSheet("S", row(text("value")), data, Config{SampleSize: 1})
	assert.Equal(t, []models.DataType{models.TypeNumber}, p.Columns["value"].InferredTypes)

	p = ProfileSheet("S", row(text("value")), data, Config{SampleSize: 2})
	assert.Equal(t, []models.DataType{models.TypeNumber, models.TypeText}, p.Columns["value"].InferredTypes)
}

func TestNullAccountingIdentity(t *testing.T) {
	header := row(text("a"), text("b"), text("c"))
	data := []models.Row{
		row(num(1), text("  "), text("x")),
		row(),
		row(absent(), text("y")),
		row(num(4), text(""), absent(), text("beyond header")),
	}

	p := ProfileSheet("Ragged", header, data, Config{})

	for _, name := range p.ColumnNames {
		col := p.Columns[name]
		collected := 0
		for _, r := range data {
			if !r.At(col.Index).IsEmpty() {
				collected++
			}
		}
		assert.Equal(t, p.RowCount, col.NullCount+collected, "column %s", name)
	}
	assert.Equal(t, 2, p.Columns["a"].NullCount)
	assert.Equal(t, 3, p.Columns["b"].NullCount)
	assert.Equal(t, 3, p.Columns["c"].NullCount)
	assert.Equal(t, []models.DataType{models.TypeText}, p.Columns["b"].InferredTypes)
}

func TestInferTypesByKind(t *testing.T) {
	when := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	data := []models.Row{
		row(num(1.5)),
		row(date(when)),
		row(models.Bool(true)),
		row(text("hello")),
	}

	p := ProfileSheet("Mixed", row(text("mixed")), data, Config{})

	assert.Equal(t, []models.DataType{
		models.TypeNumber, models.TypeDate, models.TypeBoolean, models.TypeText,
	}, p.Columns["mixed"].InferredTypes)
	assert.NotContains(t, p.Columns["mixed"].InferredTypes, models.TypeUnknown)
}

func TestUniqueValuesCap(t *testing.T) {
	var data []models.Row
	for i := 0; i < 25; i++ {
		data = append(data, row(num(float64(i%15))))
	}

	p := ProfileSheet("S", row(text("code")), data, Config{})
	uniq := p.Columns["code"].UniqueValues

	assert.Len(t, uniq, 10)
	all := make(map[string]bool)
	for _, r := range data {
		all[r.At(0).String()] = true
	}
	seen := make(map[string]bool)
	for _, v := range uniq {
		assert.True(t, all[v], "unexpected unique value %q", v)
		assert.False(t, seen[v], "duplicate unique value %q", v)
		seen[v] = true
	}
}

func TestHeaderRetention(t *testing.T) {
	header := row(text("first"), absent(), text(""), text("None"), num(2024), text("last"))
	p := ProfileSheet("S", header, []models.Row{row(text("a"), text("b"), text("c"), text("d"), text("e"), text("f"))}, Config{})

	assert.Equal(t, []string{"first", "2024", "last"}, p.ColumnNames)
	assert.Equal(t, 3, p.ColumnCount)
	assert.Equal(t, 4, p.Columns["2024"].Index)
	require.NotNil(t, p.Columns["last"].SampleValue)
	assert.Equal(t, "f", *p.Columns["last"].SampleValue)
}

func TestKeepPlaceholderHeaders(t *testing.T) {
	header := row(text("first"), absent(), text("third"))
	p := ProfileSheet("S", header, []models.Row{row(num(1), num(2), num(3))}, Config{KeepPlaceholderHeaders: true})

	assert.Equal(t, []string{"first", "Column_2", "third"}, p.ColumnNames)
	assert.Equal(t, 1, p.Columns["Column_2"].Index)
}

func TestRelationshipDetection(t *testing.T) {
	tests := []struct {
		header   string
		expected bool
	}{
		{"UserID", true},
		{"Notes", false},
		{"CLIMBER", true},
		{"Parent Account", true},
		{"booking_ref", true},
		{"Amount", false},
		{"Date", false},
		{"Trainer", true},
		{"valid", true}, // substring match on "id"
	}

	for _, tt := range tests {
		p := ProfileSheet("S", row(text(tt.header)), []models.Row{row(text("v"))}, Config{})
		col := p.Columns[tt.header]
		if col.IsRelationshipCandidate != tt.expected {
			t.Errorf("header %q: IsRelationshipCandidate = %v, expected %v",
				tt.header, col.IsRelationshipCandidate, tt.expected)
		}
		if tt.expected {
			assert.Len(t, p.Relationships, 1)
		} else {
			assert.Empty(t, p.Relationships)
		}
	}
}

func TestRelationshipSamplesKeepDuplicates(t *testing.T) {
	var data []models.Row
	for _, v := range []string{"a", "a", "", "b", "a", "c", "d"} {
		data = append(data, row(text(v)))
	}

	p := ProfileSheet("S", row(text("coach")), data, Config{})

	require.Len(t, p.Relationships, 1)
	assert.Equal(t, []string{"a", "a", "b", "a", "c"}, p.Relationships[0].SampleValues)
}

func TestSampleValueTruncation(t *testing.T) {
	long := strings.Repeat("é", 150)
	p := ProfileSheet("S", row(text("body")), []models.Row{row(text(long))}, Config{})

	sample := p.Columns["body"].SampleValue
	require.NotNil(t, sample)
	assert.Equal(t, strings.Repeat("é", 100)+"...", *sample)

	short := strings.Repeat("x", 100)
	p = ProfileSheet("S", row(text("body")), []models.Row{row(text(short))}, Config{})
	assert.Equal(t, short, *p.Columns["body"].SampleValue)
}

func TestDuplicateHeaderNames(t *testing.T) {
	header := row(text("dup"), text("dup"))
	data := []models.Row{row(num(1), text("x"))}

	p := ProfileSheet("S", header, data, Config{})

	assert.Equal(t, []string{"dup", "dup"}, p.ColumnNames)
	assert.Equal(t, 2, p.ColumnCount)
	assert.Len(t, p.Columns, 1)
	assert.Equal(t, 1, p.Columns["dup"].Index)
	assert.Equal(t, []models.DataType{models.TypeText}, p.Columns["dup"].InferredTypes)
}

func TestNumericSummary(t *testing.T) {
	data := []models.Row{row(num(4)), row(text("n/a")), row(num(1)), row(num(7))}

	p := ProfileSheet("S", row(text("score")), data, Config{})
	assert.Nil(t, p.Columns["score"].Numeric)

	p = ProfileSheet("S", row(text("score")), data, Config{NumericSummary: true})
	sum := p.Columns["score"].Numeric
	require.NotNil(t, sum)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 1.0, sum.Min)
	assert.Equal(t, 7.0, sum.Max)
	assert.InDelta(t, 4.0, sum.Mean, 1e-9)
	assert.Equal(t, 4.0, sum.Median)

	p = ProfileSheet("S", row(text("label")), []models.Row{row(text("a"))}, Config{NumericSummary: true})
	assert.Nil(t, p.Columns["label"].Numeric)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected string
	}{
		{"abc", 3, "abc"},
		{"abcd", 3, "abc..."},
		{"", 3, ""},
		{"日本語テキスト", 2, "日本..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.limit)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.limit, result, tt.expected)
		}
	}
}

func ExampleProfileSheet() {
	header := models.Row{models.Text("id"), models.Text("age")}
	data := []models.Row{
		{models.Number(1), models.Number(30)},
		{models.Number(2)},
	}

	p := ProfileSheet("People", header, data, Config{})
	fmt.Println(p.RowCount, p.Columns["age"].NullCount, p.Columns["age"].InferredTypes)
	// Output: 2 1 [number]
}
