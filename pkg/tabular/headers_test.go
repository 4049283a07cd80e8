package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessHeadersSingleRow(t *testing.T) {
	processed, names := ProcessHeaders([][]string{{"Name", "Age", "City"}}, 1)
	assert.Equal(t, [][]string{{"Name", "Age", "City"}}, processed)
	assert.Equal(t, []string{"Name", "Age", "City"}, names)
}

func TestProcessHeadersMerge(t *testing.T) {
	headerData := [][]string{
		{"Personal", "Personal", "Location"},
		{"Name", "Age", "City"},
	}
	processed, names := ProcessHeaders(headerData, 2)
	assert.Equal(t, [][]string{{"Personal_Name", "Personal_Age", "Location_City"}}, processed)
	assert.Equal(t, []string{"Personal_Name", "Personal_Age", "Location_City"}, names)
}

func TestProcessHeadersMergeSkipsBlankCells(t *testing.T) {
	headerData := [][]string{
		{"A", ""},
		{"", ""},
		{"B", ""},
	}
	_, names := ProcessHeaders(headerData, 3)
	// Blank cells do not contribute separators: "A_B", not "A__B".
	assert.Equal(t, []string{"A_B", "column_1"}, names)
}

func TestProcessHeadersNoInput(t *testing.T) {
	processed, names := ProcessHeaders(nil, 1)
	assert.Empty(t, processed)
	assert.Empty(t, names)

	processed, names = ProcessHeaders([][]string{{"A"}}, 0)
	assert.Empty(t, processed)
	assert.Empty(t, names)
}

func TestProcessHeadersTrimsWhitespace(t *testing.T) {
	processed, names := ProcessHeaders([][]string{{"  Name  ", " Age\t", "\nCity"}}, 1)
	assert.Equal(t, [][]string{{"  Name  ", " Age\t", "\nCity"}}, processed)
	assert.Equal(t, []string{"Name", "Age", "City"}, names)
}

func TestProcessHeadersPlaceholders(t *testing.T) {
	_, names := ProcessHeaders([][]string{{"", "Name", ""}}, 1)
	assert.Equal(t, []string{"column_0", "Name", "column_2"}, names)

	_, names = ProcessHeaders([][]string{{"  ", "Name", "\t"}}, 1)
	assert.Equal(t, []string{"column_0", "Name", "column_2"}, names)
}

func TestProcessHeadersIrregularLengths(t *testing.T) {
	headerData := [][]string{{"A", "B"}, {"C", "D", "E"}}
	processed, names := ProcessHeaders(headerData, 1)

	// Single-row processing passes the input through but sizes names to
	// the widest row.
	assert.Equal(t, headerData, processed)
	assert.Equal(t, []string{"A", "B", "column_2"}, names)
}

func TestProcessHeadersMergeIrregularLengths(t *testing.T) {
	headerData := [][]string{{"Group"}, {"Name", "Age"}}
	processed, names := ProcessHeaders(headerData, 2)
	assert.Equal(t, [][]string{{"Group_Name", "Age"}}, processed)
	assert.Equal(t, []string{"Group_Name", "Age"}, names)
}
