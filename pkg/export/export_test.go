package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() Table {
	return Table{
		Columns: []string{"Title", "Starts", "Days"},
		Rows: [][]string{
			{"Rosh Hashana", "2025-09-23", "2"},
			{"Tisha B'Av", "2026-07-22", "2"},
		},
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Title,Starts,Days", lines[0])
	assert.Equal(t, "Rosh Hashana,2025-09-23,2", lines[1])
}

func TestCSVRequiresColumns(t *testing.T) {
	_, err := CSV(Table{})
	assert.Error(t, err)
}

func TestCSVQuotesCommas(t *testing.T) {
	data, err := CSV(Table{
		Columns: []string{"Title"},
		Rows:    [][]string{{"Sunday, Mar 2, 2026"}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Sunday, Mar 2, 2026"`)
}

func TestPDF(t *testing.T) {
	data, err := PDF(sampleTable(), "Upcoming Holidays")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestPDFRequiresColumns(t *testing.T) {
	_, err := PDF(Table{}, "")
	assert.Error(t, err)
}
