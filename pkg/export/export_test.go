package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Areas struct {
	Science *string `json:"science"`
}

type sampleRecord struct {
	ID    string   `json:"form_id"`
	Score *float64 `json:"score"`
	*Areas
	Tags   []string `json:"tags"`
	hidden string
	Skip   string `json:"-"`
}

func TestFromRecordsFlattens(t *testing.T) {
	science := "Magnets"
	score := 5.5
	data, err := FromRecords([]sampleRecord{
		{ID: "A", Score: &score, Areas: &Areas{Science: &science}, Tags: []string{"x"}},
		{ID: "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"form_id", "score", "science", "tags"}, data.Headers)
	assert.Equal(t, []string{"A", "5.5", "Magnets", `["x"]`}, data.Rows[0])
	assert.Equal(t, []string{"B", "", "", "null"}, data.Rows[1])
}

func TestFromRecordsRejectsNonSlices(t *testing.T) {
	_, err := FromRecords(sampleRecord{})
	require.Error(t, err)
	_, err = FromRecords([]string{"a"})
	require.Error(t, err)
}

func TestCSVExporter(t *testing.T) {
	out, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"form_id", "note"},
		Rows:    [][]string{{"A", "has, comma"}},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "form_id,note\nA,\"has, comma\"\n", string(out))

	_, err = NewCSVExporter().Render(Dataset{}, "")
	require.Error(t, err)
}

func TestPDFExporterSplitsWideTables(t *testing.T) {
	headers := make([]string, 20)
	row := make([]string, 20)
	for i := range headers {
		headers[i] = "col"
		row[i] = "value"
	}
	out, err := NewPDFExporter().Render(Dataset{Headers: headers, Rows: [][]string{row}}, "assessments")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
