package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func learnerDataset() Dataset {
	return Dataset{
		Headers: []string{"Name", "Progress"},
		Rows: []map[string]string{
			{"Name": "Sarah Johnson", "Progress": "85"},
			{"Name": "Lisa Thompson", "Progress": "20"},
		},
	}
}

func TestCSVSingleSection(t *testing.T) {
	out, err := NewCSVExporter().Render(Single("Learners", learnerDataset()))
	require.NoError(t, err)
	assert.Equal(t, "Name,Progress\nSarah Johnson,85\nLisa Thompson,20\n", string(out))
}

func TestCSVMultiSection(t *testing.T) {
	doc := Document{Title: "Report", Sections: []Section{
		{Title: "Learners", Data: learnerDataset()},
		{Title: "Certificates", Data: Dataset{Headers: []string{"Status", "Count"}, Rows: []map[string]string{{"Status": "Issued", "Count": "145"}}}},
	}}
	out, err := NewCSVExporter().Render(doc)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	assert.Equal(t, "Learners", lines[0])
	assert.Contains(t, lines, "Certificates")
	assert.Contains(t, lines, "Issued,145")
}

func TestRenderRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Single("x", Dataset{}))
	assert.Error(t, err)
	_, err = NewPDFExporter().Render(Document{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(Document{Title: "Analytics", Sections: []Section{{Title: "Learners", Data: learnerDataset()}}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
