package reporting

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnslens/internal/models"
)

func TestWriteSessionReport(t *testing.T) {
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	recs := []models.Record{
		{
			QueryRecord:    models.QueryRecord{Time: now, QueryType: "A"},
			Client:         "laptop",
			TopLevelDomain: "google.com",
			FilterStatus:   "Not Filtered",
		},
		{
			QueryRecord:    models.QueryRecord{Time: now, QueryType: "A"},
			Client:         "phone",
			TopLevelDomain: "ads.example.com",
			FilterStatus:   "Blocked by Rule",
			IsFiltered:     true,
		},
	}

	dir := t.TempDir()
	path, err := WriteSessionReport(recs, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "dnslens DNS Analytics Report")
	assert.Contains(t, html, "google.com")
	assert.Contains(t, html, "ads.example.com")
	assert.Contains(t, html, "laptop")
	assert.Contains(t, html, "Blocked by Rule")
	assert.True(t, strings.HasPrefix(path, dir))
}

func TestWriteSessionReportEmptyDataset(t *testing.T) {
	path, err := WriteSessionReport(nil, t.TempDir())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "No queries in the selected data.")
	assert.Contains(t, html, "No blocked queries in the selected data.")
}
