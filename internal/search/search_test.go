// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

func intPtr(v int) *int { return &v }

func sampleDataset() types.Dataset {
	return types.Dataset{
		{Title: "mRNA Vaccine Study", Abstract: "...", Year: intPtr(2021), Journal: "Vaccine", Authors: "Smith, J."},
		{Title: "Transmission Dynamics", Abstract: "...", Journal: "Lancet"},
		{Title: "COVID-19 vaccine hesitancy", Abstract: "...", Year: intPtr(2020)},
		{Title: "Covid and the Kidney", Abstract: "...", Year: intPtr(2020), Journal: "Kidney Int"},
	}
}

// --- Filter ---

func TestFilter(t *testing.T) {
	ds := sampleDataset()
	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"empty keyword", "", nil},
		{"single match", "mRNA", []string{"mRNA Vaccine Study"}},
		{"case insensitive", "VACCINE", []string{"mRNA Vaccine Study", "COVID-19 vaccine hesitancy"}},
		{"substring inside word", "mission", []string{"Transmission Dynamics"}},
		{"no match", "xyz", nil},
		{"literal not pattern", "covid.*", nil},
		{"whitespace keyword is a keyword", " and ", []string{"Covid and the Kidney"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(ds, tt.keyword)
			require.NotNil(t, got)
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if tt.want == nil {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterCaseInsensitiveEquivalence(t *testing.T) {
	ds := sampleDataset()
	upper := Filter(ds, "COVID")
	lower := Filter(ds, "covid")
	assert.Equal(t, upper, lower)
	require.Len(t, upper, 2)
	for _, r := range upper {
		assert.True(t, strings.Contains(strings.ToLower(r.Title), "covid"))
	}
}

func TestFilterSkipsEmptyTitles(t *testing.T) {
	ds := types.Dataset{{Title: "", Abstract: "an abstract about vaccines"}}
	assert.Empty(t, Filter(ds, "vaccine"))
	assert.Empty(t, Filter(ds, " "))
}

func TestFilterEmptyDataset(t *testing.T) {
	assert.Empty(t, Filter(nil, "vaccine"))
}

// --- Search ---

func TestSearchStatus(t *testing.T) {
	ds := sampleDataset()
	tests := []struct {
		name       string
		keyword    string
		wantStatus types.SearchStatus
		wantTotal  int
		wantMsg    string
	}{
		{"no keyword", "", types.SearchNoKeyword, 0, "Enter a keyword to search."},
		{"no matches", "xyz", types.SearchNoMatches, 0, "No papers found for the keyword 'xyz'. Try a different term."},
		{"found", "vaccine", types.SearchFound, 2, "Found 2 papers related to 'vaccine'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Search(ds, tt.keyword)
			assert.Equal(t, tt.wantStatus, out.Status)
			assert.Equal(t, tt.wantTotal, out.Total)
			assert.Len(t, out.Records, tt.wantTotal)
			assert.Equal(t, tt.wantMsg, out.Message())
		})
	}
}

func TestSearchEndToEndScenario(t *testing.T) {
	ds := sampleDataset()[:2]
	out := Search(ds, "vaccine")
	require.Equal(t, types.SearchFound, out.Status)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "mRNA Vaccine Study", out.Records[0].Title)

	assert.Empty(t, Search(ds, "xyz").Records)
}

// --- formatting ---

func TestFormatTableLimitsRows(t *testing.T) {
	var ds types.Dataset
	for i := 0; i < 30; i++ {
		ds = append(ds, types.Record{Title: fmt.Sprintf("Vaccine trial %d", i), Abstract: "a"})
	}
	out := Search(ds, "vaccine")

	var buf bytes.Buffer
	FormatTable(out, 20, &buf)
	text := buf.String()

	assert.Contains(t, text, "Found 30 papers related to 'vaccine'.")
	assert.Contains(t, text, "Vaccine trial 19")
	assert.NotContains(t, text, "Vaccine trial 20")
	assert.Contains(t, text, "showing 20 of 30 results")
	assert.Contains(t, text, types.UnknownJournalLabel)
}

func TestFormatTableNoMatches(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Search(sampleDataset(), "xyz"), 20, &buf)
	assert.Equal(t, "No papers found for the keyword 'xyz'. Try a different term.\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(Search(sampleDataset(), "covid"), 1, &buf))

	var decoded types.SearchOutcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, types.SearchFound, decoded.Status)
	assert.Equal(t, 2, decoded.Total)
	assert.Len(t, decoded.Records, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Über...", Truncate("Überraschung", 7))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

// --- query files ---

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaccine.yaml")
	out := Search(sampleDataset(), "vaccine")
	require.NoError(t, WriteQueryFile(path, "metadata.csv", out))

	qf, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vaccine", qf.Keyword)
	assert.Equal(t, "metadata.csv", qf.Source)
	assert.False(t, qf.Summary.Timestamp.IsZero())

	restored := qf.Outcome()
	assert.Equal(t, out.Status, restored.Status)
	assert.Equal(t, out.Total, restored.Total)
	require.Len(t, restored.Records, 2)
	assert.Equal(t, "mRNA Vaccine Study", restored.Records[0].Title)
	require.NotNil(t, restored.Records[0].Year)
	assert.Equal(t, 2021, *restored.Records[0].Year)
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
