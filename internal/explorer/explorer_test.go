// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explorer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/internal/dataset"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

const scenarioCSV = `title,abstract,publish_time,authors,journal
mRNA Vaccine Study,...,2021-03-01,"Smith, J.",Vaccine
Transmission Dynamics,...,not a date,"Lee, K.",
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenScenario(t *testing.T) {
	var logs bytes.Buffer
	e := Open(types.DatasetConfig{Path: writeCSV(t, scenarioCSV)}, zerolog.New(&logs))

	require.NoError(t, e.LoadErr())
	assert.Empty(t, e.Banner())
	require.Equal(t, 2, e.Total())

	ds := e.Dataset()
	require.NotNil(t, ds[0].Year)
	assert.Equal(t, 2021, *ds[0].Year)
	assert.Nil(t, ds[1].Year)

	assert.Equal(t, []types.YearCount{{Year: 2021, Count: 1}}, e.PapersPerYear())

	found := e.Search("vaccine")
	assert.Equal(t, types.SearchFound, found.Status)
	require.Len(t, found.Records, 1)
	assert.Equal(t, "mRNA Vaccine Study", found.Records[0].Title)

	none := e.Search("xyz")
	assert.Equal(t, types.SearchNoMatches, none.Status)
	assert.Empty(t, none.Records)

	assert.Contains(t, logs.String(), "dataset loaded")
	assert.Contains(t, logs.String(), `"rows_undated":1`)
}

func TestOpenMissingFileDegrades(t *testing.T) {
	var logs bytes.Buffer
	path := filepath.Join(t.TempDir(), "nonexistent.csv")
	e := Open(types.DatasetConfig{Path: path}, zerolog.New(&logs))

	require.Error(t, e.LoadErr())
	assert.ErrorIs(t, e.LoadErr(), dataset.ErrFileNotFound)
	assert.Equal(t, fmt.Sprintf("Error: '%s' not found. Please ensure the file is in the same directory.", path), e.Banner())
	assert.Contains(t, logs.String(), "continuing with empty dataset")

	assert.True(t, e.Empty())
	assert.Zero(t, e.Total())
	assert.Empty(t, e.Sample(20))
	assert.Empty(t, e.PapersPerYear())
	assert.Empty(t, e.TopJournals(10))
	assert.Empty(t, e.Search("vaccine").Records)
	assert.Equal(t, types.SearchNoKeyword, e.Search("").Status)
}

func TestOpenMissingColumnsDegrades(t *testing.T) {
	e := Open(types.DatasetConfig{Path: writeCSV(t, "title,abstract\nA,B\n")}, zerolog.Nop())
	assert.ErrorIs(t, e.LoadErr(), dataset.ErrMissingColumns)
	assert.True(t, strings.HasPrefix(e.Banner(), "Error: "))
	assert.True(t, e.Empty())
}

func TestSampleAndDefaults(t *testing.T) {
	var data types.Dataset
	for i := 0; i < 25; i++ {
		data = append(data, types.Record{Title: fmt.Sprintf("Paper %d", i), Abstract: "a", Journal: fmt.Sprintf("J%d", i%12)})
	}
	e := New(types.DatasetConfig{}, data)

	assert.Equal(t, types.DefaultDatasetPath, e.Source())
	assert.Len(t, e.Sample(0), types.DefaultSampleRows)
	assert.Len(t, e.Sample(5), 5)
	assert.Len(t, e.Sample(100), 25)
	assert.Equal(t, "Paper 0", e.Sample(1)[0].Title)

	assert.Len(t, e.TopJournals(0), types.DefaultTopJournals)
	assert.Len(t, e.TopJournals(3), 3)
}

func TestNewNilDataset(t *testing.T) {
	e := New(types.DatasetConfig{}, nil)
	assert.NotNil(t, e.Dataset())
	assert.True(t, e.Empty())
}
