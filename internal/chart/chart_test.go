// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

func TestRenderPapersPerYearSVG(t *testing.T) {
	tests := []struct {
		name   string
		series []types.YearCount
	}{
		{"single year", []types.YearCount{{Year: 2021, Count: 1}}},
		{"several years", []types.YearCount{{Year: 2018, Count: 4}, {Year: 2019, Count: 9}, {Year: 2021, Count: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPapersPerYear(&buf, tt.series, types.ChartConfig{Format: types.ChartSVG}))
			assert.Contains(t, buf.String(), "<svg")
			assert.Contains(t, buf.String(), PapersPerYearTitle)
		})
	}
}

func TestRenderTopJournalsSVG(t *testing.T) {
	series := []types.JournalCount{
		{Journal: "The Lancet Infectious Diseases", Count: 5},
		{Journal: "", Count: 5},
		{Journal: "Cell", Count: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderTopJournals(&buf, series, types.ChartConfig{}))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Top 3 Journals by Publication Count")
	assert.Contains(t, out, types.UnknownJournalLabel)
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPapersPerYear(&buf, []types.YearCount{{Year: 2020, Count: 3}, {Year: 2021, Count: 7}},
		types.ChartConfig{Format: types.ChartPNG, Width: 400, Height: 300})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPapersPerYear(&buf, nil, types.ChartConfig{}), ErrNoData)
	assert.ErrorIs(t, RenderTopJournals(&buf, []types.JournalCount{}, types.ChartConfig{}), ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, types.ChartSVG, f)

	f, err = ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, types.ChartPNG, f)
	assert.Equal(t, "png", Extension(f))
	assert.Equal(t, "image/png", ContentType(f))

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestYearTicks(t *testing.T) {
	ticks := yearTicks(1900, 2022)
	assert.LessOrEqual(t, len(ticks), maxYearTicks+1)
	assert.Equal(t, "1900", ticks[0].Label)

	ticks = yearTicks(2019, 2021)
	require.Len(t, ticks, 3)
	assert.Equal(t, "2021", ticks[2].Label)
}
