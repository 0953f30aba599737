// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

func rec(title string, year int, journal string) types.Record {
	r := types.Record{Title: title, Abstract: "abstract", Journal: journal}
	if year != 0 {
		y := year
		r.Year = &y
	}
	return r
}

func TestPapersPerYear(t *testing.T) {
	ds := types.Dataset{
		rec("a", 2021, "J1"),
		rec("b", 2019, "J1"),
		rec("c", 0, "J2"),
		rec("d", 2021, "J3"),
		rec("e", 2020, ""),
		rec("f", 2019, "J2"),
		rec("g", 2021, "J1"),
	}

	got := PapersPerYear(ds)
	assert.Equal(t, []types.YearCount{
		{Year: 2019, Count: 2},
		{Year: 2020, Count: 1},
		{Year: 2021, Count: 3},
	}, got)

	withYear := 0
	for _, r := range ds {
		if r.HasYear() {
			withYear++
		}
	}
	sum := 0
	for i, yc := range got {
		sum += yc.Count
		if i > 0 {
			assert.Less(t, got[i-1].Year, yc.Year, "years must be strictly ascending")
		}
	}
	assert.Equal(t, withYear, sum)
}

func TestPapersPerYearEmpty(t *testing.T) {
	assert.Empty(t, PapersPerYear(nil))
	assert.Empty(t, PapersPerYear(types.Dataset{rec("no year", 0, "J")}))
}

func TestTopJournals(t *testing.T) {
	ds := types.Dataset{
		rec("1", 2020, "Lancet"),
		rec("2", 2020, "Nature"),
		rec("3", 2020, ""),
		rec("4", 2020, "Nature"),
		rec("5", 2020, "Cell"),
		rec("6", 2020, ""),
		rec("7", 2020, "Nature"),
		rec("8", 2020, "Lancet"),
	}

	got := TopJournals(ds, 10)
	assert.Equal(t, []types.JournalCount{
		{Journal: "Nature", Count: 3},
		{Journal: "Lancet", Count: 2},
		{Journal: "", Count: 2},
		{Journal: "Cell", Count: 1},
	}, got)
	assert.Equal(t, types.UnknownJournalLabel, got[2].Label())
}

func TestTopJournalsTieBreakFirstEncountered(t *testing.T) {
	ds := types.Dataset{
		rec("1", 0, "Zeta"),
		rec("2", 0, "Alpha"),
		rec("3", 0, "Mu"),
	}
	got := TopJournals(ds, 10)
	require.Len(t, got, 3)
	assert.Equal(t, "Zeta", got[0].Journal)
	assert.Equal(t, "Alpha", got[1].Journal)
	assert.Equal(t, "Mu", got[2].Journal)
}

func TestTopJournalsTruncates(t *testing.T) {
	var ds types.Dataset
	counts := make(map[string]int)
	for j := 0; j < 15; j++ {
		name := fmt.Sprintf("Journal %02d", j)
		for n := 0; n <= j; n++ {
			ds = append(ds, rec(fmt.Sprintf("%s-%d", name, n), 2020, name))
			counts[name]++
		}
	}

	tests := []struct {
		name string
		k    int
		want int
	}{
		{"default k", 0, 10},
		{"negative k", -3, 10},
		{"k of 3", 3, 3},
		{"k larger than groups", 50, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopJournals(ds, tt.k)
			require.Len(t, got, tt.want)
			assert.Equal(t, "Journal 14", got[0].Journal)
			for i, jc := range got {
				assert.Equal(t, counts[jc.Journal], jc.Count, "count for %s", jc.Journal)
				if i > 0 {
					assert.GreaterOrEqual(t, got[i-1].Count, jc.Count)
				}
			}
		})
	}
}

func TestTopJournalsEmpty(t *testing.T) {
	got := TopJournals(nil, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
