// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate computes the two chart series over a Dataset:
// papers per year and top journals by count.
package aggregate

import (
	"sort"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// DefaultTopJournals is the k used when callers pass a non-positive value.
const DefaultTopJournals = types.DefaultTopJournals

// PapersPerYear counts records per publication year and returns the counts
// sorted by year ascending. Records without a year are not counted.
func PapersPerYear(ds types.Dataset) []types.YearCount {
	counts := make(map[int]int)
	for _, r := range ds {
		if r.Year == nil {
			continue
		}
		counts[*r.Year]++
	}

	out := make([]types.YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, types.YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

// TopJournals counts records per journal, sorts by count descending, and
// returns the first k entries. Records without a journal form their own
// group. Equal counts keep the order in which the journals first appear.
func TopJournals(ds types.Dataset, k int) []types.JournalCount {
	if k <= 0 {
		k = DefaultTopJournals
	}

	index := make(map[string]int)
	var out []types.JournalCount
	for _, r := range ds {
		i, ok := index[r.Journal]
		if !ok {
			i = len(out)
			index[r.Journal] = i
			out = append(out, types.JournalCount{Journal: r.Journal})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > k {
		out = out[:k:k]
	}
	if out == nil {
		out = []types.JournalCount{}
	}
	return out
}
