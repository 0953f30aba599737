// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search filters a Dataset by a title keyword and formats the
// matches for display.
// Implements: Search Filter (Filter, Search), result tables and saved
// search files.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Filter returns every record whose title contains keyword, ignoring case.
// The keyword is matched literally. An empty keyword returns an empty
// result, and a record with an empty title never matches. Dataset order is
// preserved.
func Filter(ds types.Dataset, keyword string) []types.Record {
	out := []types.Record{}
	if keyword == "" {
		return out
	}

	needle := strings.ToLower(keyword)
	for _, r := range ds {
		if r.Title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Search runs Filter and classifies the outcome so that callers can tell
// "no keyword" apart from "no matches".
func Search(ds types.Dataset, keyword string) types.SearchOutcome {
	if keyword == "" {
		return types.SearchOutcome{
			Status:  types.SearchNoKeyword,
			Records: []types.Record{},
		}
	}

	matches := Filter(ds, keyword)
	status := types.SearchFound
	if len(matches) == 0 {
		status = types.SearchNoMatches
	}
	return types.SearchOutcome{
		Keyword: keyword,
		Status:  status,
		Total:   len(matches),
		Records: matches,
	}
}

// FormatTable writes the outcome message followed by up to limit matching
// records as a table of title, authors, year and journal.
func FormatTable(out types.SearchOutcome, limit int, w io.Writer) {
	fmt.Fprintln(w, out.Message())
	if out.Status != types.SearchFound {
		return
	}

	shown := out.Limit(limit)
	fmt.Fprintln(w)
	WriteRecords(w, shown.Records)

	if len(shown.Records) < out.Total {
		fmt.Fprintf(w, "\nshowing %d of %d results\n", len(shown.Records), out.Total)
	}
}

// WriteRecords writes records as a fixed-width table.
func WriteRecords(w io.Writer, records []types.Record) {
	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %s\n",
		"#", "Title", "Authors", "Year", "Journal")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range records {
		year := ""
		if r.Year != nil {
			year = fmt.Sprintf("%d", *r.Year)
		}
		journal := r.Journal
		if journal == "" {
			journal = types.UnknownJournalLabel
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4s  %s\n",
			i+1, Truncate(r.Title, 60), Truncate(r.Authors, 24), year, Truncate(journal, 30))
	}
}

// FormatJSON writes the outcome as indented JSON, with at most limit
// records.
func FormatJSON(out types.SearchOutcome, limit int, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Limit(limit))
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
