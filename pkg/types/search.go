// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for paper-explorer.
// Implements: the Record and Dataset model, aggregate series (YearCount,
// JournalCount), search outcomes, and per-component configuration.
package types

import "fmt"

// SearchStatus distinguishes the three states a keyword search can end in.
type SearchStatus string

const (
	// SearchNoKeyword means no keyword was supplied, so no search ran.
	SearchNoKeyword SearchStatus = "no_keyword"

	// SearchNoMatches means a keyword was supplied but nothing matched.
	SearchNoMatches SearchStatus = "no_matches"

	// SearchFound means at least one record matched.
	SearchFound SearchStatus = "found"
)

// SearchOutcome is the result of a title keyword search together with the
// state a shell needs for its message.
type SearchOutcome struct {
	// Keyword is the keyword exactly as supplied.
	Keyword string `json:"keyword" yaml:"keyword"`

	// Status tells no-keyword, no-matches and found apart.
	Status SearchStatus `json:"status" yaml:"status"`

	// Total is the full number of matching records.
	Total int `json:"total" yaml:"total"`

	// Records holds the matching records in dataset order. Shells may
	// truncate it for display; Total is unaffected.
	Records []Record `json:"records" yaml:"records"`
}

// Message returns the user-facing line for the outcome.
func (o SearchOutcome) Message() string {
	switch o.Status {
	case SearchFound:
		return fmt.Sprintf("Found %d papers related to '%s'.", o.Total, o.Keyword)
	case SearchNoMatches:
		return fmt.Sprintf("No papers found for the keyword '%s'. Try a different term.", o.Keyword)
	default:
		return "Enter a keyword to search."
	}
}

// Limit returns a copy of the outcome whose Records holds at most n entries.
// A non-positive n leaves the records untouched.
func (o SearchOutcome) Limit(n int) SearchOutcome {
	if n > 0 && len(o.Records) > n {
		o.Records = o.Records[:n:n]
	}
	return o
}
