// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Column names the loader requires in the dataset header.
const (
	ColumnTitle       = "title"
	ColumnAbstract    = "abstract"
	ColumnPublishTime = "publish_time"
	ColumnAuthors     = "authors"
	ColumnJournal     = "journal"
)

// RequiredColumns lists the header columns every dataset file must carry,
// in the order the loader projects them.
var RequiredColumns = []string{
	ColumnTitle,
	ColumnAbstract,
	ColumnPublishTime,
	ColumnAuthors,
	ColumnJournal,
}

// RawRecord is one dataset row projected to the five relevant columns,
// before any cleaning. An empty string means the cell was missing.
type RawRecord struct {
	Title       string `json:"title" yaml:"title"`
	Abstract    string `json:"abstract" yaml:"abstract"`
	PublishTime string `json:"publish_time" yaml:"publish_time"`
	Authors     string `json:"authors" yaml:"authors"`
	Journal     string `json:"journal" yaml:"journal"`
}

// Record holds the cleaned metadata for one paper.
type Record struct {
	// Title is the paper title. Never empty in a cleaned Dataset.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract. Never empty in a cleaned Dataset.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PublishTime is the parsed publication date, nil when the source value
	// was missing or unparseable.
	PublishTime *time.Time `json:"publish_time" yaml:"publish_time"`

	// Year is the year component of PublishTime; nil iff PublishTime is nil.
	Year *int `json:"year" yaml:"year"`

	// Authors is the raw author list as it appears in the source file.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Journal is the publishing journal; empty when unknown.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// HasYear reports whether the record carries a publication year.
func (r Record) HasYear() bool {
	return r.Year != nil
}

// Dataset is the ordered, cleaned collection of records for one session.
// It is built once and treated as read-only by every consumer.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d)
}

// Head returns the first n records, or all of them when n exceeds the length.
func (d Dataset) Head(n int) Dataset {
	if n < 0 {
		n = 0
	}
	if n > len(d) {
		n = len(d)
	}
	return d[:n:n]
}

// YearCount is one point of the papers-per-year series.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// JournalCount is one bar of the top-journals chart. An empty Journal is
// the group of records with no journal.
type JournalCount struct {
	Journal string `json:"journal" yaml:"journal"`
	Count   int    `json:"count" yaml:"count"`
}

// UnknownJournalLabel is the display label for the missing-journal group.
const UnknownJournalLabel = "(unknown)"

// Label returns the journal name for display.
func (j JournalCount) Label() string {
	if j.Journal == "" {
		return UnknownJournalLabel
	}
	return j.Journal
}
