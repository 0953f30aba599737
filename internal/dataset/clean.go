// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"strings"
	"time"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// dateLayouts are tried in order by ParseDate. Date-only layouts come first
// because the bulk of publish_time values are plain ISO dates.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01",
	"2006",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2006",
	"January 2006",
	"2006 Jan 2",
	"2006 Jan",
}

// ParseDate is a coerced parse: it returns the date, or nil when s is empty
// or matches no known layout. It never fails. A value carrying a UTC offset
// keeps it, so the calendar year is the one written in s; values without
// an offset are UTC.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Clean converts raw rows into a Dataset. It parses publish_time with
// ParseDate, derives the year from it, and drops rows whose title or
// abstract is missing. Survivors keep their relative order.
func Clean(raw []types.RawRecord) types.Dataset {
	out := make(types.Dataset, 0, len(raw))
	for _, r := range raw {
		if isMissing(r.Title) || isMissing(r.Abstract) {
			continue
		}

		rec := types.Record{
			Title:    r.Title,
			Abstract: r.Abstract,
			Authors:  r.Authors,
			Journal:  r.Journal,
		}
		if t := ParseDate(r.PublishTime); t != nil {
			year := t.Year()
			rec.PublishTime = t
			rec.Year = &year
		}
		out = append(out, rec)
	}
	return out
}

func isMissing(s string) bool {
	return strings.TrimSpace(s) == ""
}
