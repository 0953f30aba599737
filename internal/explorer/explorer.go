// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explorer holds one session's cleaned Dataset and answers every
// query the shells need: raw sample, aggregates and keyword search.
//
// The Dataset is built once in Open and never mutated, so an Explorer is
// safe for concurrent use without locking.
package explorer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-explorer/internal/aggregate"
	"github.com/pdiddy/paper-explorer/internal/dataset"
	"github.com/pdiddy/paper-explorer/internal/search"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Explorer is a read-only view over one loaded Dataset.
type Explorer struct {
	cfg     types.DatasetConfig
	data    types.Dataset
	loadErr error
}

// Open loads and cleans the dataset named by cfg.Path. It never fails: when
// loading does, the error is logged and kept for LoadErr, and the session
// continues with an empty Dataset.
func Open(cfg types.DatasetConfig, log zerolog.Logger) *Explorer {
	cfg = cfg.WithDefaults()

	raw, err := dataset.Load(cfg.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Path).Msg("dataset unavailable, continuing with empty dataset")
		return &Explorer{cfg: cfg, data: types.Dataset{}, loadErr: err}
	}

	data := dataset.Clean(raw.Records)

	undated := 0
	for _, r := range data {
		if !r.HasYear() {
			undated++
		}
	}
	log.Info().
		Str("path", cfg.Path).
		Int("rows_read", len(raw.Records)).
		Int("rows_malformed", raw.Skipped).
		Int("rows_dropped", len(raw.Records)-len(data)).
		Int("rows_undated", undated).
		Int("rows", len(data)).
		Msg("dataset loaded")

	return &Explorer{cfg: cfg, data: data}
}

// New wraps an already cleaned Dataset.
func New(cfg types.DatasetConfig, data types.Dataset) *Explorer {
	if data == nil {
		data = types.Dataset{}
	}
	return &Explorer{cfg: cfg.WithDefaults(), data: data}
}

// Config returns the effective dataset configuration.
func (e *Explorer) Config() types.DatasetConfig {
	return e.cfg
}

// Source returns the dataset path.
func (e *Explorer) Source() string {
	return e.cfg.Path
}

// LoadErr returns the error that forced the empty-dataset fallback, or nil.
func (e *Explorer) LoadErr() error {
	return e.loadErr
}

// Banner returns the user-facing error line for a failed load, or "".
func (e *Explorer) Banner() string {
	switch {
	case e.loadErr == nil:
		return ""
	case errors.Is(e.loadErr, dataset.ErrFileNotFound):
		return fmt.Sprintf("Error: '%s' not found. Please ensure the file is in the same directory.", e.cfg.Path)
	case errors.Is(e.loadErr, dataset.ErrMissingColumns):
		return fmt.Sprintf("Error: '%s' is not a paper metadata file: %v", e.cfg.Path, e.loadErr)
	default:
		return fmt.Sprintf("Error: could not load '%s': %v", e.cfg.Path, e.loadErr)
	}
}

// Dataset returns the cleaned records. Callers must not modify it.
func (e *Explorer) Dataset() types.Dataset {
	return e.data
}

// Total returns the number of cleaned records.
func (e *Explorer) Total() int {
	return len(e.data)
}

// Empty reports whether there is nothing to show.
func (e *Explorer) Empty() bool {
	return len(e.data) == 0
}

// Sample returns the first n records; n <= 0 uses the configured sample size.
func (e *Explorer) Sample(n int) types.Dataset {
	if n <= 0 {
		n = e.cfg.SampleRows
	}
	return e.data.Head(n)
}

// PapersPerYear returns the per-year series, ascending by year.
func (e *Explorer) PapersPerYear() []types.YearCount {
	return aggregate.PapersPerYear(e.data)
}

// TopJournals returns the k most frequent journals; k <= 0 uses the
// configured default.
func (e *Explorer) TopJournals(k int) []types.JournalCount {
	if k <= 0 {
		k = e.cfg.TopJournals
	}
	return aggregate.TopJournals(e.data, k)
}

// Search runs a title keyword search.
func (e *Explorer) Search(keyword string) types.SearchOutcome {
	return search.Search(e.data, keyword)
}
