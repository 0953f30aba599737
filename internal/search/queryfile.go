// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// QueryFile is the on-disk representation of a keyword search and its
// matches. A saved search can be reopened without reloading the dataset.
type QueryFile struct {
	Keyword string         `yaml:"keyword"`
	Source  string         `yaml:"source,omitempty"`
	Results []types.Record `yaml:"results"`
	Summary QuerySummary   `yaml:"summary"`
}

// QuerySummary stores the outcome state and a timestamp.
type QuerySummary struct {
	Status    types.SearchStatus `yaml:"status"`
	Total     int                `yaml:"total"`
	Timestamp time.Time          `yaml:"timestamp"`
}

// WriteQueryFile saves a search outcome to a YAML file. source names the
// dataset the search ran against.
func WriteQueryFile(path, source string, out types.SearchOutcome) error {
	qf := QueryFile{
		Keyword: out.Keyword,
		Source:  source,
		Results: out.Records,
		Summary: QuerySummary{
			Status:    out.Status,
			Total:     out.Total,
			Timestamp: time.Now().UTC(),
		},
	}
	if qf.Results == nil {
		qf.Results = []types.Record{}
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// Outcome converts the stored file back into a SearchOutcome.
func (q QueryFile) Outcome() types.SearchOutcome {
	records := q.Results
	if records == nil {
		records = []types.Record{}
	}
	return types.SearchOutcome{
		Keyword: q.Keyword,
		Status:  q.Summary.Status,
		Total:   q.Summary.Total,
		Records: records,
	}
}
