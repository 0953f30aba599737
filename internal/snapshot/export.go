// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Report is the exported summary of one session.
type Report struct {
	GeneratedAt   time.Time            `json:"generated_at" yaml:"generated_at"`
	Source        string               `json:"source" yaml:"source"`
	LoadError     string               `json:"load_error,omitempty" yaml:"load_error,omitempty"`
	Total         int                  `json:"total" yaml:"total"`
	PapersPerYear []types.YearCount    `json:"papers_per_year" yaml:"papers_per_year"`
	TopJournals   []types.JournalCount `json:"top_journals" yaml:"top_journals"`
	Sample        []types.Record       `json:"sample" yaml:"sample"`
}

// Source is what a Report is built from.
type Source interface {
	Source() string
	LoadErr() error
	Total() int
	Sample(n int) types.Dataset
	PapersPerYear() []types.YearCount
	TopJournals(k int) []types.JournalCount
}

// NewReport collects the aggregates of src.
func NewReport(src Source) Report {
	r := Report{
		GeneratedAt:   time.Now().UTC(),
		Source:        src.Source(),
		Total:         src.Total(),
		PapersPerYear: src.PapersPerYear(),
		TopJournals:   src.TopJournals(0),
		Sample:        src.Sample(0),
	}
	if err := src.LoadErr(); err != nil {
		r.LoadError = err.Error()
	}
	return r
}

// ExportYAML writes the report to dir/report.yaml and returns the path.
func ExportYAML(dir string, r Report) (string, error) {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return writeReport(dir, "report.yaml", data)
}

// ExportJSON writes the report to dir/report.json and returns the path.
func ExportJSON(dir string, r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return writeReport(dir, "report.json", data)
}

// ReadYAML loads a report written by ExportYAML.
func ReadYAML(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}

func writeReport(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
