// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the paper-metadata CSV and cleans it into an
// immutable Dataset.
// Implements: Loader (Load, Read) and Cleaner (Clean, ParseDate).
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

var (
	// ErrFileNotFound reports that the dataset path does not resolve to a
	// readable file.
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrMissingColumns reports a header without one of the required columns.
	ErrMissingColumns = errors.New("dataset is missing required columns")
)

// RawDataset is the loader output: the projected rows plus the number of
// malformed lines that were dropped.
type RawDataset struct {
	Records []types.RawRecord
	Skipped int
}

// Load reads the CSV file at path. A path that is missing, unreadable, or a
// directory yields ErrFileNotFound.
func Load(path string) (RawDataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return RawDataset{}, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	if info.IsDir() {
		return RawDataset{}, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return RawDataset{}, fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}
	defer f.Close()

	raw, err := Read(f)
	if err != nil {
		return RawDataset{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return raw, nil
}

// Read parses comma-separated values with a header row and projects every
// row onto the required columns. Extra columns are discarded; short rows
// leave the missing cells empty. A line whose quoted field never closes is
// dropped and counted in Skipped; the rows after it are still read. Stray
// quotes inside unquoted fields are kept as literal text.
func Read(r io.Reader) (RawDataset, error) {
	sc := newRecordScanner(r)

	header, err := nextRecord(sc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return RawDataset{}, fmt.Errorf("%w: empty file", ErrMissingColumns)
		}
		return RawDataset{}, fmt.Errorf("reading header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return RawDataset{}, err
	}

	var out RawDataset
	for {
		rec, err := nextRecord(sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			out.Skipped = sc.Skipped()
			return out, fmt.Errorf("reading rows: %w", err)
		}

		out.Records = append(out.Records, types.RawRecord{
			Title:       cell(rec, index[types.ColumnTitle]),
			Abstract:    cell(rec, index[types.ColumnAbstract]),
			PublishTime: cell(rec, index[types.ColumnPublishTime]),
			Authors:     cell(rec, index[types.ColumnAuthors]),
			Journal:     cell(rec, index[types.ColumnJournal]),
		})
	}
	out.Skipped = sc.Skipped()
	return out, nil
}

// nextRecord parses the next non-blank logical record into its fields.
func nextRecord(sc *recordScanner) ([]string, error) {
	for {
		text, err := sc.Next()
		if err != nil {
			return nil, err
		}
		cr := csv.NewReader(strings.NewReader(text))
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
}

// columnIndex maps each required column to its position in header.
// Header names are matched after trimming whitespace and a leading BOM.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(types.RequiredColumns))
	var missing []string
	for _, col := range types.RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return index, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
