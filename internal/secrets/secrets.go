// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials from a directory of plain-text files.
// The filename is the key and the trimmed file contents are the value.
//
// Known keys: dataset-token (bearer token sent when fetching the dataset).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultDir is where secrets are looked up when no directory is configured.
const DefaultDir = ".secrets"

// DatasetToken is the key of the bearer token used by fetch.
const DatasetToken = "dataset-token"

// Store holds the secrets loaded from one directory.
type Store struct {
	dir    string
	values map[string]string
}

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty Store. Unreadable files are logged and skipped.
func Load(dir string, log zerolog.Logger) (*Store, error) {
	s := &Store{dir: dir, values: map[string]string{}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			s.values[name] = value
		}
	}
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns how many secrets were loaded.
func (s *Store) Len() int {
	return len(s.values)
}

// Dir returns the directory the Store was loaded from.
func (s *Store) Dir() string {
	return s.dir
}
