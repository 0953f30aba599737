// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the dataset CSV to a local path.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-explorer/internal/httputil"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// ErrNoURL is returned when no dataset URL is configured.
var ErrNoURL = errors.New("no dataset URL configured: set fetch.url or pass --url")

// Result describes one Download call.
type Result struct {
	Path    string `json:"path" yaml:"path"`
	Bytes   int64  `json:"bytes" yaml:"bytes"`
	Skipped bool   `json:"skipped" yaml:"skipped"`
}

// Download fetches cfg.URL to dest. An existing dest is kept unless
// cfg.Force is set. The body is written to a temporary file in dest's
// directory and renamed into place, so dest is never left half written.
// When token is non-empty it is sent as a bearer token.
func Download(ctx context.Context, client *http.Client, cfg types.FetchConfig, dest, token string, log zerolog.Logger, w io.Writer) (Result, error) {
	if cfg.URL == "" {
		return Result{}, ErrNoURL
	}

	if !cfg.Force {
		if info, err := os.Stat(dest); err == nil && !info.IsDir() {
			fmt.Fprintf(w, "skipped: %s already exists (use --force to re-download)\n", dest)
			return Result{Path: dest, Bytes: info.Size(), Skipped: true}, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/csv, */*")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Info().Str("url", cfg.URL).Str("dest", dest).Msg("downloading dataset")

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, log)
	if err != nil {
		return Result{}, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, cfg.URL)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".fetch-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("writing file: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("renaming temp file: %w", err)
	}

	fmt.Fprintf(w, "downloaded: %s (%d bytes)\n", dest, n)
	return Result{Path: dest, Bytes: n}, nil
}
