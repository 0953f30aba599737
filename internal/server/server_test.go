// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

func intPtr(v int) *int { return &v }

func testDataset() types.Dataset {
	ds := types.Dataset{
		{Title: "mRNA Vaccine Study", Abstract: "a", Year: intPtr(2021), Authors: "Smith, J.", Journal: "Vaccine"},
		{Title: "Transmission Dynamics", Abstract: "b", Authors: "Lee, K."},
	}
	for i := 0; i < 150; i++ {
		ds = append(ds, types.Record{
			Title:    fmt.Sprintf("Vaccine trial %d", i),
			Abstract: "c",
			Year:     intPtr(2018 + i%4),
			Journal:  fmt.Sprintf("J%d", i%15),
		})
	}
	return ds
}

func newTestServer(t *testing.T, exp *explorer.Explorer) (*Server, *httptest.Server) {
	t.Helper()
	reg := prometheus.NewRegistry()
	s := New(types.ServerConfig{}, types.ChartConfig{}, exp, zerolog.Nop(), reg)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, nil))

	var body map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/healthz", &body))
	assert.Equal(t, "ok", body["status"])
}

func TestDataset(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	var body datasetResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/v1/dataset", &body))
	assert.Equal(t, 152, body.Total)
	assert.Equal(t, types.DefaultDatasetPath, body.Source)
	assert.Empty(t, body.LoadError)
}

func TestDatasetLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	exp := explorer.Open(types.DatasetConfig{Path: path}, zerolog.Nop())
	s, ts := newTestServer(t, exp)

	var body datasetResponse
	getJSON(t, ts.URL+"/api/v1/dataset", &body)
	assert.Zero(t, body.Total)
	assert.NotEmpty(t, body.LoadError)
	assert.Contains(t, body.Banner, "not found")

	var papers papersResponse
	getJSON(t, ts.URL+"/api/v1/papers", &papers)
	assert.Empty(t, papers.Records)
	assert.NotNil(t, papers.Records)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.DatasetLoadFailures))
	assert.Zero(t, testutil.ToFloat64(s.metrics.DatasetRows))
}

func TestPapersLimit(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	tests := []struct {
		query string
		want  int
	}{
		{"", types.DefaultSampleRows},
		{"?limit=5", 5},
		{"?limit=0", types.DefaultSampleRows},
		{"?limit=abc", types.DefaultSampleRows},
		{"?limit=1000", maxPageRows},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body papersResponse
			getJSON(t, ts.URL+"/api/v1/papers"+tt.query, &body)
			assert.Len(t, body.Records, tt.want)
			assert.Equal(t, 152, body.Total)
		})
	}
}

func TestChartSeries(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	var years []types.YearCount
	getJSON(t, ts.URL+"/api/v1/charts/papers-per-year", &years)
	require.Len(t, years, 4)
	assert.Equal(t, 2018, years[0].Year)

	var journals []types.JournalCount
	getJSON(t, ts.URL+"/api/v1/charts/top-journals", &journals)
	assert.Len(t, journals, types.DefaultTopJournals)

	getJSON(t, ts.URL+"/api/v1/charts/top-journals?k=3", &journals)
	assert.Len(t, journals, 3)
}

func TestChartImages(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	tests := []struct {
		path        string
		wantStatus  int
		contentType string
	}{
		{"/api/v1/charts/papers-per-year.svg", http.StatusOK, "image/svg+xml"},
		{"/api/v1/charts/top-journals.png", http.StatusOK, "image/png"},
		{"/api/v1/charts/top-journals.gif", http.StatusBadRequest, "application/json"},
		{"/api/v1/charts/histogram.svg", http.StatusNotFound, "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
		})
	}
}

func TestChartImageNoData(t *testing.T) {
	_, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, nil))

	resp, err := http.Get(ts.URL + "/api/v1/charts/papers-per-year.svg")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearch(t *testing.T) {
	s, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	var found searchResponse
	getJSON(t, ts.URL+"/api/v1/search?q=vaccine", &found)
	assert.Equal(t, types.SearchFound, found.Status)
	assert.Equal(t, 151, found.Total)
	assert.Len(t, found.Records, types.DefaultResultRows)
	assert.Equal(t, "Found 151 papers related to 'vaccine'.", found.Message)

	var limited searchResponse
	getJSON(t, ts.URL+"/api/v1/search?q=vaccine&limit=3", &limited)
	assert.Len(t, limited.Records, 3)
	assert.Equal(t, 151, limited.Total)

	var none searchResponse
	getJSON(t, ts.URL+"/api/v1/search?q=xyz", &none)
	assert.Equal(t, types.SearchNoMatches, none.Status)
	assert.Empty(t, none.Records)

	var empty searchResponse
	getJSON(t, ts.URL+"/api/v1/search", &empty)
	assert.Equal(t, types.SearchNoKeyword, empty.Status)
	assert.Equal(t, "Enter a keyword to search.", empty.Message)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Searches.WithLabelValues(string(types.SearchFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Searches.WithLabelValues(string(types.SearchNoKeyword))))
}

func TestMetricsEndpoint(t *testing.T) {
	s, ts := newTestServer(t, explorer.New(types.DatasetConfig{}, testDataset()))

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 152.0, testutil.ToFloat64(s.metrics.DatasetRows))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues("/healthz", http.MethodGet, "200")))

	resp, err = http.Get(ts.URL + DefaultMetricsPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "paper_explorer_dataset_rows 152"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := New(types.ServerConfig{Addr: "127.0.0.1:0"}, types.ChartConfig{}, explorer.New(types.DatasetConfig{}, nil), zerolog.Nop(), reg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
