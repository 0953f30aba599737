// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Defaults shared by every shell.
const (
	DefaultDatasetPath = "metadata.csv"
	DefaultSampleRows  = 20
	DefaultTopJournals = 10
	DefaultResultRows  = 20
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// DatasetConfig locates the dataset file and sizes the views over it.
type DatasetConfig struct {
	// Path is the CSV file to load (default "metadata.csv").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// SampleRows is the number of rows in the raw-data preview (default 20).
	SampleRows int `json:"sample_rows" yaml:"sample_rows" mapstructure:"sample_rows"`

	// TopJournals is k for the top-journals aggregation (default 10).
	TopJournals int `json:"top_journals" yaml:"top_journals" mapstructure:"top_journals"`

	// ResultRows caps the search rows a shell displays (default 20).
	ResultRows int `json:"result_rows" yaml:"result_rows" mapstructure:"result_rows"`
}

// WithDefaults returns a copy with every unset or non-positive field
// replaced by its default.
func (c DatasetConfig) WithDefaults() DatasetConfig {
	if c.Path == "" {
		c.Path = DefaultDatasetPath
	}
	if c.SampleRows <= 0 {
		c.SampleRows = DefaultSampleRows
	}
	if c.TopJournals <= 0 {
		c.TopJournals = DefaultTopJournals
	}
	if c.ResultRows <= 0 {
		c.ResultRows = DefaultResultRows
	}
	return c
}

// LoggingConfig selects the zerolog level and writer.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// ServerConfig holds settings for the HTTP shell.
type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// MetricsPath is where Prometheus metrics are exposed (default "/metrics").
	MetricsPath string `json:"metrics_path" yaml:"metrics_path" mapstructure:"metrics_path"`
}

// FetchConfig holds settings for downloading the dataset file.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the location of the dataset CSV.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// MaxRetries bounds retries on rate limiting (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`

	// Force re-downloads even when the destination already exists.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// ChartFormat selects the image encoding for rendered charts.
type ChartFormat string

const (
	ChartSVG ChartFormat = "svg"
	ChartPNG ChartFormat = "png"
)

// ChartConfig holds settings for chart rendering.
type ChartConfig struct {
	Format ChartFormat `json:"format" yaml:"format" mapstructure:"format"`
	Width  int         `json:"width" yaml:"width" mapstructure:"width"`
	Height int         `json:"height" yaml:"height" mapstructure:"height"`
}

// ExportConfig holds settings for snapshot exports.
type ExportConfig struct {
	// Dir receives report.yaml, report.json, papers.db and chart images.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// Config groups every component's configuration.
type Config struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
	Server  ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Chart   ChartConfig   `json:"chart" yaml:"chart" mapstructure:"chart"`
	Export  ExportConfig  `json:"export" yaml:"export" mapstructure:"export"`
}
