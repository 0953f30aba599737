// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

const envPrefix = "PAPER_EXPLORER"

// setDefaults registers the default for every configuration key. Keys must
// be known to viper for environment overrides to reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", types.DefaultDatasetPath)
	v.SetDefault("dataset.sample_rows", types.DefaultSampleRows)
	v.SetDefault("dataset.top_journals", types.DefaultTopJournals)
	v.SetDefault("dataset.result_rows", types.DefaultResultRows)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.metrics_path", "/metrics")

	v.SetDefault("fetch.url", "")
	v.SetDefault("fetch.timeout", 60*time.Second)
	v.SetDefault("fetch.user_agent", "paper-explorer/"+version)
	v.SetDefault("fetch.max_retries", 5)
	v.SetDefault("fetch.force", false)

	v.SetDefault("export.dir", "output")

	v.SetDefault("chart.format", string(types.ChartSVG))
	v.SetDefault("chart.width", 1000)
	v.SetDefault("chart.height", 600)
}

// bindEnv maps PAPER_EXPLORER_DATASET_PATH style variables onto keys.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// decodeConfig unmarshals v into a Config and applies the fallbacks for
// non-positive values.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var c types.Config
	if err := v.Unmarshal(&c); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	c.Dataset = c.Dataset.WithDefaults()
	if c.Fetch.MaxRetries <= 0 {
		c.Fetch.MaxRetries = 5
	}
	if c.Fetch.Timeout <= 0 {
		c.Fetch.Timeout = 60 * time.Second
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "output"
	}
	if c.Chart.Format == "" {
		c.Chart.Format = types.ChartSVG
	}
	return c, nil
}
