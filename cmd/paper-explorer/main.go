// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-explorer CLI.
// Implements: dataset loading and cleaning, aggregate charts, title keyword
// search, and the terminal, HTTP and export shells over one session.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/observability"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the merged configuration, decoded before every command runs.
	cfg types.Config

	logger = zerolog.Nop()
)

// rootCmd is the base command for the paper-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-explorer",
	Short: "Explore the CORD-19 paper metadata file",
	Long: `paper-explorer loads the CORD-19 metadata.csv file, drops papers without a
title or abstract, and lets you browse the result: a raw sample, papers per
year, the most frequent journals, and a case-insensitive title search.

The same session can be browsed in the terminal (view), served over HTTP
(serve), or exported as YAML, JSON or SQLite (export).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := decodeConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		logger = observability.NewLogger(cfg.Logging)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-explorer.yaml or ~/.config/paper-explorer/paper-explorer.yaml)")
	rootCmd.PersistentFlags().String("data", types.DefaultDatasetPath, "path to the metadata CSV file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	viper.BindPFlag("dataset.path", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-explorer"))
		}
	}

	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

// openExplorer loads the configured dataset. A failed load prints the
// banner to errOut and yields an empty session.
func openExplorer(errOut io.Writer) *explorer.Explorer {
	exp := explorer.Open(cfg.Dataset, logger)
	if banner := exp.Banner(); banner != "" {
		fmt.Fprintln(errOut, banner)
	}
	return exp
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
