// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/fetch"
	"github.com/pdiddy/paper-explorer/internal/secrets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset CSV",
	Long: `Fetch downloads fetch.url to the dataset path (--data). An existing file is
kept unless --force is given. When .secrets/dataset-token exists its contents
are sent as a bearer token. Rate-limited responses (429, 503) are retried.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		secretsDir, _ := cmd.Flags().GetString("secrets-dir")
		store, err := secrets.Load(secretsDir, logger)
		if err != nil {
			return err
		}
		token, _ := store.Get(secrets.DatasetToken)

		client := &http.Client{Timeout: cfg.Fetch.Timeout}
		_, err = fetch.Download(cmd.Context(), client, cfg.Fetch, cfg.Dataset.Path, token, logger, cmd.OutOrStdout())
		return err
	},
}

func init() {
	fetchCmd.Flags().String("url", "", "dataset URL (overrides fetch.url)")
	fetchCmd.Flags().Bool("force", false, "re-download even if the file exists")
	fetchCmd.Flags().Int("max-retries", 5, "retries on HTTP 429/503")
	fetchCmd.Flags().String("secrets-dir", secrets.DefaultDir, "directory holding credential files")

	viper.BindPFlag("fetch.url", fetchCmd.Flags().Lookup("url"))
	viper.BindPFlag("fetch.force", fetchCmd.Flags().Lookup("force"))
	viper.BindPFlag("fetch.max_retries", fetchCmd.Flags().Lookup("max-retries"))

	rootCmd.AddCommand(fetchCmd)
}
