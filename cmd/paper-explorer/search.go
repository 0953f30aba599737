// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search paper titles for a keyword",
	Long: `Search lists papers whose title contains the keyword, ignoring case. The
keyword is matched literally and used exactly as given. Results are shown up
to --limit rows; the message always reports the full number of matches.

Use --save to keep the outcome as a YAML query file.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword, _ := cmd.Flags().GetString("keyword")
	if keyword == "" && len(args) > 0 {
		keyword = strings.Join(args, " ")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.Dataset.ResultRows
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")

	exp := openExplorer(cmd.ErrOrStderr())
	out := exp.Search(keyword)
	logger.Debug().Str("keyword", keyword).Str("status", string(out.Status)).Int("total", out.Total).Msg("search")

	if savePath != "" {
		if err := search.WriteQueryFile(savePath, exp.Source(), out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved search to %s\n", savePath)
	}

	if jsonOutput {
		return search.FormatJSON(out, limit, cmd.OutOrStdout())
	}
	search.FormatTable(out, limit, cmd.OutOrStdout())
	return nil
}

func init() {
	searchCmd.Flags().String("keyword", "", "keyword to search for (alternative to the positional argument)")
	searchCmd.Flags().Int("limit", 0, "maximum rows to show (0 = dataset.result_rows, default 20)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "write the search outcome to this YAML file")

	rootCmd.AddCommand(searchCmd)
}
