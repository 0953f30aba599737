// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/search"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Show the first rows of the cleaned dataset",
	Long: `Raw prints the first --rows cleaned papers (title, authors, year, journal)
followed by the total number of papers kept after cleaning.`,
	RunE: runRaw,
}

type rawOutput struct {
	Total   int            `json:"total"`
	Records []types.Record `json:"records"`
}

func runRaw(cmd *cobra.Command, args []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	exp := openExplorer(cmd.ErrOrStderr())
	return writeRaw(cmd.OutOrStdout(), exp, rows, jsonOutput)
}

func writeRaw(w io.Writer, exp *explorer.Explorer, rows int, jsonOutput bool) error {
	sample := exp.Sample(rows)
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rawOutput{Total: exp.Total(), Records: sample})
	}

	search.WriteRecords(w, sample)
	fmt.Fprintf(w, "\nTotal papers in dataset: %d\n", exp.Total())
	return nil
}

func init() {
	rawCmd.Flags().Int("rows", 0, "number of rows to show (0 = dataset.sample_rows, default 20)")
	rawCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(rawCmd)
}
