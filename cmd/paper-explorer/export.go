// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session as YAML, JSON or SQLite",
	Long: `Export writes derived artifacts of the cleaned dataset into export.dir:
report.yaml or report.json (total, papers per year, top journals, raw
sample), or papers.db, a SQLite copy of every cleaned record. The SQLite copy is
checked against the in-memory aggregates before the command succeeds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		exp := openExplorer(cmd.ErrOrStderr())
		return runExport(cmd.Context(), cmd.OutOrStdout(), exp, cfg.Export.Dir, format)
	},
}

func runExport(ctx context.Context, w io.Writer, exp *explorer.Explorer, dir, format string) error {
	switch format {
	case "yaml", "":
		path, err := snapshot.ExportYAML(dir, snapshot.NewReport(exp))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Exported to %s\n", path)
	case "json":
		path, err := snapshot.ExportJSON(dir, snapshot.NewReport(exp))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Exported to %s\n", path)
	case "sqlite":
		store, err := snapshot.NewStore(dir)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Write(ctx, exp.Dataset()); err != nil {
			return err
		}
		if err := store.Verify(ctx, exp, exp.Config().TopJournals); err != nil {
			return err
		}
		fmt.Fprintf(w, "Exported %d records to %s\n", exp.Total(), store.Path())
	default:
		return fmt.Errorf("unsupported format %q: use yaml, json or sqlite", format)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json or sqlite")
	exportCmd.Flags().String("out-dir", "output", "directory to write into")

	viper.BindPFlag("export.dir", exportCmd.Flags().Lookup("out-dir"))

	rootCmd.AddCommand(exportCmd)
}
