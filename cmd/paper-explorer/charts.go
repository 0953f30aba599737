// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/chart"
	"github.com/pdiddy/paper-explorer/internal/explorer"
	"github.com/pdiddy/paper-explorer/internal/search"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Show papers per year and the top journals",
	Long: `Charts prints the papers-per-year series and the k most frequent journals
as tables. With --out-dir it also renders both charts as SVG or PNG images.`,
	RunE: runCharts,
}

func runCharts(cmd *cobra.Command, args []string) error {
	top, _ := cmd.Flags().GetInt("top")
	outDir, _ := cmd.Flags().GetString("out-dir")

	exp := openExplorer(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()
	writeChartTables(out, exp, top)

	if outDir == "" {
		return nil
	}
	paths, err := renderCharts(outDir, exp, cfg.Chart)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintf(out, "wrote %s\n", p)
	}
	return nil
}

func writeChartTables(w io.Writer, exp *explorer.Explorer, top int) {
	years := exp.PapersPerYear()
	fmt.Fprintln(w, "Publications per Year")
	fmt.Fprintf(w, "%-6s  %s\n", "Year", "Papers")
	fmt.Fprintln(w, strings.Repeat("-", 20))
	for _, yc := range years {
		fmt.Fprintf(w, "%-6d  %d\n", yc.Year, yc.Count)
	}
	if len(years) == 0 {
		fmt.Fprintln(w, "(no dated papers)")
	}

	journals := exp.TopJournals(top)
	fmt.Fprintf(w, "\nTop %d Journals\n", len(journals))
	fmt.Fprintf(w, "%-50s  %s\n", "Journal", "Papers")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, jc := range journals {
		fmt.Fprintf(w, "%-50s  %d\n", search.Truncate(jc.Label(), 50), jc.Count)
	}
}

// renderCharts writes both chart images into dir. A chart with no data is
// skipped rather than failing the command.
func renderCharts(dir string, exp *explorer.Explorer, cc types.ChartConfig) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}

	charts := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"papers-per-year", func(w io.Writer) error { return chart.RenderPapersPerYear(w, exp.PapersPerYear(), cc) }},
		{"top-journals", func(w io.Writer) error { return chart.RenderTopJournals(w, exp.TopJournals(0), cc) }},
	}

	var paths []string
	for _, c := range charts {
		var buf bytes.Buffer
		if err := c.render(&buf); err != nil {
			if errors.Is(err, chart.ErrNoData) {
				logger.Warn().Str("chart", c.name).Msg("no data, chart skipped")
				continue
			}
			return paths, err
		}
		path := filepath.Join(dir, c.name+"."+chart.Extension(cc.Format))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func init() {
	chartsCmd.Flags().Int("top", 0, "number of journals to list (0 = dataset.top_journals, default 10)")
	chartsCmd.Flags().String("out-dir", "", "directory to render chart images into")
	chartsCmd.Flags().String("format", "svg", "image format: svg or png")

	viper.BindPFlag("chart.format", chartsCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(chartsCmd)
}
