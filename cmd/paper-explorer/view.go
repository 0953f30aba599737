// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the dataset in an interactive terminal page",
	Long: `View opens a full-screen page with the papers-per-year and top-journal
charts, a raw-data toggle (r) and a title search box (/ to type, enter to
search). Press q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The banner is rendered inside the page.
		exp := openExplorer(io.Discard)
		_, err := tea.NewProgram(viewer.New(exp), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
