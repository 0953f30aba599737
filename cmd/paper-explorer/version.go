// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version of paper-explorer",
	Long: `Version prints the release set at build time (mage build stamps it from
git describe), the Go toolchain and target platform, and the VCS revision
when the binary was built from a checkout. --short prints the release only.`,
	Run: func(cmd *cobra.Command, args []string) {
		short, _ := cmd.Flags().GetBool("short")
		writeVersion(cmd.OutOrStdout(), version, short)
	},
}

func writeVersion(w io.Writer, release string, short bool) {
	if short {
		fmt.Fprintln(w, release)
		return
	}
	fmt.Fprintf(w, "paper-explorer %s (%s %s/%s)\n", release, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if rev := vcsRevision(); rev != "" {
		fmt.Fprintf(w, "revision %s\n", rev)
	}
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

func init() {
	versionCmd.Flags().Bool("short", false, "print the release only")
	rootCmd.AddCommand(versionCmd)
}
