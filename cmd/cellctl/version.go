package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		module, goVersion := buildModule()
		fmt.Printf("cellctl %s\n", version)
		fmt.Printf("  module: %s\n", module)
		fmt.Printf("  go: %s\n", goVersion)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildModule reports the main module path and the toolchain that built the
// binary, or "unknown" when the binary carries no build info.
func buildModule() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", "unknown"
	}
	path := info.Main.Path
	if path == "" {
		path = info.Path
	}
	return path, info.GoVersion
}
