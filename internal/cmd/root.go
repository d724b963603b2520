// Package cmd contains all CLI commands for depscope.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of depscope
	Version = "0.1.0"

	// Global flags
	verbose      bool
	quiet        bool
	configPath   string
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "depscope",
	Short: "Dependency graph and functional grouping engine",
	Long: `depscope scans a codebase, extracts file-to-file references with
language-aware heuristics, and builds a weighted dependency graph.

From the graph it derives:
  - Importance scores (degree centrality) per file
  - Connected components and circular dependencies
  - Functional groups by directory and by file type
  - A stable YAML/JSON report with run diagnostics

Exclusion runs before anything else: gitignore-style rule files, built-in
binary/vendor/minified tables, and a presentation-only markup rule keep
non-code artifacts out of the graph.

Examples:
  depscope analyze .                  # Analyze current directory
  depscope analyze ./src -o deps.yaml # Write report to a file
  depscope analyze . --format json    # JSON report on stdout
  depscope serve                      # Start MCP server for agents
  depscope cache status               # Inspect the extraction cache

See 'depscope <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .depscope/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (yaml|json)")
}
