package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/cache"
	"github.com/depscope/depscope/internal/config"
	"github.com/depscope/depscope/internal/output"
	"github.com/depscope/depscope/internal/pipeline"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a codebase and emit the dependency report",
	Long: `Analyze traverses the given directory (or the current directory),
applies the exclusion filter, extracts references from every surviving
file, and emits the full dependency report.

The analysis:
  1. Walks the tree, honoring ignore files and built-in exclusions
  2. Classifies each file by type and collects the inventory
  3. Extracts import/include/require references per type
  4. Resolves references against the inventory and builds the graph
  5. Scores importance, finds components and cycles, groups files

Recovered problems (unreadable files, oversized files, unresolved
references) never fail the run; they are reported in the diagnostics
block of the output.

Examples:
  depscope analyze                    # Analyze current directory
  depscope analyze ./src              # Analyze a subdirectory
  depscope analyze . -o report.yaml   # Write report to a file
  depscope analyze . --format json    # JSON on stdout
  depscope analyze . --no-groups      # Skip functional grouping
  depscope analyze . --max-files 500  # Cap the inventory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeOut      string
	analyzeMaxFiles int
	analyzeMaxSize  int64
	analyzeNoGroups bool
	analyzeWorkers  int
	analyzeCache    bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write report to file instead of stdout")
	analyzeCmd.Flags().IntVar(&analyzeMaxFiles, "max-files", 0, "Maximum files to inventory (default from config)")
	analyzeCmd.Flags().Int64Var(&analyzeMaxSize, "max-size", 0, "Maximum file size in bytes to content-scan (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoGroups, "no-groups", false, "Skip the functional grouping stage")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Extraction worker count (default: one per CPU)")
	analyzeCmd.Flags().BoolVar(&analyzeCache, "cache", false, "Use the cross-run extraction cache")
}

// runAnalyze implements the analyze command logic
func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	format := output.Format(cfg.Output.DefaultFormat)
	if outputFormat != "" {
		format, err = output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
	}

	opts := pipeline.Options{
		Root:            root,
		MaxFiles:        cfg.Scan.MaxFiles,
		MaxFileSize:     cfg.Scan.MaxFileSizeBytes,
		Groups:          cfg.Groups.Enabled && !analyzeNoGroups,
		Workers:         cfg.Scan.Workers,
		IgnoreFileNames: cfg.Scan.IgnoreFiles,
	}
	if analyzeMaxFiles > 0 {
		opts.MaxFiles = analyzeMaxFiles
	}
	if analyzeMaxSize > 0 {
		opts.MaxFileSize = analyzeMaxSize
	}
	if analyzeWorkers > 0 {
		opts.Workers = analyzeWorkers
	}

	if analyzeCache || cfg.Cache.Enabled {
		cacheDir, err := config.EnsureConfigDir(root)
		if err != nil {
			return fmt.Errorf("preparing cache: %w", err)
		}
		c, err := cache.Open(cacheDir)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer c.Close()
		opts.Cache = c
	}

	res, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "analyzed %d files, %d edges, %d components, %d cycles\n",
			res.Report.Summary.TotalNodes, res.Report.Summary.TotalEdges,
			len(res.Report.Components), len(res.Report.Cycles))
	}

	rendered, err := res.Report.Render(format)
	if err != nil {
		return err
	}

	if analyzeOut == "" {
		_, err = os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(analyzeOut, rendered, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "report written to %s\n", analyzeOut)
	}
	return nil
}

// loadConfig loads configuration for the given root, honoring the global
// --config override.
func loadConfig(root string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return nil, err
		}
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}
