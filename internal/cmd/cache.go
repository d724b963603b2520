package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/cache"
	"github.com/depscope/depscope/internal/config"
)

// cacheCmd represents the cache command group
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Administer the cross-run extraction cache",
	Long: `The extraction cache stores raw references per file, keyed by
absolute path and stamped with mtime and size. A file whose stamp still
matches skips re-extraction on the next run.

The cache lives in .depscope/cache.db and is purely an optimization:
clearing it never changes analysis results.`,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache location and entry count",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached extraction results",
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func openCache() (*cache.Cache, error) {
	dir, err := config.FindConfigDir(".")
	if err != nil {
		return nil, fmt.Errorf("no .depscope directory found (run 'depscope analyze --cache' first)")
	}
	return cache.Open(dir)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	stats, err := c.GetStats()
	if err != nil {
		return err
	}
	fmt.Printf("Cache: %s\n", c.Path())
	fmt.Printf("Entries: %d\n", stats.Entries)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, err := openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Clear(); err != nil {
		return err
	}
	fmt.Println("Cache cleared")
	return nil
}
