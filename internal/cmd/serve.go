package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/depscope/depscope/internal/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server over stdio.

This lets AI agents run dependency analysis through MCP tools instead of
spawning CLI commands. Every tool call runs a fresh analysis, so results
always reflect the current state of the tree.

Available Tools:
  depscope_analyze   Full dependency report for a directory
  depscope_rank      Files ranked by importance
  depscope_cycles    Circular dependency detection
  depscope_groups    Functional groups with scores

Examples:
  depscope serve                             # All tools, no timeout
  depscope serve --tools analyze,cycles      # Expose specific tools only
  depscope serve --timeout 30m               # Auto-stop after inactivity
  depscope serve --list-tools                # Show available tools`,
	RunE: runServe,
}

var (
	serveRoot      string
	serveTools     string
	serveTimeout   string
	serveListTools bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveRoot, "root", ".", "Default analysis root for tool calls")
	serveCmd.Flags().StringVar(&serveTools, "tools", "", "Comma-separated list of tools to expose (default: all)")
	serveCmd.Flags().StringVar(&serveTimeout, "timeout", "0", "Inactivity timeout (0 for no timeout)")
	serveCmd.Flags().BoolVar(&serveListTools, "list-tools", false, "List available tools")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveListTools {
		fmt.Println("Available MCP tools:")
		fmt.Println()
		fmt.Println("  depscope_analyze   Full dependency report for a directory")
		fmt.Println("  depscope_rank      Files ranked by importance")
		fmt.Println("  depscope_cycles    Circular dependency detection")
		fmt.Println("  depscope_groups    Functional groups with scores")
		return nil
	}

	timeout, err := parseDuration(serveTimeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	var tools []string
	if serveTools != "" {
		for _, t := range strings.Split(serveTools, ",") {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			// Allow shorthand (cycles -> depscope_cycles)
			if !strings.HasPrefix(t, "depscope_") {
				t = "depscope_" + t
			}
			tools = append(tools, t)
		}
	}

	server, err := mcp.New(mcp.Config{
		Root:    serveRoot,
		Tools:   tools,
		Timeout: timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintf(os.Stderr, "\ndepscope serve: shutting down\n")
		os.Exit(0)
	}()

	// Startup info goes to stderr; stdout carries the MCP protocol.
	fmt.Fprintf(os.Stderr, "depscope serve: starting MCP server\n")
	fmt.Fprintf(os.Stderr, "depscope serve: tools: %v\n", server.ListTools())
	if timeout > 0 {
		fmt.Fprintf(os.Stderr, "depscope serve: timeout: %v\n", timeout)
	}

	return server.ServeStdio()
}

func parseDuration(s string) (time.Duration, error) {
	if s == "0" || s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
