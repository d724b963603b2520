// Package mcp provides an MCP (Model Context Protocol) server for depscope.
// This allows AI agents to run dependency analysis through MCP tools instead
// of CLI commands.
package mcp

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/depscope/depscope/internal/output"
	"github.com/depscope/depscope/internal/pipeline"
)

// Server wraps the MCP server with depscope-specific functionality. Each
// tool call runs a fresh pipeline over the requested path; the server keeps
// no analysis state between calls.
type Server struct {
	mcpServer    *server.MCPServer
	root         string
	tools        map[string]bool
	lastActivity time.Time
	timeout      time.Duration
	mu           sync.RWMutex
}

// Config holds server configuration
type Config struct {
	Root    string        // Default analysis root (empty = current directory)
	Tools   []string      // Which tools to expose (empty = all)
	Timeout time.Duration // Inactivity timeout (0 = no timeout)
}

// AllTools lists all available tools
var AllTools = []string{"depscope_analyze", "depscope_rank", "depscope_cycles", "depscope_groups"}

// New creates a new MCP server for depscope
func New(cfg Config) (*Server, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	mcpServer := server.NewMCPServer(
		"depscope",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer:    mcpServer,
		root:         root,
		tools:        make(map[string]bool),
		lastActivity: time.Now(),
		timeout:      cfg.Timeout,
	}

	toolsToRegister := cfg.Tools
	if len(toolsToRegister) == 0 {
		toolsToRegister = AllTools
	}
	for _, toolName := range toolsToRegister {
		if err := s.registerTool(toolName); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", toolName, err)
		}
		s.tools[toolName] = true
	}

	return s, nil
}

// registerTool registers a single tool with the MCP server
func (s *Server) registerTool(name string) error {
	switch name {
	case "depscope_analyze":
		s.registerAnalyzeTool()
	case "depscope_rank":
		s.registerRankTool()
	case "depscope_cycles":
		s.registerCyclesTool()
	case "depscope_groups":
		s.registerGroupsTool()
	default:
		return fmt.Errorf("unknown tool: %s", name)
	}
	return nil
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	if s.timeout > 0 {
		go s.timeoutChecker()
	}
	return server.ServeStdio(s.mcpServer)
}

// timeoutChecker monitors for inactivity and exits if timeout exceeded
func (s *Server) timeoutChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		elapsed := time.Since(s.lastActivity)
		s.mu.RUnlock()

		if elapsed > s.timeout {
			fmt.Fprintf(os.Stderr, "depscope serve: timeout after %v of inactivity\n", s.timeout)
			os.Exit(0)
		}
	}
}

// updateActivity updates the last activity timestamp
func (s *Server) updateActivity() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// ListTools returns the list of registered tools
func (s *Server) ListTools() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tools := make([]string, 0, len(s.tools))
	for t := range s.tools {
		tools = append(tools, t)
	}
	return tools
}

// analyze runs one full pipeline over the given path (falling back to the
// server's default root) and returns the report.
func (s *Server) analyze(ctx context.Context, path string, withGroups bool) (*output.Report, error) {
	if path == "" {
		path = s.root
	}
	res, err := pipeline.Run(ctx, pipeline.Options{
		Root:   path,
		Groups: withGroups,
	})
	if err != nil {
		return nil, err
	}
	return res.Report, nil
}
