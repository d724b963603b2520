package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/depscope/depscope/internal/output"
)

// registerAnalyzeTool registers the depscope_analyze tool
func (s *Server) registerAnalyzeTool() {
	tool := mcp.NewTool("depscope_analyze",
		mcp.WithDescription("Run a full dependency analysis over a directory. Returns the complete report: nodes, edges, components, cycles, groups, and diagnostics."),
		mcp.WithString("path",
			mcp.Description("Directory to analyze (default: server root)"),
		),
		mcp.WithString("format",
			mcp.Description("Report format: yaml or json (default: yaml)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleAnalyze)
}

// registerRankTool registers the depscope_rank tool
func (s *Server) registerRankTool() {
	tool := mcp.NewTool("depscope_rank",
		mcp.WithDescription("Rank files by importance (in-degree + out-degree). Returns the most depended-on and most depending files first."),
		mcp.WithString("path",
			mcp.Description("Directory to analyze (default: server root)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of files to return (default: 20)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleRank)
}

// registerCyclesTool registers the depscope_cycles tool
func (s *Server) registerCyclesTool() {
	tool := mcp.NewTool("depscope_cycles",
		mcp.WithDescription("Detect circular dependencies. Returns each cycle as an ordered file path list."),
		mcp.WithString("path",
			mcp.Description("Directory to analyze (default: server root)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleCycles)
}

// registerGroupsTool registers the depscope_groups tool
func (s *Server) registerGroupsTool() {
	tool := mcp.NewTool("depscope_groups",
		mcp.WithDescription("Group files into functional units by directory and type, with importance and completeness scores."),
		mcp.WithString("path",
			mcp.Description("Directory to analyze (default: server root)"),
		),
		mcp.WithString("strategy",
			mcp.Description("Filter to one strategy: directory or type"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleGroups)
}

// Tool handlers

func (s *Server) handleAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, _ := args["path"].(string)
	formatArg, _ := args["format"].(string)

	format := output.DefaultFormat
	if formatArg != "" {
		parsed, err := output.ParseFormat(formatArg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		format = parsed
	}

	report, err := s.analyze(ctx, path, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rendered, err := report.Render(format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(rendered)), nil
}

func (s *Server) handleRank(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, _ := args["path"].(string)

	limit := 20
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = int(l)
	}

	report, err := s.analyze(ctx, path, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ranked := make([]output.NodeOutput, len(report.Nodes))
	copy(ranked, report.Nodes)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Importance != ranked[j].Importance {
			return ranked[i].Importance > ranked[j].Importance
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	var b strings.Builder
	for i, n := range ranked {
		fmt.Fprintf(&b, "%d. %s (importance: %d, type: %s)\n", i+1, n.ID, n.Importance, n.Type)
	}
	if b.Len() == 0 {
		b.WriteString("no files analyzed\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleCycles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, _ := args["path"].(string)

	report, err := s.analyze(ctx, path, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(report.Cycles) == 0 {
		return mcp.NewToolResultText("no circular dependencies found\n"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d circular dependencies:\n", len(report.Cycles))
	for _, cycle := range report.Cycles {
		fmt.Fprintf(&b, "  %s -> %s\n", strings.Join(cycle, " -> "), cycle[0])
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.updateActivity()

	args := req.GetArguments()
	path, _ := args["path"].(string)
	strategy, _ := args["strategy"].(string)

	report, err := s.analyze(ctx, path, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	for _, grp := range report.Groups {
		if strategy != "" && grp.Strategy != strategy {
			continue
		}
		fmt.Fprintf(&b, "%s (%s): %d members, importance %d, completeness %d, internal edges %d\n",
			grp.ID, grp.Strategy, len(grp.Members), grp.Importance, grp.Completeness, grp.InternalEdges)
	}
	if b.Len() == 0 {
		b.WriteString("no groups\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
