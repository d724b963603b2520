// Package metrics scores nodes and summarizes the dependency graph.
package metrics

import (
	"sort"

	"github.com/depscope/depscope/internal/graph"
)

// RankedNode pairs a node id with its importance score.
type RankedNode struct {
	ID         string
	Importance int
}

// Importance returns the degree-centrality score for one node: distinct
// inbound plus distinct outbound dependencies. Edge weights do not
// contribute.
func Importance(g *graph.Graph, id string) int {
	return g.InDegree(id) + g.OutDegree(id)
}

// Apply computes the importance of every node and writes it onto the
// inventory nodes.
func Apply(g *graph.Graph) {
	for _, n := range g.Nodes() {
		n.Importance = Importance(g, n.ID)
	}
}

// Rank returns all nodes ordered by importance descending; equal scores
// order by id ascending so the ranking is stable across runs.
func Rank(g *graph.Graph) []RankedNode {
	ranked := make([]RankedNode, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		ranked = append(ranked, RankedNode{ID: n.ID, Importance: Importance(g, n.ID)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Importance != ranked[j].Importance {
			return ranked[i].Importance > ranked[j].Importance
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// GraphStats summarizes graph size and connectivity.
type GraphStats struct {
	TotalNodes int     `yaml:"total_nodes" json:"total_nodes"`
	TotalEdges int     `yaml:"total_edges" json:"total_edges"`
	AvgDegree  float64 `yaml:"avg_degree" json:"avg_degree"`
}

// Stats computes summary statistics. Average degree counts each edge at
// both endpoints.
func Stats(g *graph.Graph) GraphStats {
	s := GraphStats{
		TotalNodes: g.NodeCount(),
		TotalEdges: g.EdgeCount(),
	}
	if s.TotalNodes > 0 {
		s.AvgDegree = float64(2*s.TotalEdges) / float64(s.TotalNodes)
	}
	return s
}
