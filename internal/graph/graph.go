// Package graph builds and queries the file dependency graph: deduplicated
// weighted edges, hash-based adjacency in both directions, reference
// resolution, and connectivity analysis.
package graph

import (
	"sort"

	"github.com/depscope/depscope/internal/inventory"
)

// EdgeKind distinguishes project-internal edges from dangling markers.
type EdgeKind string

const (
	// EdgeResolved connects two inventory nodes.
	EdgeResolved EdgeKind = "resolved"
	// EdgeExternal records a reference that no inventory node satisfied.
	EdgeExternal EdgeKind = "external"
)

// Edge is a directed reference from one file to another. Weight counts how
// many times the same (source, target) pair was referenced. Edges are never
// mutated after the graph is finalized.
type Edge struct {
	Source string
	Target string
	Kind   EdgeKind
	Weight int
}

// Direction selects an adjacency side for traversal.
const (
	Forward = "forward"
	Reverse = "reverse"
)

// Graph owns the node and edge sets. Adjacency in both directions is a
// derived, rebuildable index over the edge set. Build with NewGraph,
// populate with AddNode/AddReference/AddExternal, then call Finalize; a
// finalized graph is immutable and safe for concurrent reads.
type Graph struct {
	nodes    []*inventory.FileNode
	nodeIdx  map[string]*inventory.FileNode
	edges    []*Edge
	external []*Edge
	forward  map[string]map[string]*Edge
	reverse  map[string]map[string]*Edge
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIdx: make(map[string]*inventory.FileNode),
		forward: make(map[string]map[string]*Edge),
		reverse: make(map[string]map[string]*Edge),
	}
}

// AddNode registers an inventory node. Duplicate ids are ignored; node ids
// are unique and stable for the duration of one run.
func (g *Graph) AddNode(n *inventory.FileNode) {
	if _, ok := g.nodeIdx[n.ID]; ok {
		return
	}
	g.nodeIdx[n.ID] = n
	g.nodes = append(g.nodes, n)
}

// AddReference records a resolved edge. Duplicate (source, target) pairs
// collapse into one edge with an incremented weight. References to or from
// unknown nodes and self references are dropped.
func (g *Graph) AddReference(sourceID, targetID string) {
	if sourceID == targetID {
		return
	}
	if _, ok := g.nodeIdx[sourceID]; !ok {
		return
	}
	if _, ok := g.nodeIdx[targetID]; !ok {
		return
	}

	if existing, ok := g.forward[sourceID][targetID]; ok {
		existing.Weight++
		return
	}

	e := &Edge{Source: sourceID, Target: targetID, Kind: EdgeResolved, Weight: 1}
	g.edges = append(g.edges, e)
	if g.forward[sourceID] == nil {
		g.forward[sourceID] = make(map[string]*Edge)
	}
	g.forward[sourceID][targetID] = e
	if g.reverse[targetID] == nil {
		g.reverse[targetID] = make(map[string]*Edge)
	}
	g.reverse[targetID][sourceID] = e
}

// AddExternal records an unresolved reference as a dangling marker. It never
// enters the adjacency indexes or degree counts.
func (g *Graph) AddExternal(sourceID, raw string) {
	g.external = append(g.external, &Edge{
		Source: sourceID,
		Target: raw,
		Kind:   EdgeExternal,
		Weight: 1,
	})
}

// Finalize freezes deterministic node and edge ordering: nodes by id, edges
// by (source, target). Two runs over an unchanged file set produce identical
// order regardless of insertion order.
func (g *Graph) Finalize() {
	sort.Slice(g.nodes, func(i, j int) bool { return g.nodes[i].ID < g.nodes[j].ID })
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].Source != g.edges[j].Source {
			return g.edges[i].Source < g.edges[j].Source
		}
		return g.edges[i].Target < g.edges[j].Target
	})
	sort.Slice(g.external, func(i, j int) bool {
		if g.external[i].Source != g.external[j].Source {
			return g.external[i].Source < g.external[j].Source
		}
		return g.external[i].Target < g.external[j].Target
	})
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of resolved (deduplicated) edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all nodes in finalized order.
func (g *Graph) Nodes() []*inventory.FileNode { return g.nodes }

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *inventory.FileNode { return g.nodeIdx[id] }

// Edges returns all resolved edges in finalized order.
func (g *Graph) Edges() []*Edge { return g.edges }

// ExternalRefs returns the dangling markers in finalized order.
func (g *Graph) ExternalRefs() []*Edge { return g.external }

// OutDegree returns the number of distinct targets the node references.
func (g *Graph) OutDegree(id string) int { return len(g.forward[id]) }

// InDegree returns the number of distinct sources referencing the node.
func (g *Graph) InDegree(id string) int { return len(g.reverse[id]) }

// HasEdge reports whether a resolved edge a -> b exists.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.forward[a][b]
	return ok
}

// EdgeBetween returns the resolved edge a -> b, or nil.
func (g *Graph) EdgeBetween(a, b string) *Edge {
	return g.forward[a][b]
}

// Neighbors returns the adjacent node ids in the given direction, sorted
// for deterministic traversal.
func (g *Graph) Neighbors(id string, direction string) []string {
	var adj map[string]*Edge
	if direction == Reverse {
		adj = g.reverse[id]
	} else {
		adj = g.forward[id]
	}

	out := make([]string, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
