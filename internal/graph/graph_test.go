package graph

import (
	"reflect"
	"testing"

	"github.com/depscope/depscope/internal/inventory"
)

func newTestGraph(ids []string, edges [][2]string) *Graph {
	g := NewGraph()
	for _, id := range ids {
		g.AddNode(&inventory.FileNode{ID: id, TypeTag: "go"})
	}
	for _, e := range edges {
		g.AddReference(e[0], e[1])
	}
	g.Finalize()
	return g
}

func TestAddReferenceDedup(t *testing.T) {
	g := NewGraph()
	g.AddNode(&inventory.FileNode{ID: "a.go"})
	g.AddNode(&inventory.FileNode{ID: "b.go"})

	g.AddReference("a.go", "b.go")
	g.AddReference("a.go", "b.go")
	g.AddReference("a.go", "b.go")
	g.Finalize()

	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 edge, got %d", g.EdgeCount())
	}
	e := g.EdgeBetween("a.go", "b.go")
	if e == nil || e.Weight != 3 {
		t.Errorf("expected weight 3, got %+v", e)
	}
}

func TestAddReferenceDropsInvalid(t *testing.T) {
	g := NewGraph()
	g.AddNode(&inventory.FileNode{ID: "a.go"})

	g.AddReference("a.go", "a.go")      // self reference
	g.AddReference("a.go", "ghost.go")  // unknown target
	g.AddReference("ghost.go", "a.go")  // unknown source
	g.Finalize()

	if g.EdgeCount() != 0 {
		t.Errorf("expected no edges, got %d", g.EdgeCount())
	}
}

func TestDegreesAndNeighbors(t *testing.T) {
	g := newTestGraph(
		[]string{"a", "b", "c"},
		[][2]string{{"a", "b"}, {"a", "c"}, {"c", "b"}},
	)

	if got := g.OutDegree("a"); got != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", got)
	}
	if got := g.InDegree("b"); got != 2 {
		t.Errorf("InDegree(b) = %d, want 2", got)
	}
	if !g.HasEdge("a", "c") {
		t.Error("HasEdge(a, c) should be true")
	}
	if g.HasEdge("b", "a") {
		t.Error("HasEdge(b, a) should be false")
	}
	if got := g.Neighbors("a", Forward); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Neighbors(a, forward) = %v", got)
	}
	if got := g.Neighbors("b", Reverse); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Neighbors(b, reverse) = %v", got)
	}
}

func TestFinalizeOrdering(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"z.go", "a.go", "m.go"} {
		g.AddNode(&inventory.FileNode{ID: id})
	}
	g.AddReference("z.go", "a.go")
	g.AddReference("a.go", "m.go")
	g.Finalize()

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a.go", "m.go", "z.go"}) {
		t.Errorf("node order = %v", ids)
	}

	edges := g.Edges()
	if edges[0].Source != "a.go" || edges[1].Source != "z.go" {
		t.Errorf("edges not sorted by source: %v, %v", edges[0], edges[1])
	}
}

func TestExternalRefsStayOffAdjacency(t *testing.T) {
	g := NewGraph()
	g.AddNode(&inventory.FileNode{ID: "a.go"})
	g.AddExternal("a.go", "github.com/some/dep")
	g.Finalize()

	if g.EdgeCount() != 0 {
		t.Error("external refs must not count as edges")
	}
	if g.OutDegree("a.go") != 0 {
		t.Error("external refs must not contribute degree")
	}
	if len(g.ExternalRefs()) != 1 {
		t.Errorf("expected 1 external ref, got %d", len(g.ExternalRefs()))
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges [][2]string
		want  [][]string
	}{
		{
			"two disjoint pairs",
			[]string{"a", "b", "c", "d"},
			[][2]string{{"a", "b"}, {"c", "d"}},
			[][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			"direction ignored",
			[]string{"a", "b", "c"},
			[][2]string{{"b", "a"}, {"b", "c"}},
			[][]string{{"a", "b", "c"}},
		},
		{
			"isolate is a singleton",
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}},
			[][]string{{"a", "b"}, {"c"}},
		},
		{
			"no nodes",
			nil, nil, nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(tt.ids, tt.edges)
			got := g.Components()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Components() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCycles(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		edges [][2]string
		want  [][]string
	}{
		{
			"triangle",
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
			[][]string{{"a", "b", "c"}},
		},
		{
			"two-node cycle plus isolate",
			[]string{"a", "b", "c"},
			[][2]string{{"a", "b"}, {"b", "a"}},
			[][]string{{"a", "b"}},
		},
		{
			"acyclic diamond",
			[]string{"a", "b", "c", "d"},
			[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
			nil,
		},
		{
			"self loops are dropped at insert",
			[]string{"a"},
			[][2]string{{"a", "a"}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(tt.ids, tt.edges)
			got := g.Cycles()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Cycles() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCyclesDeterministic(t *testing.T) {
	g := newTestGraph(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}, {"d", "c"}},
	)
	first := g.Cycles()
	for i := 0; i < 5; i++ {
		if got := g.Cycles(); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}
