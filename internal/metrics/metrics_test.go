package metrics

import (
	"testing"

	"github.com/depscope/depscope/internal/graph"
	"github.com/depscope/depscope/internal/inventory"
)

func buildGraph(ids []string, edges [][2]string) *graph.Graph {
	g := graph.NewGraph()
	for _, id := range ids {
		g.AddNode(&inventory.FileNode{ID: id})
	}
	for _, e := range edges {
		g.AddReference(e[0], e[1])
	}
	g.Finalize()
	return g
}

func TestImportanceIsDegreeSum(t *testing.T) {
	// a -> b -> c -> a: every node has in 1, out 1.
	g := buildGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})

	for _, id := range []string{"a", "b", "c"} {
		if got := Importance(g, id); got != 2 {
			t.Errorf("Importance(%s) = %d, want 2", id, got)
		}
	}
}

func TestImportanceIgnoresWeight(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode(&inventory.FileNode{ID: "a"})
	g.AddNode(&inventory.FileNode{ID: "b"})
	g.AddReference("a", "b")
	g.AddReference("a", "b")
	g.Finalize()

	if got := Importance(g, "a"); got != 1 {
		t.Errorf("Importance(a) = %d, want 1 (weights must not inflate degree)", got)
	}
}

func TestApply(t *testing.T) {
	g := buildGraph([]string{"hub", "x", "y"}, [][2]string{{"x", "hub"}, {"y", "hub"}, {"hub", "x"}})
	Apply(g)

	if got := g.Node("hub").Importance; got != 3 {
		t.Errorf("hub importance = %d, want 3", got)
	}
	if got := g.Node("y").Importance; got != 1 {
		t.Errorf("y importance = %d, want 1", got)
	}
}

func TestRankOrdering(t *testing.T) {
	g := buildGraph(
		[]string{"a", "b", "hub", "z"},
		[][2]string{{"a", "hub"}, {"b", "hub"}, {"z", "a"}},
	)
	ranked := Rank(g)

	// a and hub both score 2; ties break by id ascending.
	if ranked[0].ID != "a" || ranked[0].Importance != 2 {
		t.Fatalf("top ranked = %+v, want a with 2", ranked[0])
	}
	if ranked[1].ID != "hub" || ranked[1].Importance != 2 {
		t.Fatalf("second ranked = %+v, want hub with 2", ranked[1])
	}
	for i := 1; i < len(ranked); i++ {
		prev, cur := ranked[i-1], ranked[i]
		if cur.Importance > prev.Importance {
			t.Errorf("rank %d out of order: %+v before %+v", i, prev, cur)
		}
		if cur.Importance == prev.Importance && cur.ID < prev.ID {
			t.Errorf("tie at rank %d not broken by id: %+v before %+v", i, prev, cur)
		}
	}
}

func TestStats(t *testing.T) {
	g := buildGraph([]string{"a", "b", "c", "d"}, [][2]string{{"a", "b"}, {"c", "d"}})
	s := Stats(g)

	if s.TotalNodes != 4 || s.TotalEdges != 2 {
		t.Errorf("stats = %+v", s)
	}
	if s.AvgDegree != 1.0 {
		t.Errorf("avg degree = %f, want 1.0", s.AvgDegree)
	}

	empty := Stats(buildGraph(nil, nil))
	if empty.AvgDegree != 0 {
		t.Errorf("empty graph avg degree = %f, want 0", empty.AvgDegree)
	}
}
