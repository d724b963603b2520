package groups

import (
	"reflect"
	"testing"

	"github.com/depscope/depscope/internal/graph"
	"github.com/depscope/depscope/internal/inventory"
	"github.com/depscope/depscope/internal/metrics"
)

func buildGraph(nodes map[string]string, edges [][2]string) *graph.Graph {
	g := graph.NewGraph()
	for id, tag := range nodes {
		g.AddNode(&inventory.FileNode{ID: id, TypeTag: tag})
	}
	for _, e := range edges {
		g.AddReference(e[0], e[1])
	}
	g.Finalize()
	metrics.Apply(g)
	return g
}

func findGroup(grps []*Group, id string) *Group {
	for _, grp := range grps {
		if grp.ID == id {
			return grp
		}
	}
	return nil
}

func TestDirectoryGrouping(t *testing.T) {
	g := buildGraph(map[string]string{
		"cmd/main.go":        "go",
		"internal/a.go":      "go",
		"internal/b.go":      "go",
		"internal/sub/c.go":  "go",
	}, nil)
	grps := Build(g)

	dir := findGroup(grps, "dir:internal")
	if dir == nil {
		t.Fatal("dir:internal group missing")
	}
	if !reflect.DeepEqual(dir.Members, []string{"internal/a.go", "internal/b.go"}) {
		t.Errorf("members = %v; nested files must not join the parent group", dir.Members)
	}
	if dir.Strategy != StrategyDirectory {
		t.Errorf("strategy = %q", dir.Strategy)
	}
	if dir.Label != "Directory: internal" {
		t.Errorf("label = %q", dir.Label)
	}

	if findGroup(grps, "dir:internal/sub") == nil {
		t.Error("nested directory should form its own group")
	}
}

func TestTypeGrouping(t *testing.T) {
	g := buildGraph(map[string]string{
		"a.go":   "go",
		"b.go":   "go",
		"app.py": "python",
	}, nil)
	grps := Build(g)

	goGroup := findGroup(grps, "type:go")
	if goGroup == nil {
		t.Fatal("type:go group missing")
	}
	if !reflect.DeepEqual(goGroup.Members, []string{"a.go", "b.go"}) {
		t.Errorf("members = %v", goGroup.Members)
	}
	if findGroup(grps, "type:python") == nil {
		t.Error("type:python group missing")
	}
}

func TestGroupMetrics(t *testing.T) {
	g := buildGraph(map[string]string{
		"pkg/a.go": "go",
		"pkg/b.go": "go",
		"other.go": "go",
	}, [][2]string{
		{"pkg/a.go", "pkg/b.go"}, // internal to dir:pkg
		{"pkg/a.go", "other.go"}, // crosses the boundary
	})
	grps := Build(g)

	pkg := findGroup(grps, "dir:pkg")
	if pkg == nil {
		t.Fatal("dir:pkg group missing")
	}
	if pkg.InternalEdges != 1 {
		t.Errorf("internal edges = %d, want 1", pkg.InternalEdges)
	}
	// a: out 2; b: in 1; aggregate 3.
	if pkg.AggregateImportance != 3 {
		t.Errorf("aggregate importance = %d, want 3", pkg.AggregateImportance)
	}
}

func TestCompleteness(t *testing.T) {
	tests := []struct {
		name    string
		members []string
		want    int
	}{
		{"bare members", []string{"pkg/a.go"}, 25},
		{"with entry point", []string{"pkg/main.go"}, 50},
		{"entry and tests", []string{"pkg/main.go", "pkg/main_test.go"}, 75},
		{"everything", []string{"pkg/main.go", "pkg/main_test.go", "pkg/README.md"}, 100},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completeness(tt.members); got != tt.want {
				t.Errorf("completeness(%v) = %d, want %d", tt.members, got, tt.want)
			}
		})
	}
}

func TestMembershipRecordedOnNodes(t *testing.T) {
	g := buildGraph(map[string]string{"pkg/a.go": "go"}, nil)
	Build(g)

	n := g.Node("pkg/a.go")
	want := []string{"dir:pkg", "type:go"}
	if !reflect.DeepEqual(n.GroupIDs, want) {
		t.Errorf("GroupIDs = %v, want %v", n.GroupIDs, want)
	}
}

func TestGroupsSorted(t *testing.T) {
	g := buildGraph(map[string]string{
		"z/a.go": "go",
		"a/b.py": "python",
	}, nil)
	grps := Build(g)

	for i := 1; i < len(grps); i++ {
		prev, cur := grps[i-1], grps[i]
		if prev.Strategy > cur.Strategy ||
			(prev.Strategy == cur.Strategy && prev.ID > cur.ID) {
			t.Errorf("groups out of order: %s before %s", prev.ID, cur.ID)
		}
	}
}
