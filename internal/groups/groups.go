// Package groups assigns graph nodes to functional groups. Two strategies
// run over the finalized graph: directory (direct children of each
// directory) and type (all files sharing a type tag). Strategies are
// additive; a node belongs to one group per strategy.
package groups

import (
	"path"
	"sort"
	"strings"

	"github.com/depscope/depscope/internal/graph"
)

// Strategy names for group provenance.
const (
	StrategyDirectory = "directory"
	StrategyType      = "type"
)

// Group is one functional grouping of nodes.
type Group struct {
	ID       string
	Strategy string
	Label    string
	Members  []string
	// AggregateImportance sums the importance of the members.
	AggregateImportance int
	// InternalEdges counts resolved edges with both endpoints in the group.
	InternalEdges int
	// Completeness is an advisory 0-100 score from the presence of entry
	// points, tests, and documentation among the members.
	Completeness int
}

// Build runs all grouping strategies over the graph and records the group
// memberships on each node. Node importance must already be applied.
// Groups come back sorted by strategy then id.
func Build(g *graph.Graph) []*Group {
	var all []*Group
	all = append(all, byDirectory(g)...)
	all = append(all, byType(g)...)

	sort.Slice(all, func(i, j int) bool {
		if all[i].Strategy != all[j].Strategy {
			return all[i].Strategy < all[j].Strategy
		}
		return all[i].ID < all[j].ID
	})

	membership := make(map[string][]string)
	for _, grp := range all {
		grp.finish(g)
		for _, m := range grp.Members {
			membership[m] = append(membership[m], grp.ID)
		}
	}
	for _, n := range g.Nodes() {
		n.GroupIDs = membership[n.ID]
	}
	return all
}

// byDirectory groups each node with its sibling files. Only direct children
// count; nested directories form their own groups.
func byDirectory(g *graph.Graph) []*Group {
	dirs := make(map[string]*Group)
	for _, n := range g.Nodes() {
		dir := path.Dir(n.ID)
		grp, ok := dirs[dir]
		if !ok {
			grp = &Group{
				ID:       "dir:" + dir,
				Strategy: StrategyDirectory,
				Label:    "Directory: " + dir,
			}
			dirs[dir] = grp
		}
		grp.Members = append(grp.Members, n.ID)
	}

	out := make([]*Group, 0, len(dirs))
	for _, grp := range dirs {
		out = append(out, grp)
	}
	return out
}

// byType groups all files sharing a type tag, unknown included.
func byType(g *graph.Graph) []*Group {
	types := make(map[string]*Group)
	for _, n := range g.Nodes() {
		grp, ok := types[n.TypeTag]
		if !ok {
			grp = &Group{
				ID:       "type:" + n.TypeTag,
				Strategy: StrategyType,
				Label:    "Type: " + n.TypeTag,
			}
			types[n.TypeTag] = grp
		}
		grp.Members = append(grp.Members, n.ID)
	}

	out := make([]*Group, 0, len(types))
	for _, grp := range types {
		out = append(out, grp)
	}
	return out
}

// finish sorts the members and derives the aggregate metrics.
func (grp *Group) finish(g *graph.Graph) {
	sort.Strings(grp.Members)

	inGroup := make(map[string]bool, len(grp.Members))
	for _, m := range grp.Members {
		inGroup[m] = true
		if n := g.Node(m); n != nil {
			grp.AggregateImportance += n.Importance
		}
	}
	for _, e := range g.Edges() {
		if inGroup[e.Source] && inGroup[e.Target] {
			grp.InternalEdges++
		}
	}
	grp.Completeness = completeness(grp.Members)
}

// completeness scores structural maturity signals. Each signal is worth a
// quarter of the scale: having members at all, an entry point, tests, and
// documentation.
func completeness(members []string) int {
	if len(members) == 0 {
		return 0
	}
	score := 25
	hasEntry, hasTests, hasDocs := false, false, false
	for _, m := range members {
		base := strings.ToLower(path.Base(m))
		if isEntryPoint(base) {
			hasEntry = true
		}
		if isTestFile(base) {
			hasTests = true
		}
		if isDocFile(base) {
			hasDocs = true
		}
	}
	if hasEntry {
		score += 25
	}
	if hasTests {
		score += 25
	}
	if hasDocs {
		score += 25
	}
	return score
}

var entryPointNames = map[string]bool{
	"main.go":     true,
	"main.py":     true,
	"main.rs":     true,
	"main.c":      true,
	"main.cpp":    true,
	"app.py":      true,
	"app.js":      true,
	"index.js":    true,
	"index.ts":    true,
	"index.html":  true,
	"index.php":   true,
	"__main__.py": true,
	"mod.rs":      true,
	"lib.rs":      true,
	"__init__.py": true,
}

func isEntryPoint(base string) bool {
	return entryPointNames[base]
}

func isTestFile(base string) bool {
	return strings.HasSuffix(base, "_test.go") ||
		strings.HasPrefix(base, "test_") ||
		strings.Contains(base, ".test.") ||
		strings.Contains(base, ".spec.") ||
		strings.HasSuffix(base, "_test.py") ||
		strings.HasSuffix(base, "_spec.rb")
}

func isDocFile(base string) bool {
	if strings.HasPrefix(base, "readme") || strings.HasPrefix(base, "changelog") {
		return true
	}
	return strings.HasSuffix(base, ".md") || strings.HasSuffix(base, ".rst")
}
