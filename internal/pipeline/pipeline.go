// Package pipeline orchestrates one analysis run: walk, exclusion,
// inventory, parallel extraction, graph construction, scoring, grouping,
// and report assembly. A run is self-contained; two concurrent runs over
// different roots share nothing but an optional explicit cache.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/depscope/depscope/internal/cache"
	"github.com/depscope/depscope/internal/extract"
	"github.com/depscope/depscope/internal/graph"
	"github.com/depscope/depscope/internal/groups"
	"github.com/depscope/depscope/internal/ignore"
	"github.com/depscope/depscope/internal/inventory"
	"github.com/depscope/depscope/internal/metrics"
	"github.com/depscope/depscope/internal/output"
)

// Options configures one run.
type Options struct {
	// Root is the directory to analyze.
	Root string
	// MaxFiles caps the inventory. Zero means no cap.
	MaxFiles int
	// MaxFileSize caps per-file content reads. Zero means no cap.
	MaxFileSize int64
	// Groups enables the functional grouping stage.
	Groups bool
	// Workers bounds the extraction pool. Zero means one per CPU.
	Workers int
	// IgnoreFileNames are the rule-file names honored during the walk.
	// Empty means the defaults (.depscopeignore, .gitignore).
	IgnoreFileNames []string
	// Cache, when non-nil, skips extraction for files whose mtime and size
	// match a previous run. The caller owns the cache lifecycle.
	Cache *cache.Cache
}

// Diagnostics aggregates everything the run recovered from.
type Diagnostics struct {
	Excluded        map[string]int
	UnreadableFiles []string
	SizeSkipped     int
	Truncated       bool
	Unresolved      int
}

// Result is the outcome of a successful run.
type Result struct {
	Report      *output.Report
	Graph       *graph.Graph
	Groups      []*groups.Group
	Diagnostics Diagnostics
}

// runner carries per-run state. Nothing here is shared between runs.
type runner struct {
	opts    Options
	absRoot string
	matcher *ignore.Matcher
}

// defaultIgnoreFileNames are honored when Options leaves the list empty.
var defaultIgnoreFileNames = []string{".depscopeignore", ".gitignore"}

// Run executes the full analysis. It returns a *PathError when the root is
// unusable or excludes down to nothing; read failures, oversized files, and
// unresolved references are recovered into the result's Diagnostics.
func Run(ctx context.Context, opts Options) (*Result, error) {
	absRoot, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	if len(opts.IgnoreFileNames) == 0 {
		opts.IgnoreFileNames = defaultIgnoreFileNames
	}

	p := &runner{opts: opts, absRoot: absRoot, matcher: ignore.NewMatcher()}

	walked, err := p.walk()
	if err != nil {
		return nil, &PathError{Path: opts.Root, Err: err}
	}
	if len(walked.candidates) == 0 {
		return nil, &PathError{Path: opts.Root, Err: ErrNoFiles}
	}

	inv := inventory.Collect(walked.candidates, inventory.Options{
		MaxFiles:    opts.MaxFiles,
		MaxFileSize: opts.MaxFileSize,
	})

	refs, unreadable, err := p.extractAll(ctx, inv.Nodes)
	if err != nil {
		return nil, err
	}

	g := graph.NewGraph()
	for _, n := range inv.Nodes {
		g.AddNode(n)
	}

	// Merge is sequential and per-file atomic: a file contributes either
	// all of its resolved references or, after a read failure, none.
	resolver := graph.NewResolver(inv.Nodes)
	unresolved := 0
	for i, n := range inv.Nodes {
		for _, raw := range refs[i] {
			target, ok := resolver.Resolve(n.ID, raw)
			if !ok {
				g.AddExternal(n.ID, raw)
				unresolved++
				continue
			}
			if target != n.ID {
				g.AddReference(n.ID, target)
			}
		}
	}
	g.Finalize()

	metrics.Apply(g)

	var grps []*groups.Group
	if opts.Groups {
		grps = groups.Build(g)
	}

	diags := Diagnostics{
		Excluded:        walked.excluded,
		UnreadableFiles: append(walked.unreadable, unreadable...),
		SizeSkipped:     inv.SizeSkipped,
		Truncated:       inv.Truncated > 0,
		Unresolved:      unresolved,
	}
	sort.Strings(diags.UnreadableFiles)

	return &Result{
		Report:      buildReport(g, grps, diags),
		Graph:       g,
		Groups:      grps,
		Diagnostics: diags,
	}, nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", &PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return "", &PathError{Path: root, Err: fmt.Errorf("not a directory")}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &PathError{Path: root, Err: err}
	}
	return abs, nil
}

// extractAll reads and extracts every eligible node with a bounded worker
// pool. Results come back indexed by node so the later merge is
// deterministic regardless of completion order. Cancellation is cooperative
// between files.
func (p *runner) extractAll(ctx context.Context, nodes []*inventory.FileNode) ([][]string, []string, error) {
	registry := extract.NewRegistry()
	refs := make([][]string, len(nodes))
	readErrs := make([]error, len(nodes))

	workers := p.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(nodes) {
		workers = len(nodes)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				refs[i], readErrs[i] = p.extractOne(registry, nodes[i])
			}
		}()
	}

	canceled := false
feed:
	for i, n := range nodes {
		if n.SizeSkipped {
			continue
		}
		if ctx.Err() != nil {
			canceled = true
			break feed
		}
		select {
		case <-ctx.Done():
			canceled = true
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		return nil, nil, fmt.Errorf("analysis interrupted: %w", ctx.Err())
	}

	var unreadable []string
	for i, err := range readErrs {
		if err != nil {
			unreadable = append(unreadable, nodes[i].ID)
		}
	}
	return refs, unreadable, nil
}

// extractOne produces the raw references of a single file, consulting the
// cache when one is configured.
func (p *runner) extractOne(registry *extract.Registry, n *inventory.FileNode) ([]string, error) {
	if p.opts.Cache != nil {
		if info, err := os.Stat(n.AbsPath); err == nil {
			if cached, ok, err := p.opts.Cache.GetRefs(n.AbsPath, info.ModTime().UnixNano(), info.Size()); err == nil && ok {
				return cached, nil
			}
		}
	}

	content, err := os.ReadFile(n.AbsPath)
	if err != nil {
		return nil, &ReadError{Path: n.ID, Err: err}
	}

	found := registry.Extract(n.TypeTag, content)

	if p.opts.Cache != nil {
		if info, err := os.Stat(n.AbsPath); err == nil {
			// Cache write failures are ignored: the cache is an
			// optimization, never a correctness dependency.
			_ = p.opts.Cache.PutRefs(n.AbsPath, info.ModTime().UnixNano(), info.Size(), found)
		}
	}
	return found, nil
}

// buildReport assembles the serialization contract from the finalized
// graph, the groups, and the diagnostics.
func buildReport(g *graph.Graph, grps []*groups.Group, diags Diagnostics) *output.Report {
	r := &output.Report{
		Nodes:      make([]output.NodeOutput, 0, g.NodeCount()),
		Edges:      make([]output.EdgeOutput, 0, g.EdgeCount()),
		Components: g.Components(),
		Cycles:     g.Cycles(),
		Groups:     make([]output.GroupOutput, 0, len(grps)),
	}

	for _, n := range g.Nodes() {
		r.Nodes = append(r.Nodes, output.NodeOutput{
			ID:          n.ID,
			Type:        n.TypeTag,
			Importance:  n.Importance,
			Groups:      n.GroupIDs,
			SizeSkipped: n.SizeSkipped,
		})
	}
	for _, e := range g.Edges() {
		r.Edges = append(r.Edges, output.EdgeOutput{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
		})
	}
	for _, grp := range grps {
		r.Groups = append(r.Groups, output.GroupOutput{
			ID:            grp.ID,
			Strategy:      grp.Strategy,
			Label:         grp.Label,
			Members:       grp.Members,
			Importance:    grp.AggregateImportance,
			Completeness:  grp.Completeness,
			InternalEdges: grp.InternalEdges,
		})
	}

	stats := metrics.Stats(g)
	r.Summary = output.Summary{
		TotalNodes: stats.TotalNodes,
		TotalEdges: stats.TotalEdges,
		AvgDegree:  stats.AvgDegree,
	}

	excluded := diags.Excluded
	if excluded == nil {
		excluded = map[string]int{}
	}
	r.Diagnostics = output.Diagnostics{
		Excluded:             excluded,
		UnreadableFiles:      diags.UnreadableFiles,
		SizeSkipped:          diags.SizeSkipped,
		Truncated:            diags.Truncated,
		UnresolvedReferences: diags.Unresolved,
	}
	return r
}
