// Package inventory builds the ordered list of file nodes that seed the
// dependency graph. It classifies each surviving file by type and enforces
// the run's size and count caps.
package inventory

import (
	"io"
	"os"
	"sort"
)

// FileNode is a single source file represented as a graph vertex. Importance
// and group membership are filled in by later pipeline stages; the node is
// immutable once the run's graph is finalized.
type FileNode struct {
	// ID is the canonical slash-separated path relative to the project root.
	ID string
	// AbsPath is the absolute filesystem path, used only for reading.
	AbsPath string
	// TypeTag is the language/role classification (e.g. "go", "python",
	// "html", "unknown").
	TypeTag string
	// SizeBytes is the file size at collection time.
	SizeBytes int64
	// SizeSkipped marks files over the size cap: they stay in the graph as
	// nodes but are never content-scanned.
	SizeSkipped bool
	// Importance is the degree-centrality score, set by the scorer.
	Importance int
	// GroupIDs lists the functional groups the node belongs to.
	GroupIDs []string
}

// Candidate is one path that survived the exclusion filter.
type Candidate struct {
	RelPath string
	AbsPath string
	Size    int64
}

// Options caps the inventory.
type Options struct {
	// MaxFiles truncates the inventory after a stable sort by path.
	// Zero means no cap.
	MaxFiles int
	// MaxFileSize marks larger files SizeSkipped. Zero means no cap.
	MaxFileSize int64
}

// Result holds the collected nodes plus collection diagnostics.
type Result struct {
	Nodes []*FileNode
	// Truncated is the number of candidates dropped by the MaxFiles cap.
	Truncated int
	// SizeSkipped is the number of nodes over the size cap.
	SizeSkipped int
}

// Collect turns candidates into FileNode skeletons: classified, ordered by
// path, capped. Files whose extension is missing or ambiguous are sniffed by
// reading a short content prefix; unreadable files during sniffing simply
// stay "unknown" (the read error is surfaced later, at extraction time).
func Collect(candidates []Candidate, opts Options) *Result {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RelPath < sorted[j].RelPath })

	res := &Result{}
	if opts.MaxFiles > 0 && len(sorted) > opts.MaxFiles {
		res.Truncated = len(sorted) - opts.MaxFiles
		sorted = sorted[:opts.MaxFiles]
	}

	res.Nodes = make([]*FileNode, 0, len(sorted))
	for _, c := range sorted {
		node := &FileNode{
			ID:        c.RelPath,
			AbsPath:   c.AbsPath,
			SizeBytes: c.Size,
		}

		node.TypeTag = ClassifyPath(c.RelPath)
		if node.TypeTag == TypeUnknown {
			if head := readHead(c.AbsPath); len(head) > 0 {
				node.TypeTag = SniffType(head)
			}
		}

		if opts.MaxFileSize > 0 && c.Size > opts.MaxFileSize {
			node.SizeSkipped = true
			res.SizeSkipped++
		}

		res.Nodes = append(res.Nodes, node)
	}

	return res
}

// sniffLimit bounds how much of a file the classifier reads.
const sniffLimit = 512

func readHead(absPath string) []byte {
	f, err := os.Open(absPath)
	if err != nil {
		return nil
	}
	defer f.Close()

	head := make([]byte, sniffLimit)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return nil
	}
	return head[:n]
}
