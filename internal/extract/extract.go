// Package extract implements per-type heuristic reference extraction. Each
// recognized type tag has a registered strategy that scans file content for
// include-style directives, module imports, and relative path references.
// Extraction is approximate by design: a missed reference is acceptable, a
// fabricated one is not.
package extract

import (
	"bufio"
	"bytes"
	"strings"
)

// Strategy extracts raw outbound reference strings from one file's content.
// References may be module paths, relative paths, or bare package names;
// resolution against the inventory happens downstream.
type Strategy interface {
	Extract(content []byte) []string
}

// Registry maps type tags to extraction strategies. Dispatch is by tag, not
// by runtime inspection; the registry is built once and read-only afterward.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns a registry with all built-in strategies installed.
func NewRegistry() *Registry {
	js := &javascriptStrategy{}
	c := &cStrategy{}
	java := &javaStrategy{}

	return &Registry{strategies: map[string]Strategy{
		"go":         &goStrategy{},
		"javascript": js,
		"typescript": js,
		"vue":        js,
		"svelte":     js,
		"python":     &pythonStrategy{},
		"ruby":       &rubyStrategy{},
		"java":       java,
		"kotlin":     java,
		"rust":       &rustStrategy{},
		"c":          c,
		"cpp":        c,
		"csharp":     &csharpStrategy{},
		"php":        &phpStrategy{},
		"shell":      &shellStrategy{},
		"html":       &htmlStrategy{},
	}}
}

// Lookup returns the strategy registered for a type tag.
func (r *Registry) Lookup(typeTag string) (Strategy, bool) {
	s, ok := r.strategies[typeTag]
	return s, ok
}

// Extract runs the strategy registered for typeTag over content. Unsupported
// tags yield zero references without error; the file still exists in the
// graph as a potential isolate.
func (r *Registry) Extract(typeTag string, content []byte) []string {
	s, ok := r.strategies[typeTag]
	if !ok {
		return nil
	}
	return s.Extract(content)
}

// scanLines runs fn over each line of content. Long minified lines are
// tolerated up to 1 MiB.
func scanLines(content []byte, fn func(line string)) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(refs []string) []string {
	if len(refs) < 2 {
		return refs
	}
	seen := make(map[string]struct{}, len(refs))
	out := refs[:0]
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

// isRemoteRef filters URLs and protocol-relative references, which can
// never resolve to files in the inventory.
func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//") ||
		strings.HasPrefix(ref, "data:")
}
