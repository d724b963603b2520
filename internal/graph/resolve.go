package graph

import (
	"path"
	"sort"
	"strings"

	"github.com/depscope/depscope/internal/inventory"
)

// Resolver maps raw extracted references onto inventory node ids. Resolution
// is heuristic and errs toward missing edges: an ambiguous reference stays
// unresolved rather than guessing.
type Resolver struct {
	byPath map[string]string   // exact relative path -> id
	byStem map[string][]string // basename without extension -> ids
	byName map[string][]string // full basename -> ids
	byDir  map[string][]string // directory -> ids of direct children, sorted
	byType map[string]string   // id -> type tag
}

// NewResolver indexes the inventory nodes.
func NewResolver(nodes []*inventory.FileNode) *Resolver {
	r := &Resolver{
		byPath: make(map[string]string, len(nodes)),
		byStem: make(map[string][]string),
		byName: make(map[string][]string),
		byDir:  make(map[string][]string),
		byType: make(map[string]string, len(nodes)),
	}
	for _, n := range nodes {
		r.byPath[n.ID] = n.ID
		r.byType[n.ID] = n.TypeTag
		name := path.Base(n.ID)
		r.byName[name] = append(r.byName[name], n.ID)
		stem := strings.TrimSuffix(name, path.Ext(name))
		if stem != name {
			r.byStem[stem] = append(r.byStem[stem], n.ID)
		}
		dir := path.Dir(n.ID)
		r.byDir[dir] = append(r.byDir[dir], n.ID)
	}
	for d := range r.byDir {
		sort.Strings(r.byDir[d])
	}
	return r
}

// indexNames are filenames that stand in for their directory when a
// reference points at the directory itself.
var indexNames = []string{
	"index.js", "index.jsx", "index.ts", "index.tsx", "index.mjs",
	"__init__.py", "mod.rs", "index.html", "index.php",
}

// extension candidates tried, in order, when a reference omits its extension.
// The source file's type narrows the list to its language family.
var familyExtensions = map[string][]string{
	"javascript": {".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue", ".svelte", ".json"},
	"typescript": {".ts", ".tsx", ".js", ".jsx", ".mjs", ".vue", ".svelte", ".json"},
	"vue":        {".vue", ".js", ".ts"},
	"svelte":     {".svelte", ".js", ".ts"},
	"python":     {".py"},
	"ruby":       {".rb"},
	"rust":       {".rs"},
	"go":         {".go"},
	"java":       {".java"},
	"kotlin":     {".kt", ".java"},
	"c":          {".h", ".c"},
	"cpp":        {".hpp", ".h", ".hh", ".cpp", ".cc"},
	"csharp":     {".cs"},
	"php":        {".php"},
	"shell":      {".sh", ".bash"},
	"html":       {".html", ".htm", ".js", ".css"},
}

var defaultExtensions = []string{
	".go", ".js", ".ts", ".py", ".rb", ".rs", ".java", ".h", ".c", ".cs", ".php", ".sh",
}

// Resolve maps one raw reference from sourceID to an inventory node id.
// The second result is false when nothing in the inventory satisfies the
// reference (external or ambiguous).
func (r *Resolver) Resolve(sourceID, raw string) (string, bool) {
	ref := normalizeRef(raw)
	if ref == "" {
		return "", false
	}
	exts := familyExtensions[r.byType[sourceID]]
	if exts == nil {
		exts = defaultExtensions
	}

	srcDir := path.Dir(sourceID)

	// Explicitly relative references resolve against the source directory only.
	if strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../") ||
		strings.HasPrefix(ref, "../") {
		joined := path.Clean(path.Join(srcDir, ref))
		return r.lookup(joined, exts)
	}

	// Bare references: source-relative first (quoted C includes, HTML src),
	// then root-relative.
	if id, ok := r.lookup(path.Clean(path.Join(srcDir, ref)), exts); ok {
		return id, ok
	}
	if id, ok := r.lookup(ref, exts); ok {
		return id, ok
	}

	// Module-style names: try the dotted form as a path, then peel leading
	// segments so "pkg.sub.mod" can land on "sub/mod.py".
	if dotted := dotsToPath(raw); dotted != "" && dotted != ref {
		if id, ok := r.lookup(path.Clean(path.Join(srcDir, dotted)), exts); ok {
			return id, ok
		}
		if id, ok := r.lookup(dotted, exts); ok {
			return id, ok
		}
		ref = dotted
	}
	for rest := ref; ; {
		i := strings.Index(rest, "/")
		if i < 0 {
			break
		}
		rest = rest[i+1:]
		if id, ok := r.lookup(rest, exts); ok {
			return id, ok
		}
	}

	// Last resort: a unique basename anywhere in the inventory.
	base := path.Base(ref)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if ids := r.byName[base]; len(ids) == 1 && ids[0] != sourceID {
		return ids[0], true
	}
	if ids := r.byStem[stem]; len(ids) == 1 && ids[0] != sourceID {
		return ids[0], true
	}
	return "", false
}

// lookup tries the path exactly, with each candidate extension, and as a
// directory holding an index file.
func (r *Resolver) lookup(p string, exts []string) (string, bool) {
	p = strings.TrimPrefix(p, "./")
	if p == "" || p == "." || strings.HasPrefix(p, "../") {
		return "", false
	}
	if id, ok := r.byPath[p]; ok {
		return id, true
	}
	for _, e := range exts {
		if id, ok := r.byPath[p+e]; ok {
			return id, true
		}
	}
	if _, ok := r.byDir[p]; ok {
		for _, idx := range indexNames {
			if id, ok := r.byPath[p+"/"+idx]; ok {
				return id, true
			}
		}
	}
	return "", false
}

// normalizeRef converts separator conventions to slashes and strips noise.
func normalizeRef(raw string) string {
	ref := strings.TrimSpace(raw)
	ref = strings.ReplaceAll(ref, "\\", "/")
	ref = strings.ReplaceAll(ref, "::", "/")
	ref = strings.TrimSuffix(ref, "/")
	return ref
}

// dotsToPath turns a dotted module name into a slash path. References that
// already contain slashes or look like filenames keep their dots.
func dotsToPath(raw string) string {
	if strings.ContainsAny(raw, "/\\") || !strings.Contains(raw, ".") {
		return ""
	}
	return strings.ReplaceAll(raw, ".", "/")
}
