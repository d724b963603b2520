package graph

import (
	"testing"

	"github.com/depscope/depscope/internal/inventory"
)

func newTestResolver(specs map[string]string) *Resolver {
	var nodes []*inventory.FileNode
	for id, tag := range specs {
		nodes = append(nodes, &inventory.FileNode{ID: id, TypeTag: tag})
	}
	return NewResolver(nodes)
}

func TestResolveRelative(t *testing.T) {
	r := newTestResolver(map[string]string{
		"src/app.js":        "javascript",
		"src/lib/helper.js": "javascript",
		"src/lib/index.js":  "javascript",
		"util.js":           "javascript",
	})

	tests := []struct {
		name   string
		source string
		ref    string
		want   string
		ok     bool
	}{
		{"same dir with extension", "src/app.js", "./lib/helper.js", "src/lib/helper.js", true},
		{"extension inferred", "src/app.js", "./lib/helper", "src/lib/helper.js", true},
		{"directory resolves to index", "src/app.js", "./lib", "src/lib/index.js", true},
		{"parent traversal", "src/lib/helper.js", "../../util", "util.js", true},
		{"escaping the root fails", "util.js", "../../outside", "", false},
		{"missing file fails", "src/app.js", "./nothing", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.source, tt.ref)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%q, %q) = (%q, %v), want (%q, %v)",
					tt.source, tt.ref, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveModuleStyle(t *testing.T) {
	r := newTestResolver(map[string]string{
		"pkg/sub/mod.py":   "python",
		"pkg/__init__.py":  "python",
		"app/main.py":      "python",
		"lib/core/util.rb": "ruby",
	})

	tests := []struct {
		name   string
		source string
		ref    string
		want   string
		ok     bool
	}{
		{"dotted module to path", "app/main.py", "pkg.sub.mod", "pkg/sub/mod.py", true},
		{"package resolves to init", "app/main.py", "pkg", "pkg/__init__.py", true},
		{"rust-style separators", "app/main.py", "lib::core::util", "lib/core/util.rb", true},
		{"external module fails", "app/main.py", "numpy", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.source, tt.ref)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%q, %q) = (%q, %v), want (%q, %v)",
					tt.source, tt.ref, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveUniqueBasename(t *testing.T) {
	r := newTestResolver(map[string]string{
		"deep/nested/special.py": "python",
		"a/dup.py":               "python",
		"b/dup.py":               "python",
		"app.py":                 "python",
	})

	// Unique basename anywhere in the tree resolves.
	if got, ok := r.Resolve("app.py", "project.special"); !ok || got != "deep/nested/special.py" {
		t.Errorf("unique basename: got (%q, %v)", got, ok)
	}

	// Ambiguous basenames stay unresolved rather than guessing.
	if got, ok := r.Resolve("app.py", "somewhere.dup"); ok {
		t.Errorf("ambiguous basename should not resolve, got %q", got)
	}
}

func TestResolveCIncludes(t *testing.T) {
	r := newTestResolver(map[string]string{
		"src/main.c":        "c",
		"src/util.h":        "c",
		"include/common.h":  "c",
	})

	if got, ok := r.Resolve("src/main.c", "util.h"); !ok || got != "src/util.h" {
		t.Errorf("quoted include same dir: got (%q, %v)", got, ok)
	}
	if got, ok := r.Resolve("src/main.c", "include/common.h"); !ok || got != "include/common.h" {
		t.Errorf("root-relative include: got (%q, %v)", got, ok)
	}
	if _, ok := r.Resolve("src/main.c", "stdio.h"); ok {
		t.Error("system header should stay unresolved")
	}
}
