package extract

import (
	"regexp"
	"strings"
)

var (
	pyImport = regexp.MustCompile(`^\s*import\s+(.+)$`)
	pyFrom   = regexp.MustCompile(`^\s*from\s+([.\w]+)\s+import\s+(.+)$`)
)

// pythonStrategy handles absolute imports ("import a.b as c, d"), from
// imports ("from a.b import c"), and relative forms ("from ..pkg import x"),
// which it rewrites to ./ and ../ path references.
type pythonStrategy struct{}

func (*pythonStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		if m := pyFrom.FindStringSubmatch(line); m != nil {
			refs = append(refs, pythonFromRefs(m[1], m[2])...)
			return
		}
		if m := pyImport.FindStringSubmatch(line); m != nil {
			for _, name := range splitImportList(m[1]) {
				refs = append(refs, name)
			}
		}
	})

	return dedupe(refs)
}

// pythonFromRefs converts the module part of a from-import. Leading dots
// become ./ and ../ prefixes; a bare "from . import x" names the imported
// modules themselves.
func pythonFromRefs(module, imported string) []string {
	dots := 0
	for dots < len(module) && module[dots] == '.' {
		dots++
	}
	rest := strings.ReplaceAll(module[dots:], ".", "/")

	if dots == 0 {
		return []string{module}
	}

	prefix := "./"
	if dots > 1 {
		prefix = strings.Repeat("../", dots-1)
	}

	if rest != "" {
		return []string{prefix + rest}
	}

	// "from . import a, b" imports sibling modules directly.
	var refs []string
	for _, name := range splitImportList(imported) {
		if name == "*" {
			continue
		}
		refs = append(refs, prefix+strings.ReplaceAll(name, ".", "/"))
	}
	return refs
}

// splitImportList splits "a.b as x, c" into module names without aliases.
func splitImportList(list string) []string {
	// Drop trailing comments.
	if i := strings.Index(list, "#"); i >= 0 {
		list = list[:i]
	}

	var names []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.ContainsAny(part, "()\\") {
			continue
		}
		if i := strings.Index(part, " as "); i >= 0 {
			part = strings.TrimSpace(part[:i])
		}
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
