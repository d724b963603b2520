package extract

import (
	"regexp"
	"strings"
)

var (
	rsModDecl = regexp.MustCompile(`^\s*(?:pub(?:\([\w:]+\))?\s+)?mod\s+(\w+)\s*;`)
	rsUseDecl = regexp.MustCompile(`^\s*(?:pub(?:\([\w:]+\))?\s+)?use\s+([\w:]+)`)
)

// rustStrategy handles module declarations and use paths. crate::, self::,
// and super:: prefixes are rewritten to path references; anything else is
// kept as a bare module path for best-effort resolution.
type rustStrategy struct{}

func (*rustStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		if m := rsModDecl.FindStringSubmatch(line); m != nil {
			refs = append(refs, "./"+m[1])
			return
		}
		if m := rsUseDecl.FindStringSubmatch(line); m != nil {
			if ref := rustUseRef(m[1]); ref != "" {
				refs = append(refs, ref)
			}
		}
	})

	return dedupe(refs)
}

func rustUseRef(path string) string {
	segs := strings.Split(path, "::")
	switch segs[0] {
	case "crate":
		segs = segs[1:]
	case "self":
		if len(segs) < 2 {
			return ""
		}
		return "./" + strings.Join(segs[1:], "/")
	case "super":
		up := 0
		for up < len(segs) && segs[up] == "super" {
			up++
		}
		rest := strings.Join(segs[up:], "/")
		if rest == "" {
			return ""
		}
		return strings.Repeat("../", up) + rest
	case "std", "core", "alloc":
		// Standard library: never a project file, skip instead of
		// flooding the external-reference count.
		return ""
	}
	if len(segs) == 0 {
		return ""
	}
	return strings.Join(segs, "/")
}
