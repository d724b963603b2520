package extract

import (
	"regexp"
	"strings"
)

var (
	rbRequire         = regexp.MustCompile(`^\s*require\s+['"]([^'"]+)['"]`)
	rbRequireRelative = regexp.MustCompile(`^\s*require_relative\s+['"]([^'"]+)['"]`)
	rbLoad            = regexp.MustCompile(`^\s*load\s+['"]([^'"]+)['"]`)
)

// rubyStrategy handles require, require_relative, and load.
type rubyStrategy struct{}

func (*rubyStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		if m := rbRequireRelative.FindStringSubmatch(line); m != nil {
			ref := m[1]
			if !strings.HasPrefix(ref, ".") {
				ref = "./" + ref
			}
			refs = append(refs, ref)
			return
		}
		if m := rbRequire.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
		}
		if m := rbLoad.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
		}
	})

	return dedupe(refs)
}
