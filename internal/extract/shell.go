package extract

import (
	"regexp"
	"strings"
)

// shSource matches both the source builtin and the POSIX dot form.
var shSource = regexp.MustCompile(`^\s*(?:source|\.)\s+(\S+)`)

type shellStrategy struct{}

func (*shellStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		m := shSource.FindStringSubmatch(line)
		if m == nil {
			return
		}
		ref := strings.Trim(m[1], `"'`)
		// Paths built from shell variables cannot be resolved statically.
		if ref == "" || strings.ContainsAny(ref, "$`") {
			return
		}
		refs = append(refs, ref)
	})

	return dedupe(refs)
}
