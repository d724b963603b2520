package extract

import (
	"regexp"
	"strings"
)

// javaImport matches Java and Kotlin import statements, including static
// imports and wildcard suffixes. Kotlin omits the trailing semicolon.
var javaImport = regexp.MustCompile(`^\s*import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;?\s*$`)

type javaStrategy struct{}

func (*javaStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		m := javaImport.FindStringSubmatch(line)
		if m == nil {
			return
		}
		ref := strings.TrimSuffix(m[1], ".*")
		ref = strings.TrimSuffix(ref, ".")
		if ref != "" {
			refs = append(refs, ref)
		}
	})

	return dedupe(refs)
}
