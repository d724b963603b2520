package extract

import "regexp"

// cInclude matches both quoted (project-local) and angle-bracket includes.
// System headers simply fail resolution and surface as external references.
var cInclude = regexp.MustCompile(`^\s*#\s*include\s*[<"]([^">]+)[">]`)

// cStrategy covers C and C++ preprocessor includes.
type cStrategy struct{}

func (*cStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		if m := cInclude.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
		}
	})

	return dedupe(refs)
}
