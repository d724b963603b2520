package extract

import "regexp"

var (
	csUsing      = regexp.MustCompile(`^\s*using\s+(?:static\s+)?([\w.]+)\s*;`)
	csUsingAlias = regexp.MustCompile(`^\s*using\s+\w+\s*=\s*([\w.]+)\s*;`)
)

// csharpStrategy extracts namespace imports, including static and aliased
// forms. "using" statements and declarations (resource scopes) do not match
// the dotted-identifier-plus-semicolon shape and are ignored.
type csharpStrategy struct{}

func (*csharpStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		if m := csUsingAlias.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
			return
		}
		if m := csUsing.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
		}
	})

	return dedupe(refs)
}
