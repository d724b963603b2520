package extract

import "regexp"

var (
	phpInclude = regexp.MustCompile(`(?:include|require)(?:_once)?\s*\(?\s*['"]([^'"]+)['"]`)
	phpUse     = regexp.MustCompile(`^\s*use\s+([\w\\]+)`)
)

// phpStrategy handles include/require directives and namespace use
// statements.
type phpStrategy struct{}

func (*phpStrategy) Extract(content []byte) []string {
	var refs []string

	scanLines(content, func(line string) {
		for _, m := range phpInclude.FindAllStringSubmatch(line, -1) {
			refs = append(refs, m[1])
		}
		if m := phpUse.FindStringSubmatch(line); m != nil {
			refs = append(refs, m[1])
		}
	})

	return dedupe(refs)
}
