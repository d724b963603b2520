package extract

import (
	"regexp"
	"strings"
)

var (
	goImportLine = regexp.MustCompile(`^\s*import\s+(?:[\w.]+\s+)?"([^"]+)"`)
	goBlockEntry = regexp.MustCompile(`^\s*(?:[\w.]+\s+)?"([^"]+)"`)
)

// goStrategy extracts import paths from single import statements and
// parenthesized import blocks, including aliased and dot imports.
type goStrategy struct{}

func (*goStrategy) Extract(content []byte) []string {
	var refs []string
	inBlock := false

	scanLines(content, func(line string) {
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock:
			if strings.HasPrefix(trimmed, ")") {
				inBlock = false
				return
			}
			if m := goBlockEntry.FindStringSubmatch(line); m != nil {
				refs = append(refs, m[1])
			}
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
		default:
			if m := goImportLine.FindStringSubmatch(line); m != nil {
				refs = append(refs, m[1])
			}
		}
	})

	return dedupe(refs)
}
