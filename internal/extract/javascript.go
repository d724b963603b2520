package extract

import "regexp"

var (
	jsFromImport    = regexp.MustCompile(`(?:import|export)\s+[^'"]*?from\s+['"]([^'"]+)['"]`)
	jsBareImport    = regexp.MustCompile(`^\s*import\s+['"]([^'"]+)['"]`)
	jsRequireCall   = regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	jsDynamicImport = regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)`)
)

// javascriptStrategy covers JavaScript, TypeScript, and the single-file
// component formats that embed them (Vue, Svelte): ES module imports and
// re-exports, CommonJS require, and dynamic import().
type javascriptStrategy struct{}

func (*javascriptStrategy) Extract(content []byte) []string {
	var refs []string

	collect := func(re *regexp.Regexp, line string) {
		for _, m := range re.FindAllStringSubmatch(line, -1) {
			if !isRemoteRef(m[1]) {
				refs = append(refs, m[1])
			}
		}
	}

	scanLines(content, func(line string) {
		collect(jsFromImport, line)
		collect(jsBareImport, line)
		collect(jsRequireCall, line)
		collect(jsDynamicImport, line)
	})

	return dedupe(refs)
}
