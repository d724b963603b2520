package extract

import "regexp"

var (
	htmlScriptSrc  = regexp.MustCompile(`<script[^>]*\ssrc=["']([^"']+)["']`)
	htmlLinkHref   = regexp.MustCompile(`<link[^>]*\shref=["']([^"']+)["']`)
	htmlTmplInc    = regexp.MustCompile(`\{%\s*(?:include|extends|import)\s+["']([^"']+)["']`)
	htmlTmplMustac = regexp.MustCompile(`\{\{>\s*([\w./-]+)`)
)

// htmlStrategy applies only to markup files that carry embedded code (pure
// presentation files were already excluded): script and stylesheet
// references plus common template-include directives.
type htmlStrategy struct{}

func (*htmlStrategy) Extract(content []byte) []string {
	var refs []string

	collect := func(re *regexp.Regexp, line string) {
		for _, m := range re.FindAllStringSubmatch(line, -1) {
			if !isRemoteRef(m[1]) {
				refs = append(refs, m[1])
			}
		}
	}

	scanLines(content, func(line string) {
		collect(htmlScriptSrc, line)
		collect(htmlLinkHref, line)
		collect(htmlTmplInc, line)
		collect(htmlTmplMustac, line)
	})

	return dedupe(refs)
}
