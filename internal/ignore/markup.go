package ignore

import (
	"bytes"
	"path"
	"strings"
)

// markupExtensions are the HTML-like extensions subject to the
// presentation-only rule.
var markupExtensions = map[string]struct{}{
	".html":  {},
	".htm":   {},
	".xhtml": {},
}

// embeddedCodeMarkers are directives whose presence means a markup file
// participates in the dependency graph after all: client scripts, template
// engines, and server-side includes.
var embeddedCodeMarkers = [][]byte{
	[]byte("<script"),
	[]byte("<?php"),
	[]byte("<%"),
	[]byte("{{"),
	[]byte("{%"),
	[]byte("<!--#include"),
}

// IsMarkup reports whether the path has an HTML-like extension.
func IsMarkup(relPath string) bool {
	_, ok := markupExtensions[strings.ToLower(path.Ext(relPath))]
	return ok
}

// HasEmbeddedCode reports whether markup content carries script, template,
// or include directives. Pure presentation files return false and are
// excluded with reason PresentationOnly.
func HasEmbeddedCode(content []byte) bool {
	lower := bytes.ToLower(content)
	for _, marker := range embeddedCodeMarkers {
		if bytes.Contains(lower, marker) {
			return true
		}
	}
	return false
}
