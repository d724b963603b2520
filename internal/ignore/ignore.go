// Package ignore implements the exclusion filter that runs before any file
// becomes a graph candidate. It combines gitignore-style rule files, a fixed
// built-in table of non-code artifacts, and the markup presentation rule.
package ignore

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Reason explains why a path was excluded. The values are stable and appear
// verbatim in run diagnostics.
type Reason string

const (
	// ByIgnoreFile means an ignore-file rule matched the path.
	ByIgnoreFile Reason = "by_ignore_file"
	// ByExtension means the path has a built-in binary/media extension.
	ByExtension Reason = "by_extension"
	// ByPattern means a built-in directory name or filename pattern matched.
	ByPattern Reason = "by_pattern"
	// PresentationOnly means the file is markup with no embedded code.
	PresentationOnly Reason = "presentation_only"
)

// Record is a diagnostic entry for one excluded path.
type Record struct {
	Path   string
	Reason Reason
}

// Rule is a single parsed ignore pattern.
type Rule struct {
	// Pattern is the glob, with any leading "!" and "/" stripped.
	Pattern string
	// Negate re-includes paths excluded by an earlier rule.
	Negate bool
	// DirOnly restricts the rule to directories (trailing "/").
	DirOnly bool
	// Anchored roots the pattern at the ruleset base instead of matching
	// basenames at any depth.
	Anchored bool
}

// Ruleset holds the rules parsed from one ignore file, scoped to the
// directory that contained it.
type Ruleset struct {
	// Base is the slash-separated directory of the ignore file, relative to
	// the project root. Empty for a root-level ignore file.
	Base  string
	Rules []Rule
}

// Parse parses gitignore-style content into a Ruleset scoped to base.
// Blank lines and lines starting with "#" are skipped.
func Parse(base, content string) *Ruleset {
	rs := &Ruleset{Base: path.Clean(base)}
	if rs.Base == "." {
		rs.Base = ""
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule := Rule{}
		if strings.HasPrefix(line, "!") {
			rule.Negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			rule.DirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			rule.Anchored = true
			line = line[1:]
		} else if strings.Contains(line, "/") {
			// A pattern with an interior slash is anchored per gitignore.
			rule.Anchored = true
		}
		if line == "" {
			continue
		}
		rule.Pattern = line
		rs.Rules = append(rs.Rules, rule)
	}

	return rs
}

// Matcher composes rulesets with the built-in exclusion table. Rulesets must
// be added outermost first; rules from closer ignore files are evaluated
// later and therefore override farther ones (last match wins).
type Matcher struct {
	sets []*Ruleset
}

// NewMatcher returns a Matcher with no ignore-file rules. The built-in
// table is always active.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// AddRuleset appends a parsed ignore file. Call order matters: add ancestor
// directories before their children.
func (m *Matcher) AddRuleset(rs *Ruleset) {
	if rs != nil && len(rs.Rules) > 0 {
		m.sets = append(m.sets, rs)
	}
}

// Match reports whether the slash-separated path (relative to the project
// root) is excluded, and why. Ignore-file rules are consulted first; a
// negated rule re-includes a path even against the built-in table.
func (m *Matcher) Match(relPath string, isDir bool) (bool, Reason) {
	relPath = strings.TrimPrefix(path.Clean(relPath), "./")

	matched := false
	ignored := false
	for _, rs := range m.sets {
		scoped, ok := rs.scope(relPath)
		if !ok {
			continue
		}
		for _, rule := range rs.Rules {
			if rule.matches(scoped, isDir) {
				matched = true
				ignored = !rule.Negate
			}
		}
	}
	if matched {
		if ignored {
			return true, ByIgnoreFile
		}
		return false, ""
	}

	return matchBuiltin(relPath, isDir)
}

// scope returns relPath relative to the ruleset base, or false when the path
// lies outside the ruleset's directory.
func (rs *Ruleset) scope(relPath string) (string, bool) {
	if rs.Base == "" {
		return relPath, true
	}
	prefix := rs.Base + "/"
	if !strings.HasPrefix(relPath, prefix) {
		return "", false
	}
	return relPath[len(prefix):], true
}

func (r *Rule) matches(scoped string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return false
	}
	if r.Anchored {
		ok, err := doublestar.Match(r.Pattern, scoped)
		return err == nil && ok
	}
	// Unanchored patterns match the basename at any depth.
	if ok, err := doublestar.Match(r.Pattern, path.Base(scoped)); err == nil && ok {
		return true
	}
	ok, err := doublestar.Match("**/"+r.Pattern, scoped)
	return err == nil && ok
}
