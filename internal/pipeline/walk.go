package pipeline

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/depscope/depscope/internal/ignore"
	"github.com/depscope/depscope/internal/inventory"
)

// walkResult carries everything the walk learned.
type walkResult struct {
	candidates []inventory.Candidate
	excluded   map[string]int
	unreadable []string
}

// walk traverses the root depth-first, applying the exclusion filter as it
// goes. Ignore files are discovered by name during the walk; because parent
// directories are visited before their children, rulesets land on the
// matcher outermost first and closer rules override farther ones. Excluded
// directories are skipped whole, so their ignore files are never read.
func (p *runner) walk() (*walkResult, error) {
	res := &walkResult{excluded: make(map[string]int)}

	err := filepath.WalkDir(p.absRoot, func(fullPath string, d fs.DirEntry, err error) error {
		if err != nil {
			if fullPath == p.absRoot {
				return err
			}
			rel := p.rel(fullPath)
			res.unreadable = append(res.unreadable, rel)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if fullPath == p.absRoot {
			p.loadIgnoreFiles(fullPath, "")
			return nil
		}

		rel := p.rel(fullPath)
		if excluded, reason := p.matcher.Match(rel, d.IsDir()); excluded {
			// Exclusion counts are per file. A skipped directory
			// contributes the number of files underneath it.
			if d.IsDir() {
				res.excluded[string(reason)] += countFiles(fullPath)
				return fs.SkipDir
			}
			res.excluded[string(reason)]++
			return nil
		}

		if d.IsDir() {
			p.loadIgnoreFiles(fullPath, rel)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			res.unreadable = append(res.unreadable, rel)
			return nil
		}

		// Markup that carries no embedded code is presentation only and
		// never enters the graph. Only the size-capped head is inspected.
		if ignore.IsMarkup(rel) {
			head, err := readCapped(fullPath, p.opts.MaxFileSize)
			if err != nil {
				res.unreadable = append(res.unreadable, rel)
				return nil
			}
			if !ignore.HasEmbeddedCode(head) {
				res.excluded[string(ignore.PresentationOnly)]++
				return nil
			}
		}

		res.candidates = append(res.candidates, inventory.Candidate{
			RelPath: rel,
			AbsPath: fullPath,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// loadIgnoreFiles parses any configured ignore files found directly in dir.
// Unreadable ignore files are skipped silently; they are advisory input,
// not analysis subjects.
func (p *runner) loadIgnoreFiles(dir, relDir string) {
	for _, name := range p.opts.IgnoreFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		p.matcher.AddRuleset(ignore.Parse(relDir, string(data)))
	}
}

// rel converts an absolute walk path to the canonical slash-separated id.
func (p *runner) rel(fullPath string) string {
	rel, err := filepath.Rel(p.absRoot, fullPath)
	if err != nil {
		return filepath.ToSlash(fullPath)
	}
	return filepath.ToSlash(rel)
}

// countFiles counts the regular files under an excluded directory so the
// diagnostics can report how many files the exclusion removed.
func countFiles(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && d.Type().IsRegular() {
			count++
		}
		return nil
	})
	return count
}

// readCapped reads at most limit bytes of a file. A zero limit reads the
// whole file.
func readCapped(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		return os.ReadFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, err
	}
	return data, nil
}
