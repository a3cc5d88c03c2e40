package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"evtxview/internal/app/errors"
)

// Matcher decides which files inside a directory argument are ingested
type Matcher interface {
	Match(path string) bool
}

type matcher struct {
	patterns []glob.Glob
}

// NewMatcher compiles include patterns. A pattern starting with **/ also matches at
// the directory root.
func NewMatcher(includes []string) (Matcher, error) {
	m := &matcher{patterns: make([]glob.Glob, 0, len(includes)*2)}

	for _, p := range includes {
		variants := []string{p}
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			variants = append(variants, rest)
		}

		for _, v := range variants {
			g, err := glob.Compile(strings.ToLower(v), '/')
			if err != nil {
				return nil, fmt.Errorf("%w: include pattern '%s': %w", errors.ErrInvalidConfig, p, err)
			}

			m.patterns = append(m.patterns, g)
		}
	}

	return m, nil
}

// Match reports whether a path relative to the scanned directory is included.
// Matching ignores case.
func (m *matcher) Match(path string) bool {
	path = strings.ToLower(strings.TrimPrefix(filepath.ToSlash(path), "./"))

	for _, g := range m.patterns {
		if g.Match(path) {
			return true
		}
	}

	return false
}

// Discover expands the argument list into files. Files named directly are always
// kept; directories are walked and filtered by m. Hidden directories are skipped.
// The order is the argument order, then lexical order within a directory.
func Discover(args []string, m Matcher) ([]string, error) {
	seen := make(map[string]bool)
	files := make([]string, 0, len(args))

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenSource, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(arg))
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != arg && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			rel, err := filepath.Rel(arg, path)
			if err != nil {
				return err
			}

			if m.Match(rel) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrFailedToOpenSource, err)
		}
	}

	return files, nil
}
