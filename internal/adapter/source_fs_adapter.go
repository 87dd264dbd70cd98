// Package adapter contains filesystem, persistence and UI adapters for the
// topline CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/mouse-blink/topline/internal/model"
)

// SourceFS abstracts the filesystem operations the annotation engine relies
// on. It hides direct `os` access so the domain logic can be tested without
// touching the disk.
type SourceFS interface {
	// Discover expands files and directories into the flat, sorted list of
	// files to process. Directory walks honor .gitignore and skip VCS/build
	// directories. Explicitly named paths that do not exist are kept, so the
	// batch can record them as per-file failures instead of aborting.
	Discover(paths []m.Path) ([]m.Path, error)

	// ReadLines loads a file and splits it into lines. Joining the result
	// with "\n" reproduces the file byte for byte.
	ReadLines(path m.Path) ([]string, error)

	// WriteLinesAtomic joins lines with "\n" and replaces the file via a
	// temporary file and rename, so a crash mid-write never leaves a
	// half-written file.
	WriteLinesAtomic(path m.Path, lines []string) error

	// RelPath returns the forward-slash path of target relative to root,
	// falling back to target itself when it is outside root.
	RelPath(root, target m.Path) string
}

// skipDirs are directories never descended into during discovery.
var skipDirs = map[string]struct{}{
	"__pycache__":  {},
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	"venv":         {},
	".venv":        {},
	"build":        {},
	"dist":         {},
	"target":       {},
	".tox":         {},
	".mypy_cache":  {},
	".ruff_cache":  {},
}

// LocalSourceFS is the concrete SourceFS backed by the OS filesystem.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// Discover expands the argument list into the files to process.
func (a *LocalSourceFS) Discover(paths []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})
	var out []m.Path

	add := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			out = append(out, m.Path(p))
		}
	}

	for _, p := range paths {
		info, err := os.Stat(string(p))
		if err != nil {
			// A missing explicit path stays in the list; the caller
			// records a per-file failure and the batch continues.
			add(string(p))
			continue
		}

		if !info.IsDir() {
			add(string(p))
			continue
		}

		gi := loadGitignore(string(p))
		err = filepath.WalkDir(string(p), func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable entries are skipped, not fatal
			}
			name := d.Name()

			if d.IsDir() {
				if path == string(p) {
					return nil
				}
				if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") || d.Type()&os.ModeSymlink != 0 {
				return nil
			}

			if gi != nil {
				if rel, relErr := filepath.Rel(string(p), path); relErr == nil && gi.MatchesPath(rel) {
					return nil
				}
			}

			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ReadLines implements SourceFS.
func (a *LocalSourceFS) ReadLines(path m.Path) ([]string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

// WriteLinesAtomic implements SourceFS using temp-file-then-rename in the
// target's directory, inheriting the original mode when the file exists.
func (a *LocalSourceFS) WriteLinesAtomic(path m.Path, lines []string) error {
	dir := filepath.Dir(string(path))

	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, ".topline-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.WriteString(strings.Join(lines, "\n"))
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", errors.Join(werr, cerr))
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// RelPath implements SourceFS.
func (a *LocalSourceFS) RelPath(root, target m.Path) string {
	absRoot, err1 := filepath.Abs(string(root))
	absTarget, err2 := filepath.Abs(string(target))
	if err1 == nil && err2 == nil {
		if rel, err := filepath.Rel(absRoot, absTarget); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(string(target))
}
