package domain

import (
	"path/filepath"

	"github.com/mouse-blink/topline/internal/adapter"
	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// Index answers "where is this type declared?" across the repository.
// Implementations must be read-only; the search strategy can change without
// touching the merge logic.
type Index interface {
	// Lookup returns every known declaration site for a type name.
	Lookup(name string) []m.CrossFileRef
}

// snapshotIndex is built once from the file list taken before any write in
// the run, so resolution results do not depend on per-file processing order.
type snapshotIndex struct {
	types map[string][]m.CrossFileRef
}

// Lookup implements Index.
func (idx *snapshotIndex) Lookup(name string) []m.CrossFileRef {
	return idx.types[name]
}

// BuildIndex scans every supported file in paths for type declarations and
// records them with post-insertion line numbers, as if the fixed header were
// already in place. Unreadable files are skipped; a bad file never aborts
// the snapshot.
func BuildIndex(fs adapter.SourceFS, root m.Path, paths []m.Path) Index {
	idx := &snapshotIndex{types: make(map[string][]m.CrossFileRef)}

	for _, path := range paths {
		language := lang.ForExtension(filepath.Ext(string(path)))
		if language == nil {
			continue
		}

		lines, err := fs.ReadLines(path)
		if err != nil {
			continue
		}

		prolog, rest := SplitProlog(lines, language.Name)
		_, body, _ := LocateHeader(rest)

		bodyOffset := len(prolog) + m.HeaderLines
		rel := fs.RelPath(root, path)
		for name, line := range ScanTypeLines(language, body, bodyOffset) {
			idx.types[name] = append(idx.types[name], m.CrossFileRef{File: rel, Line: line})
		}
	}

	return idx
}
