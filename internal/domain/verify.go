package domain

import (
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/topline/internal/adapter"
	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// VerifyFile re-derives the completeness booleans for one marker-carrying
// file and reports every violated field:
//
//   - Key funcs must be non-placeholder iff the body declares a function.
//   - Entrypoints must be non-placeholder iff the body has an entrypoint
//     idiom.
//   - Key types and Index are optional either way.
//
// The second return value is false when the file carries no header and was
// therefore not verified.
func VerifyFile(language *lang.Language, relPath string, lines []string) ([]m.Diagnostic, bool) {
	_, rest := SplitProlog(lines, language.Name)
	header, body, state := LocateHeader(rest)
	if state != m.HeaderPresent {
		return nil, false
	}

	fields := ParseHeaderFields(header)
	ex := ExtractSymbols(language, body, 0, nil)

	var diags []m.Diagnostic
	check := func(f m.Field, has bool) {
		empty := IsPlaceholder(fields[f])
		switch {
		case has && empty:
			diags = append(diags, m.Diagnostic{
				Path:   relPath,
				Field:  f,
				Detail: fmt.Sprintf("%s is placeholder but the file has content for it", f),
			})
		case !has && !empty:
			diags = append(diags, m.Diagnostic{
				Path:   relPath,
				Field:  f,
				Detail: fmt.Sprintf("%s is populated but the file has no matching declaration", f),
			})
		}
	}

	check(m.FieldKeyFuncs, len(ex.Funcs) > 0)
	check(m.FieldEntrypoints, len(ex.Entrypoints) > 0)

	return diags, true
}

// VerifyBatch runs the verifier over every path, aggregating per-file
// diagnostics. Unsupported and unreadable files are skipped; the batch never
// fails because of one bad file.
func VerifyBatch(fs adapter.SourceFS, root m.Path, paths []m.Path) m.VerifyReport {
	var report m.VerifyReport

	for _, path := range paths {
		language := lang.ForExtension(filepath.Ext(string(path)))
		if language == nil {
			continue
		}
		lines, err := fs.ReadLines(path)
		if err != nil {
			continue
		}

		diags, verified := VerifyFile(language, fs.RelPath(root, path), lines)
		if !verified {
			continue
		}
		report.Processed++
		report.Diagnostics = append(report.Diagnostics, diags...)
	}

	return report
}
