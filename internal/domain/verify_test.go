package domain

import (
	"testing"

	m "github.com/mouse-blink/topline/internal/model"
)

// annotated builds a realistic annotated Python file: header first, then the
// given body lines.
func annotated(t *testing.T, existing map[m.Field]string, body []string) []string {
	t.Helper()
	language := mustLang(t, "python")
	ex := ExtractSymbols(language, body, m.HeaderLines, nil)
	rec := Merge("x.py", existing, ex, m.HeaderLines+len(body), MergeOptions{Today: "2026-08-30"})
	return append(Render(rec, language.Style, DefaultMaxWidth), body...)
}

func TestVerifyFile_CleanHeader(t *testing.T) {
	lines := annotated(t, nil, []string{"def f():", "    pass", ""})

	diags, verified := VerifyFile(mustLang(t, "python"), "x.py", lines)
	if !verified {
		t.Fatal("file with header must be verified")
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %+v", diags)
	}
}

func TestVerifyFile_PlaceholderWithFunctions(t *testing.T) {
	// Header synthesized against an empty body, then functions added below
	// it: Key funcs is now placeholder while the file declares functions.
	header := annotated(t, nil, nil)
	lines := append(header, "def added_later():", "    pass", "")

	diags, verified := VerifyFile(mustLang(t, "python"), "x.py", lines)
	if !verified {
		t.Fatal("expected verification")
	}
	if len(diags) != 1 || diags[0].Field != m.FieldKeyFuncs {
		t.Fatalf("diags = %+v", diags)
	}
}

func TestVerifyFile_PopulatedWithoutDeclarations(t *testing.T) {
	// A header claiming an entrypoint over a body that has none, as left
	// behind by a hand edit.
	language := mustLang(t, "python")
	rec := Merge("x.py", nil, Extraction{}, 0, MergeOptions{Today: "2026-08-30"})
	rec.Fields[m.FieldEntrypoints] = m.FieldValue{Text: "stale@L99", Origin: m.OriginPreserved}
	lines := append(Render(rec, language.Style, DefaultMaxWidth), "x = 1", "")

	diags, verified := VerifyFile(language, "x.py", lines)
	if !verified {
		t.Fatal("expected verification")
	}
	if len(diags) != 1 || diags[0].Field != m.FieldEntrypoints {
		t.Fatalf("diags = %+v", diags)
	}
}

func TestVerifyFile_NoFunctionsNoDiagnostic(t *testing.T) {
	// Zero functions plus placeholder Key funcs is consistent.
	lines := annotated(t, nil, []string{"x = 1", ""})

	diags, verified := VerifyFile(mustLang(t, "python"), "x.py", lines)
	if !verified {
		t.Fatal("expected verification")
	}
	if len(diags) != 0 {
		t.Fatalf("diags = %+v", diags)
	}
}

func TestVerifyFile_SkipsUnannotated(t *testing.T) {
	_, verified := VerifyFile(mustLang(t, "python"), "x.py", []string{"def f():", "    pass"})
	if verified {
		t.Fatal("file without marker must not count as verified")
	}
}
