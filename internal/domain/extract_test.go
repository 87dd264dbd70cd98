package domain

import (
	"strings"
	"testing"

	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

func mustLang(t *testing.T, name string) *lang.Language {
	t.Helper()
	l, ok := lang.Languages[name]
	if !ok {
		t.Fatalf("language %q not registered", name)
	}
	return l
}

func TestExtractSymbols_Python(t *testing.T) {
	body := []string{
		"import os",
		"",
		"class Widget:",
		"    def render(self):",
		"        pass",
		"",
		"def helper():",
		"    pass",
		"",
		`if __name__ == "__main__":`,
		"    helper()",
	}

	ex := ExtractSymbols(mustLang(t, "python"), body, 0, nil)

	if len(ex.Types) != 1 || ex.Types[0].Name != "Widget" || ex.Types[0].Line != 3 {
		t.Fatalf("types = %+v", ex.Types)
	}
	if len(ex.Funcs) != 2 {
		t.Fatalf("funcs = %+v", ex.Funcs)
	}
	if ex.Funcs[0].Addr() != "render@L4" || ex.Funcs[1].Addr() != "helper@L7" {
		t.Fatalf("func addrs = %s, %s", ex.Funcs[0].Addr(), ex.Funcs[1].Addr())
	}
	if len(ex.Entrypoints) != 1 || ex.Entrypoints[0].Addr() != "__main__@L10" {
		t.Fatalf("entrypoints = %+v", ex.Entrypoints)
	}
	if ex.TypeLines["Widget"] != 3 {
		t.Fatalf("TypeLines = %v", ex.TypeLines)
	}
}

func TestExtractSymbols_BodyOffset(t *testing.T) {
	// Two prolog lines plus the header block precede the body, so a symbol
	// on body line 3 lands at 2 + 20 + 3.
	body := []string{"", "", "def target():"}

	ex := ExtractSymbols(mustLang(t, "python"), body, 2+m.HeaderLines, nil)

	if len(ex.Funcs) != 1 || ex.Funcs[0].Addr() != "target@L25" {
		t.Fatalf("funcs = %+v", ex.Funcs)
	}
}

func TestExtractSymbols_GoMainIsEntrypointOnly(t *testing.T) {
	body := []string{
		"package main",
		"",
		"func main() {",
		"}",
		"",
		"func run() error {",
		"}",
	}

	ex := ExtractSymbols(mustLang(t, "go"), body, 0, nil)

	if len(ex.Entrypoints) != 1 || ex.Entrypoints[0].Name != "main" {
		t.Fatalf("entrypoints = %+v", ex.Entrypoints)
	}
	for _, f := range ex.Funcs {
		if f.Name == "main" {
			t.Fatalf("main must not double as a plain function: %+v", ex.Funcs)
		}
	}
	if len(ex.Funcs) != 1 || ex.Funcs[0].Name != "run" {
		t.Fatalf("funcs = %+v", ex.Funcs)
	}
}

func TestExtractSymbols_DefaultExportClass(t *testing.T) {
	body := []string{
		"export default class App extends Component {",
		"}",
	}

	for _, name := range []string{"javascript", "typescript"} {
		ex := ExtractSymbols(mustLang(t, name), body, 0, nil)

		// The line carries both the default-export entrypoint and the
		// class declaration.
		if len(ex.Entrypoints) != 1 || ex.Entrypoints[0].Name != "default-export" {
			t.Fatalf("%s entrypoints = %+v", name, ex.Entrypoints)
		}
		if len(ex.Types) != 1 || ex.Types[0].Name != "App" {
			t.Fatalf("%s types = %+v", name, ex.Types)
		}
	}
}

func TestExtractSymbols_DedupeByName(t *testing.T) {
	body := []string{
		"def f():",
		"    pass",
		"def f():",
		"    pass",
	}

	ex := ExtractSymbols(mustLang(t, "python"), body, 0, nil)

	if len(ex.Funcs) != 1 || ex.Funcs[0].Line != 1 {
		t.Fatalf("duplicate names must keep the first occurrence, got %+v", ex.Funcs)
	}
}

func TestExtractSymbols_LongLinesSkipped(t *testing.T) {
	body := []string{
		"def visible():" + strings.Repeat(" ", 2),
		"def buried():  # " + strings.Repeat("x", maxScanLineLen),
	}

	ex := ExtractSymbols(mustLang(t, "python"), body, 0, nil)

	if len(ex.Funcs) != 1 || ex.Funcs[0].Name != "visible" {
		t.Fatalf("funcs = %+v", ex.Funcs)
	}
}

func TestExtractSymbols_CapsApplyAtMerge(t *testing.T) {
	var body []string
	for _, n := range []string{"A", "B", "C", "D", "E", "F"} {
		body = append(body, "class "+n+":", "    pass")
	}

	ex := ExtractSymbols(mustLang(t, "python"), body, 0, nil)

	// Extraction is uncapped; the cap lands in the rendered field.
	if len(ex.Types) != 6 {
		t.Fatalf("types = %+v", ex.Types)
	}
	rec := Merge("x.py", nil, ex, len(body), MergeOptions{Today: "2026-08-30"})
	got := rec.Value(m.FieldKeyTypes)
	if strings.Count(got, "@") != maxTypeSymbols {
		t.Fatalf("Key types must cap at %d entries, got %q", maxTypeSymbols, got)
	}
	if !strings.HasPrefix(got, "A@L1") {
		t.Fatalf("Key types = %q", got)
	}
}

func TestScanTypeLines_Uncapped(t *testing.T) {
	var body []string
	for _, n := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		body = append(body, "class "+n+":")
	}

	types := ScanTypeLines(mustLang(t, "python"), body, 0)

	if len(types) != 7 {
		t.Fatalf("types = %v", types)
	}
	if types["G"] != 7 {
		t.Fatalf("G at %d", types["G"])
	}
}
