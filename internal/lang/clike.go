package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

// cLikeFnRe is a best-effort match for "<type> name(args) {" declarations in
// languages we carry no dedicated table for.
var cLikeFnRe = regexp.MustCompile(`^\s*[A-Za-z_][\w\s*]+\s+([A-Za-z_]\w*)\s*\([^;]*\)\s*\{`)

func init() {
	register(&Language{
		Name:       "c",
		Extensions: []string{".c", ".h", ".cc", ".cpp", ".hpp"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolEntrypoint, Pattern: regexp.MustCompile(`^\s*(?:int|void)\s+main\s*\(`), FixedName: "main"},
			{Kind: m.SymbolFunc, Pattern: cLikeFnRe},
		},
	})

	// Block-commented languages that only get the generic function rule.
	register(&Language{
		Name:       "swift",
		Extensions: []string{".swift"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolFunc, Pattern: regexp.MustCompile(`^\s*(?:public\s+|private\s+|internal\s+)?func\s+([A-Za-z_]\w*)\s*\(`)},
		},
	})

	register(&Language{
		Name:       "php",
		Extensions: []string{".php"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: regexp.MustCompile(`^\s*(?:abstract\s+|final\s+)?(?:class|interface|trait)\s+([A-Za-z_]\w*)\b`)},
			{Kind: m.SymbolFunc, Pattern: regexp.MustCompile(`^\s*(?:public\s+|protected\s+|private\s+|static\s+)*function\s+([A-Za-z_]\w*)\s*\(`)},
		},
	})

	register(&Language{
		Name:       "css",
		Extensions: []string{".css", ".scss", ".less"},
		Style:      blockStyle(),
	})
}
