package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	goTypeRe = regexp.MustCompile(`^\s*type\s+([A-Za-z_]\w*)\s+(?:struct|interface)\b`)
	goFuncRe = regexp.MustCompile(`^\s*func\s+(?:\([^)]*\)\s*)?([A-Za-z_]\w*)\s*\(`)
	goMainRe = regexp.MustCompile(`^func\s+main\s*\(\s*\)`)
)

func init() {
	register(&Language{
		Name:       "go",
		Extensions: []string{".go"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: goTypeRe},
			{Kind: m.SymbolEntrypoint, Pattern: goMainRe, FixedName: "main"},
			{Kind: m.SymbolFunc, Pattern: goFuncRe},
		},
	})
}

// blockStyle is the C-family block comment shared by most languages here.
func blockStyle() CommentStyle {
	return CommentStyle{
		Kind:        StyleBlock,
		BlockStart:  "/*",
		BlockPrefix: " * ",
		BlockEnd:    " */",
	}
}
