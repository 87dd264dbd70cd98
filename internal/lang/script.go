package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

func hashStyle() CommentStyle {
	return CommentStyle{Kind: StyleLine, LinePrefix: "# "}
}

func init() {
	register(&Language{
		Name:       "shell",
		Extensions: []string{".sh", ".bash", ".zsh", ".fish", ".ps1"},
		Style:      hashStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolFunc, Pattern: regexp.MustCompile(`^\s*(?:function\s+)?([A-Za-z_]\w*)\s*\(\s*\)\s*\{`)},
		},
	})

	register(&Language{
		Name:       "ruby",
		Extensions: []string{".rb"},
		Style:      hashStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: regexp.MustCompile(`^\s*(?:class|module)\s+([A-Z]\w*)\b`)},
			{Kind: m.SymbolFunc, Pattern: regexp.MustCompile(`^\s*def\s+(?:self\.)?([a-z_]\w*[?!=]?)`)},
		},
		Inherits: []InheritRule{
			{
				Pattern: regexp.MustCompile(`^\s*class\s+([A-Z]\w*)\s*<\s*([A-Za-z_][\w:]*)`),
				Expand:  singleExtends,
			},
		},
	})

	register(&Language{
		Name:       "yaml",
		Extensions: []string{".yml", ".yaml"},
		Style:      hashStyle(),
	})

	register(&Language{
		Name:       "sql",
		Extensions: []string{".sql"},
		Style:      CommentStyle{Kind: StyleLine, LinePrefix: "-- "},
	})

	register(&Language{
		Name:       "lua",
		Extensions: []string{".lua"},
		Style:      CommentStyle{Kind: StyleLine, LinePrefix: "-- "},
		Symbols: []SymbolRule{
			{Kind: m.SymbolFunc, Pattern: regexp.MustCompile(`^\s*(?:local\s+)?function\s+([A-Za-z_][\w.:]*)\s*\(`)},
		},
	})
}
