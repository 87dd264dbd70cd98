package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	pyClassRe   = regexp.MustCompile(`^\s*class\s+([A-Za-z_]\w*)\s*[(:]`)
	pyDefRe     = regexp.MustCompile(`^\s*def\s+([A-Za-z_]\w*)\s*\(`)
	pyMainRe    = regexp.MustCompile(`^if\s+__name__\b.*__main__`)
	pyInheritRe = regexp.MustCompile(`^\s*class\s+([A-Za-z_]\w*)\s*\(([^)]*)\)\s*:`)
)

func init() {
	register(&Language{
		Name:       "python",
		Extensions: []string{".py", ".pyi"},
		// Line comments keep a real module docstring as the first
		// statement, since comments are invisible to the parser.
		Style:            CommentStyle{Kind: StyleLine, LinePrefix: "# "},
		DocstringPurpose: true,
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: pyClassRe},
			{Kind: m.SymbolFunc, Pattern: pyDefRe},
			{Kind: m.SymbolEntrypoint, Pattern: pyMainRe, FixedName: "__main__"},
		},
		Inherits: []InheritRule{
			{
				Pattern: pyInheritRe,
				// First base is the superclass, the rest are mixins.
				Expand: func(groups []string) (string, []ParentSpec) {
					var parents []ParentSpec
					for i, raw := range SplitSupertypes(groups[2]) {
						name := CleanBaseName(raw)
						if name == "" {
							continue
						}
						rel := m.RelExtends
						if i > 0 {
							rel = m.RelMixin
						}
						parents = append(parents, ParentSpec{Rel: rel, Name: name})
					}
					return groups[1], parents
				},
			},
		},
	})
}
