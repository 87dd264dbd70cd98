package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	rsItemRe    = regexp.MustCompile(`^\s*(?:pub\s+)?(?:struct|enum|trait)\s+([A-Za-z_]\w*)\b`)
	rsFnRe      = regexp.MustCompile(`^\s*(?:pub\s+)?fn\s+([A-Za-z_]\w*)\s*\(`)
	rsMainRe    = regexp.MustCompile(`^\s*(?:pub\s+)?fn\s+main\s*\(\s*\)`)
	rsImplForRe = regexp.MustCompile(`^\s*impl\s+(?:<[^>]+>\s+)?([A-Za-z_]\w*)\s+for\s+([A-Za-z_]\w*)\b`)
)

func init() {
	register(&Language{
		Name:       "rust",
		Extensions: []string{".rs"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: rsItemRe},
			{Kind: m.SymbolEntrypoint, Pattern: rsMainRe, FixedName: "main"},
			{Kind: m.SymbolFunc, Pattern: rsFnRe},
		},
		Inherits: []InheritRule{
			{
				Pattern: rsImplForRe,
				// Only meaningful when the implementing type is declared
				// in this file, so Child@L.. points at a real definition.
				ChildLocalOnly: true,
				Expand: func(groups []string) (string, []ParentSpec) {
					trait := CleanBaseName(groups[1])
					impl := CleanBaseName(groups[2])
					if trait == "" || impl == "" {
						return "", nil
					}
					return impl, []ParentSpec{{Rel: m.RelImplements, Name: trait}}
				},
			},
		},
	})
}
