package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	jsClassRe = regexp.MustCompile(`^\s*export\s+default\s+class\s+([A-Za-z_$][\w$]*)\b|^\s*export\s+class\s+([A-Za-z_$][\w$]*)\b|^\s*class\s+([A-Za-z_$][\w$]*)\b`)
	jsFnRe    = regexp.MustCompile(`^\s*export\s+function\s+([A-Za-z_$][\w$]*)\s*\(|^\s*function\s+([A-Za-z_$][\w$]*)\s*\(|^\s*export\s+const\s+([A-Za-z_$][\w$]*)\s*=\s*\(|^\s*const\s+([A-Za-z_$][\w$]*)\s*=\s*\(`)
	jsExtendsRe = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)\s+extends\s+([A-Za-z_$][\w$]*)`)
	jsDefaultRe = regexp.MustCompile(`^export\s+default\b`)

	tsClassRe      = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)\b`)
	tsInterfaceRe  = regexp.MustCompile(`^\s*(?:export\s+)?interface\s+([A-Za-z_$][\w$]*)\b`)
	tsEnumRe       = regexp.MustCompile(`^\s*(?:export\s+)?enum\s+([A-Za-z_$][\w$]*)\b`)
	tsTypeAliasRe  = regexp.MustCompile(`^\s*(?:export\s+)?type\s+([A-Za-z_$][\w$]*)\b`)
	tsImplementsRe = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][\w$]*)\b(?:\s+extends\s+[A-Za-z_$][\w$]*)?\s+implements\s+([^{]+)`)
)

func singleExtends(groups []string) (string, []ParentSpec) {
	return groups[1], []ParentSpec{{Rel: m.RelExtends, Name: CleanBaseName(groups[2])}}
}

func implementsList(groups []string) (string, []ParentSpec) {
	var parents []ParentSpec
	for _, raw := range SplitSupertypes(groups[2]) {
		if name := CleanBaseName(raw); name != "" {
			parents = append(parents, ParentSpec{Rel: m.RelImplements, Name: name})
		}
	}
	return groups[1], parents
}

func init() {
	register(&Language{
		Name:       "javascript",
		Extensions: []string{".js", ".jsx"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolEntrypoint, Pattern: jsDefaultRe, FixedName: "default-export", Continue: true},
			{Kind: m.SymbolType, Pattern: jsClassRe},
			{Kind: m.SymbolFunc, Pattern: jsFnRe},
		},
		Inherits: []InheritRule{
			{Pattern: jsExtendsRe, Expand: singleExtends},
		},
	})

	register(&Language{
		Name:       "typescript",
		Extensions: []string{".ts", ".tsx"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolEntrypoint, Pattern: jsDefaultRe, FixedName: "default-export", Continue: true},
			{Kind: m.SymbolType, Pattern: tsClassRe},
			{Kind: m.SymbolType, Pattern: tsInterfaceRe},
			{Kind: m.SymbolType, Pattern: tsEnumRe},
			{Kind: m.SymbolType, Pattern: tsTypeAliasRe},
			{Kind: m.SymbolFunc, Pattern: jsFnRe},
		},
		Inherits: []InheritRule{
			{Pattern: jsExtendsRe, Expand: singleExtends},
			{Pattern: tsImplementsRe, Expand: implementsList},
		},
	})
}
