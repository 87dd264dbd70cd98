package lang

import (
	"regexp"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	csTypeRe       = regexp.MustCompile(`^\s*(?:public|protected|private|internal)?\s*(?:abstract|sealed|static|partial)?\s*(?:class|interface|struct|enum)\s+([A-Za-z_]\w*)\b`)
	csSupertypesRe = regexp.MustCompile(`^\s*(?:public|protected|private|internal)?\s*(?:abstract|sealed|static|partial)?\s*(class|interface|struct)\s+([A-Za-z_]\w*)\s*:\s*([^{]+)`)
	csMainRe       = regexp.MustCompile(`^\s*(?:public|internal)?\s*static\s+(?:async\s+)?(?:void|int|Task)\s+Main\s*\(`)
)

// csSupertypes: a class's first base is its superclass and the rest are
// interfaces; interfaces only extend; structs only implement.
func csSupertypes(groups []string) (string, []ParentSpec) {
	kind, child := groups[1], groups[2]

	var names []string
	for _, raw := range SplitSupertypes(groups[3]) {
		if name := CleanBaseName(raw); name != "" {
			names = append(names, name)
		}
	}

	var parents []ParentSpec
	switch kind {
	case "interface":
		for _, name := range names {
			parents = append(parents, ParentSpec{Rel: m.RelExtends, Name: name})
		}
	case "struct":
		for _, name := range names {
			parents = append(parents, ParentSpec{Rel: m.RelImplements, Name: name})
		}
	default:
		for i, name := range names {
			rel := m.RelImplements
			if i == 0 {
				rel = m.RelExtends
			}
			parents = append(parents, ParentSpec{Rel: rel, Name: name})
		}
	}
	return child, parents
}

func init() {
	register(&Language{
		Name:       "csharp",
		Extensions: []string{".cs"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: csTypeRe},
			{Kind: m.SymbolEntrypoint, Pattern: csMainRe, FixedName: "Main"},
		},
		Inherits: []InheritRule{
			{Pattern: csSupertypesRe, Expand: csSupertypes},
		},
	})
}
