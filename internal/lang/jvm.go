package lang

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/topline/internal/model"
)

var (
	javaTypeRe = regexp.MustCompile(`^\s*(?:public|protected|private)?\s*(?:abstract|final)?\s*(?:class|interface|enum)\s+([A-Za-z_]\w*)\b`)
	javaMainRe = regexp.MustCompile(`^\s*public\s+static\s+void\s+main\s*\(`)

	javaExtendsRe    = regexp.MustCompile(`^\s*(?:public|protected|private)?\s*(?:abstract|final)?\s*class\s+([A-Za-z_]\w*)\s+extends\s+([A-Za-z_]\w*)\b`)
	javaImplementsRe = regexp.MustCompile(`^\s*(?:public|protected|private)?\s*(?:abstract|final)?\s*class\s+([A-Za-z_]\w*)\b(?:\s+extends\s+[A-Za-z_]\w*)?\s+implements\s+([^{]+)`)
	javaIfaceExtRe   = regexp.MustCompile(`^\s*(?:public|protected|private)?\s*interface\s+([A-Za-z_]\w*)\s+extends\s+([^{]+)`)

	ktSupertypesRe = regexp.MustCompile(`^\s*(?:public|protected|private|internal)?\s*(?:open|abstract|sealed|data)?\s*(class|interface)\s+([A-Za-z_]\w*)\s*:\s*([^{]+)`)
	ktMainRe       = regexp.MustCompile(`^\s*fun\s+main\s*\(`)
)

func extendsList(groups []string) (string, []ParentSpec) {
	var parents []ParentSpec
	for _, raw := range SplitSupertypes(groups[2]) {
		if name := CleanBaseName(raw); name != "" {
			parents = append(parents, ParentSpec{Rel: m.RelExtends, Name: name})
		}
	}
	return groups[1], parents
}

// ktSupertypes handles Kotlin's single supertype list: a superclass appears
// as a constructor call (with parentheses), everything else is an interface.
func ktSupertypes(groups []string) (string, []ParentSpec) {
	kind, child := groups[1], groups[2]
	raw := SplitSupertypes(groups[3])

	var parents []ParentSpec
	if kind == "interface" {
		for _, p := range raw {
			if name := CleanBaseName(p); name != "" {
				parents = append(parents, ParentSpec{Rel: m.RelExtends, Name: name})
			}
		}
		return child, parents
	}

	type cand struct {
		rel  m.Relation
		name string
	}
	var cands []cand
	hasSuper := false
	for _, p := range raw {
		rel := m.RelImplements
		if strings.Contains(p, "(") && strings.Contains(p, ")") {
			rel = m.RelExtends
			hasSuper = true
		}
		if name := CleanBaseName(p); name != "" {
			cands = append(cands, cand{rel: rel, name: name})
		}
	}
	if hasSuper {
		used := false
		for _, c := range cands {
			if c.rel == m.RelExtends && !used {
				parents = append(parents, ParentSpec{Rel: m.RelExtends, Name: c.name})
				used = true
				continue
			}
			parents = append(parents, ParentSpec{Rel: m.RelImplements, Name: c.name})
		}
		return child, parents
	}
	for i, c := range cands {
		rel := m.RelImplements
		if i == 0 {
			rel = m.RelExtends
		}
		parents = append(parents, ParentSpec{Rel: rel, Name: c.name})
	}
	return child, parents
}

func init() {
	register(&Language{
		Name:       "java",
		Extensions: []string{".java"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: javaTypeRe},
			{Kind: m.SymbolEntrypoint, Pattern: javaMainRe, FixedName: "main"},
		},
		Inherits: []InheritRule{
			{Pattern: javaExtendsRe, Expand: singleExtends},
			{Pattern: javaImplementsRe, Expand: implementsList},
			{Pattern: javaIfaceExtRe, Expand: extendsList},
		},
	})

	register(&Language{
		Name:       "kotlin",
		Extensions: []string{".kt"},
		Style:      blockStyle(),
		Symbols: []SymbolRule{
			{Kind: m.SymbolType, Pattern: javaTypeRe},
			{Kind: m.SymbolEntrypoint, Pattern: ktMainRe, FixedName: "main"},
		},
		Inherits: []InheritRule{
			{Pattern: ktSupertypesRe, Expand: ktSupertypes},
		},
	})
}
