package domain

import (
	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// extractEdges walks the body with the language's inheritance rules. Every
// rule is tried on every line, since one declaration can carry both an
// extends and an implements clause. In-file parents resolve to their
// declaration line; unknown parents go through the repository index, and
// stay bare names when resolution is off or ambiguous.
func extractEdges(language *lang.Language, body []string, bodyOffset int, typeLines map[string]int, index Index) []m.RelationEdge {
	if len(language.Inherits) == 0 {
		return nil
	}

	var edges []m.RelationEdge
	for i, line := range body {
		if len(line) > maxScanLineLen {
			continue
		}
		lineNo := bodyOffset + i + 1

		for _, rule := range language.Inherits {
			groups := rule.Pattern.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			child, parents := rule.Expand(groups)
			if child == "" || len(parents) == 0 {
				continue
			}
			if rule.ChildLocalOnly {
				if _, local := typeLines[child]; !local {
					continue
				}
			}

			// Child@L.. points at the declaration when known, else at
			// the matching line itself.
			childLine := lineNo
			if decl, ok := typeLines[child]; ok {
				childLine = decl
			}
			childSym := m.Symbol{Kind: m.SymbolType, Name: child, Line: childLine}

			for _, p := range parents {
				if p.Name == "" {
					continue
				}
				edges = append(edges, m.RelationEdge{
					Child:  childSym,
					Rel:    p.Rel,
					Parent: resolveParent(p.Name, typeLines, index),
				})
				if len(edges) >= maxInheritEdges {
					return edges
				}
			}
		}
	}
	return edges
}

// resolveParent produces the parent address: in-file line when the name is
// declared locally, a cross-file pointer when the index finds exactly one
// candidate, otherwise the bare name. Ambiguity is never guessed.
func resolveParent(name string, typeLines map[string]int, index Index) m.ParentRef {
	if line, ok := typeLines[name]; ok {
		return m.ParentRef{Name: name, Line: line}
	}
	if index != nil {
		if refs := index.Lookup(name); len(refs) == 1 {
			return m.ParentRef{Name: name, File: refs[0].File, Line: refs[0].Line}
		}
	}
	return m.ParentRef{Name: name}
}

func edgeList(edges []m.RelationEdge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.String())
	}
	return out
}
