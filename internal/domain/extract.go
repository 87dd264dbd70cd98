package domain

import (
	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// Symbol list caps keep the header's fixed lines useful; extraction itself
// is uncapped.
const (
	maxTypeSymbols  = 4
	maxFuncSymbols  = 6
	maxEntrypoints  = 2
	maxInheritEdges = 6
)

// Lines longer than this are treated as data, not code.
const maxScanLineLen = 5000

// Extraction is everything the extractor derives from one file body.
type Extraction struct {
	Types       []m.Symbol
	Funcs       []m.Symbol
	Entrypoints []m.Symbol
	Edges       []m.RelationEdge

	// TypeLines maps every type name to its declaration line, uncapped.
	// Used for in-file parent resolution and by the repository index.
	TypeLines map[string]int
}

// ExtractSymbols scans the body with the language's pattern tables. Line
// numbers are 1-based positions in the final post-insertion layout:
// bodyOffset is the count of lines (prolog + header) preceding the body.
// The first matching rule wins per line, except rules marked Continue,
// which let later rules match too; symbols are ordered by first appearance
// and deduplicated by name.
func ExtractSymbols(language *lang.Language, body []string, bodyOffset int, index Index) Extraction {
	ex := Extraction{TypeLines: make(map[string]int)}

	seen := map[m.SymbolKind]map[string]struct{}{
		m.SymbolType:       {},
		m.SymbolFunc:       {},
		m.SymbolEntrypoint: {},
	}

	for i, line := range body {
		if len(line) > maxScanLineLen {
			continue
		}
		lineNo := bodyOffset + i + 1

		for _, rule := range language.Symbols {
			name := rule.Name(line)
			if name == "" {
				continue
			}
			if rule.Kind == m.SymbolType {
				if _, dup := ex.TypeLines[name]; !dup {
					ex.TypeLines[name] = lineNo
				}
			}
			if _, dup := seen[rule.Kind][name]; !dup {
				seen[rule.Kind][name] = struct{}{}
				sym := m.Symbol{Kind: rule.Kind, Name: name, Line: lineNo}
				switch rule.Kind {
				case m.SymbolType:
					ex.Types = append(ex.Types, sym)
				case m.SymbolFunc:
					ex.Funcs = append(ex.Funcs, sym)
				case m.SymbolEntrypoint:
					ex.Entrypoints = append(ex.Entrypoints, sym)
				}
			}
			if rule.Continue {
				continue
			}
			break
		}
	}

	ex.Edges = extractEdges(language, body, bodyOffset, ex.TypeLines, index)

	return ex
}

// ScanTypeLines finds every type declaration with its final-layout line.
// This is the uncapped scan backing the repository index.
func ScanTypeLines(language *lang.Language, body []string, bodyOffset int) map[string]int {
	types := make(map[string]int)
	for i, line := range body {
		if len(line) > maxScanLineLen {
			continue
		}
		for _, rule := range language.Symbols {
			if rule.Kind != m.SymbolType {
				continue
			}
			if name := rule.Name(line); name != "" {
				if _, dup := types[name]; !dup {
					types[name] = bodyOffset + i + 1
				}
				break
			}
		}
	}
	return types
}

func capped(symbols []m.Symbol, limit int) []m.Symbol {
	if len(symbols) > limit {
		return symbols[:limit]
	}
	return symbols
}

func addrList(symbols []m.Symbol) []string {
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, s.Addr())
	}
	return out
}
