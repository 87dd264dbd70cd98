// Package lang provides a language registry mapping file extensions to
// comment styles and line-anchored symbol pattern tables. Adding a language
// means registering a table entry, not writing new logic.
package lang

import (
	"regexp"
	"strings"
	"sync"

	m "github.com/mouse-blink/topline/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// StyleKind selects how header lines are wrapped in comments.
type StyleKind int

const (
	// StyleLine prefixes every header line (e.g. "# ", "-- ").
	StyleLine StyleKind = iota
	// StyleBlock opens on the first line and closes on the last
	// (e.g. "/*" ... "*/", "<!--" ... "-->").
	StyleBlock
)

// CommentStyle describes the comment wrapping for one language.
type CommentStyle struct {
	Kind        StyleKind
	LinePrefix  string
	BlockStart  string
	BlockPrefix string
	BlockEnd    string
}

// SymbolRule matches one declaration kind at the start of a (possibly
// indented) line. The symbol name is the first non-empty capture group, or
// FixedName when the rule has no useful capture.
type SymbolRule struct {
	Kind      m.SymbolKind
	Pattern   *regexp.Regexp
	FixedName string

	// Continue lets later rules also match the same line. A default-export
	// class line is both an entrypoint and a type declaration.
	Continue bool
}

// Name extracts the symbol name from a line, or "" when the rule does not
// match.
func (r SymbolRule) Name(line string) string {
	groups := r.Pattern.FindStringSubmatch(line)
	if groups == nil {
		return ""
	}
	if r.FixedName != "" {
		return r.FixedName
	}
	for _, g := range groups[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// ParentSpec is one parent reported by an inheritance rule, before any
// address resolution.
type ParentSpec struct {
	Rel  m.Relation
	Name string
}

// InheritRule matches inheritance/implementation declarations. Expand turns
// the regexp groups into a child name and its parents; languages with
// irregular supertype syntax (Kotlin, C#) put their quirks here so the
// dispatch stays table-shaped.
type InheritRule struct {
	Pattern *regexp.Regexp

	// ChildLocalOnly restricts the rule to children declared in the same
	// file (Rust impl-for blocks, where the edge is only meaningful when
	// the implementing type is local).
	ChildLocalOnly bool

	Expand func(groups []string) (child string, parents []ParentSpec)
}

// Language holds the annotation configuration for one language tag.
type Language struct {
	Name       string
	Extensions []string
	Style      CommentStyle

	Symbols  []SymbolRule
	Inherits []InheritRule

	// DocstringPurpose enables the module-docstring purpose hint
	// (Python: the docstring stays in place, the header uses line
	// comments so it remains the first statement).
	DocstringPurpose bool
}

// Languages maps language tags to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

func register(l *Language) {
	Languages[l.Name] = l
}

// skipSuffixes are binary or data formats that are never annotated.
var skipSuffixes = map[string]struct{}{
	".json": {}, ".lock": {}, ".png": {}, ".jpg": {}, ".jpeg": {},
	".gif": {}, ".webp": {}, ".ico": {}, ".pdf": {}, ".zip": {},
	".gz": {}, ".bz2": {}, ".xz": {}, ".7z": {}, ".jar": {},
	".class": {}, ".wasm": {},
}

var extensionMap map[string]*Language
var extensionOnce sync.Once

func getExtensionMap() map[string]*Language {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]*Language)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language for a file extension (with leading dot,
// any case), or nil when the extension has no reliable comment syntax.
func ForExtension(ext string) *Language {
	ext = strings.ToLower(ext)
	if _, skip := skipSuffixes[ext]; skip {
		return nil
	}
	return getExtensionMap()[ext]
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// CleanBaseName strips generics, call parentheses and module prefixes from a
// parent reference: "pkg.Base<T>" -> "Base".
func CleanBaseName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i := strings.IndexAny(s, "<("); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if i := strings.LastIndex(s, "::"); i >= 0 {
		s = s[i+2:]
	}
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// SplitSupertypes splits a raw supertype list on commas, stopping at an
// opening brace or a where-clause.
func SplitSupertypes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "{"); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.Index(raw, "where"); i >= 0 {
		raw = raw[:i]
	}
	var parts []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
