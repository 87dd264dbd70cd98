package model

import "fmt"

// SymbolKind distinguishes the declaration kinds the extractor reports.
type SymbolKind string

const (
	// SymbolType covers class/struct/interface/enum/trait declarations.
	SymbolType SymbolKind = "type"
	// SymbolFunc covers function and method declarations.
	SymbolFunc SymbolKind = "func"
	// SymbolEntrypoint covers run-as-program idioms (main functions,
	// __main__ guards, default exports).
	SymbolEntrypoint SymbolKind = "entrypoint"
)

// Symbol is a named declaration at a 1-based line in the final file layout.
// Symbols are recomputed fresh every run and never persisted.
type Symbol struct {
	Kind SymbolKind
	Name string
	Line int
}

// Addr renders the symbol as a Name@L<n> address.
func (s Symbol) Addr() string {
	return fmt.Sprintf("%s@L%d", s.Name, s.Line)
}

// Relation is the kind of a relationship edge.
type Relation string

const (
	// RelExtends is class/superclass inheritance, token "->".
	RelExtends Relation = "extends"
	// RelImplements is interface implementation, token "~>".
	RelImplements Relation = "implements"
	// RelMixin is an additional base beyond the first, token "+".
	RelMixin Relation = "mixin"
)

// Token returns the wire encoding used inside the Inheritance field.
func (r Relation) Token() string {
	switch r {
	case RelExtends:
		return "->"
	case RelImplements:
		return "~>"
	case RelMixin:
		return "+"
	}
	return "->"
}

// ParentRef addresses the parent side of a relationship edge. Exactly one of
// the three shapes applies: in-file (Line > 0), cross-file (File != ""), or a
// bare unresolved name.
type ParentRef struct {
	Name string
	Line int    // in-file declaration line, 0 when not local
	File string // repository-relative path for a cross-file pointer
}

// Resolved reports whether the parent points at a known declaration site.
func (p ParentRef) Resolved() bool {
	return p.Line > 0 || p.File != ""
}

// Addr renders the parent as Name@L<n>, Name@path#L<n>, or the bare name.
func (p ParentRef) Addr() string {
	switch {
	case p.File != "":
		return fmt.Sprintf("%s@%s#L%d", p.Name, p.File, p.Line)
	case p.Line > 0:
		return fmt.Sprintf("%s@L%d", p.Name, p.Line)
	}
	return p.Name
}

// RelationEdge links a child declaration to one parent.
type RelationEdge struct {
	Child  Symbol
	Rel    Relation
	Parent ParentRef
}

// String renders the edge for the Inheritance field,
// e.g. Derived@L24->Base@L12 or Derived@L24~>Runnable@pkg/base.py#L31.
func (e RelationEdge) String() string {
	return e.Child.Addr() + e.Rel.Token() + e.Parent.Addr()
}

// CrossFileRef is one candidate declaration site found in another file.
type CrossFileRef struct {
	File string // repository-relative path
	Line int    // final-layout line of the declaration
}
