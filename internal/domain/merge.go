package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// fieldClass says how a field merges across runs.
type fieldClass int

const (
	// classAuto fields are always recomputed from current content; a stale
	// prior value would carry drifted line numbers.
	classAuto fieldClass = iota
	// classManual fields keep a prior non-placeholder value unless a full
	// rebuild was requested.
	classManual
)

// fieldClasses is the single classification table driving the merge. Fields
// not listed here (Path, Last update) have bespoke handling in Merge.
var fieldClasses = map[m.Field]fieldClass{
	m.FieldKeyTypes:      classAuto,
	m.FieldInheritance:   classAuto,
	m.FieldKeyFuncs:      classAuto,
	m.FieldEntrypoints:   classAuto,
	m.FieldIndex:         classAuto,
	m.FieldPurpose:       classManual,
	m.FieldPublicAPI:     classManual,
	m.FieldInputsOutputs: classManual,
	m.FieldCoreFlow:      classManual,
	m.FieldDependencies:  classManual,
	m.FieldErrorHandling: classManual,
	m.FieldConfigEnv:     classManual,
	m.FieldSideEffects:   classManual,
	m.FieldPerformance:   classManual,
	m.FieldSecurity:      classManual,
	m.FieldTests:         classManual,
	m.FieldKnownIssues:   classManual,
}

// MergeOptions carries the caller-supplied knobs for one file's merge.
type MergeOptions struct {
	// Rebuild resets every manual field to placeholder/override instead of
	// preserving prior values.
	Rebuild bool
	// Purpose and IndexHint override their fields when non-empty.
	Purpose   string
	IndexHint string
	// DocHint is a best-effort purpose fallback (Python module docstring).
	DocHint string
	// Today is the date stamped into Last update, ISO 8601.
	Today string
}

// Merge builds the full ordered field set for one file under the field-level
// merge policy: auto fields from the extraction, manual fields preserved
// verbatim when non-placeholder, everything else placeholder.
func Merge(relPath string, existing map[m.Field]string, ex Extraction, bodyEnd int, opts MergeOptions) m.HeaderRecord {
	rec := m.HeaderRecord{Fields: make(map[m.Field]m.FieldValue)}

	set := func(f m.Field, text string, origin m.FieldOrigin) {
		if text == "" {
			text = m.Placeholder
			origin = m.OriginUnset
		}
		rec.Fields[f] = m.FieldValue{Text: text, Origin: origin}
	}

	auto := map[m.Field]string{
		m.FieldKeyTypes:    strings.Join(addrList(capped(ex.Types, maxTypeSymbols)), ", "),
		m.FieldInheritance: strings.Join(edgeList(ex.Edges), ", "),
		m.FieldKeyFuncs:    strings.Join(addrList(capped(ex.Funcs, maxFuncSymbols)), ", "),
		m.FieldEntrypoints: strings.Join(addrList(capped(ex.Entrypoints, maxEntrypoints)), ", "),
		m.FieldIndex:       sectionIndex(ex, bodyEnd),
	}
	if opts.IndexHint != "" {
		auto[m.FieldIndex] = opts.IndexHint
	}

	set(m.FieldPath, relPath, m.OriginRecomputed)

	for f, class := range fieldClasses {
		switch class {
		case classAuto:
			set(f, auto[f], m.OriginRecomputed)
		case classManual:
			prior := existing[f]
			if !opts.Rebuild && !IsPlaceholder(prior) {
				set(f, prior, m.OriginPreserved)
			} else {
				set(f, "", m.OriginUnset)
			}
		}
	}

	// Purpose gets two extra fallbacks: the explicit override, then the
	// docstring hint.
	switch {
	case opts.Purpose != "":
		set(m.FieldPurpose, opts.Purpose, m.OriginRecomputed)
	case rec.Fields[m.FieldPurpose].Origin == m.OriginUnset && opts.DocHint != "":
		set(m.FieldPurpose, opts.DocHint, m.OriginRecomputed)
	}

	// Last update keeps its prior value; the workflow bumps it to today
	// only when the rest of the file actually changed.
	if prior := existing[m.FieldLastUpdate]; !opts.Rebuild && !IsPlaceholder(prior) {
		set(m.FieldLastUpdate, prior, m.OriginPreserved)
	} else {
		set(m.FieldLastUpdate, opts.Today, m.OriginRecomputed)
	}

	return rec
}

// sectionIndex derives the best-effort section map: each type declaration
// opens a section that runs to the line before the next one, the last
// section ending at the body's final line.
func sectionIndex(ex Extraction, bodyEnd int) string {
	if len(ex.Types) == 0 || bodyEnd <= 0 {
		return ""
	}

	types := make([]m.Symbol, len(ex.Types))
	copy(types, ex.Types)
	sort.Slice(types, func(i, j int) bool { return types[i].Line < types[j].Line })

	parts := make([]string, 0, len(types))
	for i, t := range types {
		end := bodyEnd
		if i+1 < len(types) {
			end = types[i+1].Line - 1
		}
		parts = append(parts, fmt.Sprintf("%s@L%d-%d", t.Name, t.Line, end))
	}
	return strings.Join(parts, "; ")
}

// DefaultMaxWidth is the per-line width cap when the caller supplies none.
const DefaultMaxWidth = 120

// truncationMark flags a width-truncated field value.
const truncationMark = "…"

// Truncate collapses whitespace and caps the value at maxWidth runes,
// spending the final rune on the truncation marker.
func Truncate(s string, maxWidth int) string {
	s = lang.CollapseWhitespace(s)
	runes := []rune(s)
	if len(runes) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return string(runes[:maxWidth])
	}
	return strings.TrimRight(string(runes[:maxWidth-1]), " ") + truncationMark
}

// Render formats the record into the language's comment style. The result is
// always exactly HeaderLines lines; for block styles the close token shares
// the final line and is reserved width, never itself truncated.
func Render(rec m.HeaderRecord, style lang.CommentStyle, maxWidth int) []string {
	fields := make([]string, 0, m.HeaderLines)
	fields = append(fields, m.MarkerLine)
	for _, f := range m.FieldOrder {
		fields = append(fields, fmt.Sprintf("%s: %s", f, rec.Value(f)))
	}

	rendered := make([]string, 0, m.HeaderLines)
	if style.Kind == lang.StyleBlock {
		rendered = append(rendered, style.BlockStart+" "+Truncate(fields[0], maxWidth))
		for _, f := range fields[1 : len(fields)-1] {
			rendered = append(rendered, style.BlockPrefix+Truncate(f, maxWidth))
		}
		last := fields[len(fields)-1]
		rendered = append(rendered, style.BlockPrefix+Truncate(last, maxWidth)+style.BlockEnd)
		return rendered
	}

	for _, f := range fields {
		rendered = append(rendered, style.LinePrefix+Truncate(f, maxWidth))
	}
	return rendered
}
