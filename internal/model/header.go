package model

// Marker identifies a maintained header block and its format version.
const Marker = "@topline-header: v1"

// MarkerLine is the full first field, marker plus embedded invariants.
const MarkerLine = Marker + " | 20 lines | keep updated"

// HeaderLines is the fixed height of every rendered header block.
const HeaderLines = 20

// Placeholder marks a field whose value is not yet known.
const Placeholder = "TODO"

// Field names a single line of the header, in its fixed order.
type Field string

// Header fields in render order. The marker line occupies position zero and
// has no Field name.
const (
	FieldPath          Field = "Path"
	FieldPurpose       Field = "Purpose"
	FieldKeyTypes      Field = "Key types"
	FieldInheritance   Field = "Inheritance"
	FieldKeyFuncs      Field = "Key funcs"
	FieldEntrypoints   Field = "Entrypoints"
	FieldPublicAPI     Field = "Public API"
	FieldInputsOutputs Field = "Inputs/Outputs"
	FieldCoreFlow      Field = "Core flow"
	FieldDependencies  Field = "Dependencies"
	FieldErrorHandling Field = "Error handling"
	FieldConfigEnv     Field = "Config/env"
	FieldSideEffects   Field = "Side effects"
	FieldPerformance   Field = "Performance"
	FieldSecurity      Field = "Security"
	FieldTests         Field = "Tests"
	FieldKnownIssues   Field = "Known issues"
	FieldIndex         Field = "Index"
	FieldLastUpdate    Field = "Last update"
)

// FieldOrder lists every named field in the order it renders, directly after
// the marker line. len(FieldOrder)+1 == HeaderLines.
var FieldOrder = []Field{
	FieldPath,
	FieldPurpose,
	FieldKeyTypes,
	FieldInheritance,
	FieldKeyFuncs,
	FieldEntrypoints,
	FieldPublicAPI,
	FieldInputsOutputs,
	FieldCoreFlow,
	FieldDependencies,
	FieldErrorHandling,
	FieldConfigEnv,
	FieldSideEffects,
	FieldPerformance,
	FieldSecurity,
	FieldTests,
	FieldKnownIssues,
	FieldIndex,
	FieldLastUpdate,
}

// FieldOrigin says how a merged field value was decided.
type FieldOrigin int

const (
	// OriginUnset means the field carries the placeholder.
	OriginUnset FieldOrigin = iota
	// OriginRecomputed means the value was derived from current content.
	OriginRecomputed
	// OriginPreserved means a prior non-placeholder value was kept verbatim.
	OriginPreserved
)

// FieldValue is the merged state of a single header field.
type FieldValue struct {
	Text   string
	Origin FieldOrigin
}

// HeaderRecord holds the merged value of every named field. It always renders
// to exactly HeaderLines lines regardless of content.
type HeaderRecord struct {
	Fields map[Field]FieldValue
}

// Value returns the text for a field, falling back to the placeholder.
func (h HeaderRecord) Value(f Field) string {
	if v, ok := h.Fields[f]; ok && v.Text != "" {
		return v.Text
	}
	return Placeholder
}
