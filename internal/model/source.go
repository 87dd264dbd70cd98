// Package model defines the data structures for header annotation.
package model

// Path represents a file system path.
type Path string

// HeaderState classifies the header region found at the top of a file.
type HeaderState string

const (
	// HeaderAbsent means no marker was found; a new header will be inserted.
	HeaderAbsent HeaderState = "absent"

	// HeaderPresent means a well-formed marked header occupies the first
	// HeaderLines lines after the prolog.
	HeaderPresent HeaderState = "present"

	// HeaderCorrupt means the marker exists but the block is malformed or
	// truncated. A corrupt header is rebuilt as if absent.
	HeaderCorrupt HeaderState = "corrupt"
)

// SourceFile is the in-memory view of one file being annotated. It is owned
// exclusively by the run that processes it and never outlives it.
type SourceFile struct {
	Origin  Path
	RelPath string // repository-relative, forward slashes
	Lang    string // language tag, "" if unsupported

	Prolog []string // leading lines that must stay first
	Header []string // existing header block, nil when absent/corrupt
	Body   []string // everything after prolog and header

	State HeaderState
}

// BodyOffset is the number of lines preceding the body in the final file
// layout: prolog plus the fixed header. Symbol addresses are always computed
// against this post-insertion layout.
func (s *SourceFile) BodyOffset() int {
	return len(s.Prolog) + HeaderLines
}
