package model

// FileStatus is the outcome class for one file in a batch.
type FileStatus string

const (
	// StatusInserted means a brand-new header was written.
	StatusInserted FileStatus = "inserted"
	// StatusUpdated means an existing header was rewritten.
	StatusUpdated FileStatus = "updated"
	// StatusUnchanged means re-rendering produced byte-identical content.
	StatusUnchanged FileStatus = "unchanged"
	// StatusSkipped means the file has no reliable comment syntax.
	StatusSkipped FileStatus = "skipped"
	// StatusFailed means a file-scoped I/O or processing failure.
	StatusFailed FileStatus = "failed"
)

// Outcome records what happened to a single file.
type Outcome struct {
	Path    string     `yaml:"path"`
	Status  FileStatus `yaml:"status"`
	Warning string     `yaml:"warning,omitempty"` // e.g. corrupt header rebuilt
	Err     string     `yaml:"error,omitempty"`
}

// Report aggregates a whole annotation run. Per-file failures are isolated;
// the report is the sum of all outcomes.
type Report struct {
	Date     string    `yaml:"date"`
	Root     string    `yaml:"root"`
	DryRun   bool      `yaml:"dry_run"`
	Outcomes []Outcome `yaml:"outcomes"`
}

// Count returns how many outcomes carry the given status.
func (r Report) Count(status FileStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Changed returns how many files were actually rewritten (or would be,
// under dry-run).
func (r Report) Changed() int {
	return r.Count(StatusInserted) + r.Count(StatusUpdated)
}

// Failed reports whether any file hit an unrecoverable I/O failure.
func (r Report) Failed() bool {
	return r.Count(StatusFailed) > 0
}

// Diagnostic names one completeness-rule violation in one file.
type Diagnostic struct {
	Path   string
	Field  Field
	Detail string
}

// VerifyReport aggregates the verifier pass over a batch.
type VerifyReport struct {
	Processed   int
	Diagnostics []Diagnostic
}

// Incomplete lists the distinct paths with at least one diagnostic,
// preserving first-seen order.
func (v VerifyReport) Incomplete() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, d := range v.Diagnostics {
		if _, ok := seen[d.Path]; ok {
			continue
		}
		seen[d.Path] = struct{}{}
		paths = append(paths, d.Path)
	}
	return paths
}

// Clean reports whether every verified file passed.
func (v VerifyReport) Clean() bool {
	return len(v.Diagnostics) == 0
}
