package adapter

import (
	m "github.com/mouse-blink/topline/internal/model"
)

// ListEntry is one row of the `list` command's output.
type ListEntry struct {
	Path   string
	Lang   string
	Header m.HeaderState
	Types  int
	Funcs  int
	Edges  int
}

// UI defines how batch progress and results reach the user. Implementations
// can use plain text or an interactive TUI.
type UI interface {
	// Start announces a run over total files.
	Start(total int) error
	// Close finalizes the UI.
	Close()
	// DisplayOutcome reports one finished file.
	DisplayOutcome(o m.Outcome)
	// DisplaySummary prints the batch totals.
	DisplaySummary(r m.Report)
	// DisplayVerify prints the verifier's per-file diagnostics.
	DisplayVerify(v m.VerifyReport)
	// DisplayFiles renders the list command's table.
	DisplayFiles(entries []ListEntry)
}
