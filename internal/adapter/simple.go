package adapter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/topline/internal/model"
)

// SimpleUI implements UI with plain text on the cobra command's writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start implements UI.
func (s *SimpleUI) Start(_ int) error {
	return nil
}

// Close implements UI.
func (s *SimpleUI) Close() {

}

// DisplayOutcome prints one line per processed file.
func (s *SimpleUI) DisplayOutcome(o m.Outcome) {
	switch {
	case o.Err != "":
		s.printf("error: %s: %s\n", o.Path, o.Err)
	case o.Warning != "":
		s.printf("%s: %s (%s)\n", o.Status, o.Path, o.Warning)
	default:
		s.printf("%s: %s\n", o.Status, o.Path)
	}
}

// DisplaySummary prints the batch totals.
func (s *SimpleUI) DisplaySummary(r m.Report) {
	verb := "changed"
	if r.DryRun {
		verb = "would change"
	}
	s.printf("done: %d file(s) %s, %d unchanged, %d skipped, %d failed\n",
		r.Changed(), verb,
		r.Count(m.StatusUnchanged),
		r.Count(m.StatusSkipped),
		r.Count(m.StatusFailed))
}

// DisplayVerify prints the verifier diagnostics as a table.
func (s *SimpleUI) DisplayVerify(v m.VerifyReport) {
	if v.Clean() {
		s.printf("verified %d file(s): all headers complete\n", v.Processed)
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Field", "Problem"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, d := range v.Diagnostics {
		table.Append([]string{d.Path, string(d.Field), d.Detail})
	}
	table.Render()

	s.printf("\n%s\n", tableBuffer.String())
	s.printf("%d of %d file(s) incomplete\n", len(v.Incomplete()), v.Processed)
}

// DisplayFiles renders the list table.
func (s *SimpleUI) DisplayFiles(entries []ListEntry) {
	if len(entries) == 0 {
		s.printf("No supported source files found\n")
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lang", "Header", "Types", "Funcs", "Edges"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, e := range entries {
		table.Append([]string{
			e.Path, e.Lang, string(e.Header),
			strconv.Itoa(e.Types), strconv.Itoa(e.Funcs), strconv.Itoa(e.Edges),
		})
	}
	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(entries)), "", "", "", "", ""})
	table.Render()

	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
