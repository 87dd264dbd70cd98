package adapter

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/topline/internal/model"
)

func simpleUIOutput(fn func(ui *SimpleUI)) string {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	fn(NewSimpleUI(cmd))
	return out.String()
}

func TestSimpleUI_DisplayOutcome(t *testing.T) {
	out := simpleUIOutput(func(ui *SimpleUI) {
		ui.DisplayOutcome(m.Outcome{Path: "a.py", Status: m.StatusInserted})
		ui.DisplayOutcome(m.Outcome{Path: "b.py", Status: m.StatusUpdated, Warning: "corrupt header rebuilt"})
		ui.DisplayOutcome(m.Outcome{Path: "c.py", Status: m.StatusFailed, Err: "no permission"})
	})

	assert.Contains(t, out, "inserted: a.py")
	assert.Contains(t, out, "updated: b.py (corrupt header rebuilt)")
	assert.Contains(t, out, "error: c.py: no permission")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	report := m.Report{Outcomes: []m.Outcome{
		{Path: "a.py", Status: m.StatusInserted},
		{Path: "b.py", Status: m.StatusUpdated},
		{Path: "c.py", Status: m.StatusUnchanged},
		{Path: "d.json", Status: m.StatusSkipped},
	}}

	out := simpleUIOutput(func(ui *SimpleUI) { ui.DisplaySummary(report) })
	assert.Contains(t, out, "done: 2 file(s) changed, 1 unchanged, 1 skipped, 0 failed")

	report.DryRun = true
	out = simpleUIOutput(func(ui *SimpleUI) { ui.DisplaySummary(report) })
	assert.Contains(t, out, "2 file(s) would change")
}

func TestSimpleUI_DisplayVerify(t *testing.T) {
	out := simpleUIOutput(func(ui *SimpleUI) {
		ui.DisplayVerify(m.VerifyReport{Processed: 3})
	})
	assert.Contains(t, out, "verified 3 file(s): all headers complete")

	out = simpleUIOutput(func(ui *SimpleUI) {
		ui.DisplayVerify(m.VerifyReport{
			Processed: 3,
			Diagnostics: []m.Diagnostic{
				{Path: "a.py", Field: m.FieldKeyFuncs, Detail: "placeholder"},
			},
		})
	})
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, string(m.FieldKeyFuncs))
	assert.Contains(t, out, "1 of 3 file(s) incomplete")
}

func TestSimpleUI_DisplayFiles(t *testing.T) {
	out := simpleUIOutput(func(ui *SimpleUI) { ui.DisplayFiles(nil) })
	assert.Contains(t, out, "No supported source files found")

	out = simpleUIOutput(func(ui *SimpleUI) {
		ui.DisplayFiles([]ListEntry{
			{Path: "a.py", Lang: "python", Header: m.HeaderPresent, Types: 2, Funcs: 5, Edges: 1},
		})
	})
	assert.Contains(t, out, "a.py")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "present")
	assert.Contains(t, out, "Total Files 1")
}
