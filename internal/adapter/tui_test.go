package adapter

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/topline/internal/model"
)

func TestTUI_ReplaysPlainlyWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	ui.DisplayOutcome(m.Outcome{Path: "a.py", Status: m.StatusUpdated})
	ui.DisplayOutcome(m.Outcome{Path: "b.py", Status: m.StatusFailed, Err: "no permission"})
	ui.DisplaySummary(m.Report{Outcomes: []m.Outcome{
		{Path: "a.py", Status: m.StatusUpdated},
		{Path: "b.py", Status: m.StatusFailed},
	}})

	out := buf.String()
	assert.Contains(t, out, "updated: a.py")
	assert.Contains(t, out, "error: b.py: no permission")
	assert.Contains(t, out, "done: 1 changed, 0 unchanged, 0 skipped, 1 failed")
}

func TestProgressModel_TracksOutcomes(t *testing.T) {
	var model tea.Model = newProgressModel(20)

	for i := 0; i < recentTail+2; i++ {
		model, _ = model.Update(outcomeMsg{outcome: m.Outcome{
			Path:   fmt.Sprintf("f%d.py", i),
			Status: m.StatusInserted,
		}})
	}

	p, ok := model.(progressModel)
	require.True(t, ok)
	assert.Equal(t, recentTail+2, p.done)
	assert.Len(t, p.recent, recentTail)
	assert.Equal(t, "f2.py", p.recent[0].Path)
}

func TestProgressModel_QuitAndSummary(t *testing.T) {
	var model tea.Model = newProgressModel(1)

	model, _ = model.Update(summaryMsg{report: m.Report{
		Outcomes: []m.Outcome{{Path: "a.py", Status: m.StatusUpdated}},
	}})

	model, cmd := model.Update(quitMsg{})
	require.NotNil(t, cmd)

	p, ok := model.(progressModel)
	require.True(t, ok)
	assert.True(t, p.quitting)
	assert.Contains(t, p.View(), "done: 1 changed")
}
