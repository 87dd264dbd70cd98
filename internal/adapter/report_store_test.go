package adapter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/topline/internal/model"
)

func storeAt(sec int) *LocalReportStore {
	rs := NewReportStore()
	rs.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, sec, 0, time.UTC)
	}
	return rs
}

func TestReportStore_SaveAndLoadLatest(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	first := m.Report{
		Date: "2026-08-30",
		Root: ".",
		Outcomes: []m.Outcome{
			{Path: "a.py", Status: m.StatusInserted},
			{Path: "b.py", Status: m.StatusFailed, Err: "no permission"},
		},
	}
	require.NoError(t, storeAt(0).Save(dir, first))

	second := m.Report{
		Date:     "2026-08-30",
		Root:     ".",
		Outcomes: []m.Outcome{{Path: "a.py", Status: m.StatusUnchanged}},
	}
	require.NoError(t, storeAt(1).Save(dir, second))

	got, err := NewReportStore().LoadLatest(dir)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestReportStore_RoundTripsWarnings(t *testing.T) {
	dir := m.Path(t.TempDir())

	report := m.Report{
		Date:   "2026-08-30",
		DryRun: true,
		Outcomes: []m.Outcome{
			{Path: "a.py", Status: m.StatusUpdated, Warning: "corrupt header rebuilt"},
		},
	}
	require.NoError(t, storeAt(0).Save(dir, report))

	got, err := NewReportStore().LoadLatest(dir)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestReportStore_NoReports(t *testing.T) {
	_, err := NewReportStore().LoadLatest(m.Path(t.TempDir()))
	assert.ErrorIs(t, err, ErrNoReports)

	_, err = NewReportStore().LoadLatest("does/not/exist")
	assert.ErrorIs(t, err, ErrNoReports)
}
