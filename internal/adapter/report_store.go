package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/topline/internal/model"
)

// ErrNoReports is returned when the reports directory holds no saved runs.
var ErrNoReports = errors.New("no saved reports")

// ReportStore persists and retrieves batch run reports.
type ReportStore interface {
	Save(dir m.Path, report m.Report) error
	LoadLatest(dir m.Path) (m.Report, error)
}

// LocalReportStore writes one timestamped YAML file per run.
type LocalReportStore struct {
	// now is swappable for tests.
	now func() time.Time
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{now: time.Now}
}

// Save implements ReportStore.
func (rs *LocalReportStore) Save(dir m.Path, report m.Report) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	name := rs.now().UTC().Format("20060102-150405") + ".yaml"
	if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadLatest implements ReportStore. Timestamped names sort
// chronologically, so the lexicographically last file is the newest run.
func (rs *LocalReportStore) LoadLatest(dir m.Path) (m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return m.Report{}, ErrNoReports
		}
		return m.Report{}, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return m.Report{}, ErrNoReports
	}
	sort.Strings(names)

	data, err := os.ReadFile(filepath.Join(string(dir), names[len(names)-1]))
	if err != nil {
		return m.Report{}, err
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("parse report: %w", err)
	}
	return report, nil
}
