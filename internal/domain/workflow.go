package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/topline/internal/adapter"
	"github.com/mouse-blink/topline/internal/lang"
	m "github.com/mouse-blink/topline/internal/model"
)

// ErrIncomplete reports that verification found files whose auto-populated
// fields are still placeholder. Callers map it to a nonzero exit status.
var ErrIncomplete = errors.New("verification found incomplete headers")

// ErrBatchFailures reports that at least one file hit an I/O failure. The
// rest of the batch still completed.
var ErrBatchFailures = errors.New("some files failed")

// AnnotateArgs configures one annotation run.
type AnnotateArgs struct {
	Paths          []m.Path
	Root           m.Path
	Exclude        []string // regexps matched against repository-relative paths
	Purpose        string
	IndexHint      string
	Rebuild        bool
	ResolveParents bool
	MaxWidth       int
	DryRun         bool
	Verify         bool
	Parallel       int
	Reports        m.Path
}

// CheckArgs configures a verification-only pass.
type CheckArgs struct {
	Paths   []m.Path
	Root    m.Path
	Exclude []string
}

// ListArgs configures the file listing.
type ListArgs struct {
	Paths   []m.Path
	Root    m.Path
	Exclude []string
}

// Workflow is the engine's consumer-facing surface.
type Workflow interface {
	Annotate(args AnnotateArgs) error
	Check(args CheckArgs) error
	List(args ListArgs) error
	View(reports m.Path) error
}

type workflow struct {
	fs    adapter.SourceFS
	store adapter.ReportStore
	ui    adapter.UI
	now   func() time.Time
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFS, store adapter.ReportStore, ui adapter.UI) Workflow {
	return &workflow{
		fs:    fs,
		store: store,
		ui:    ui,
		now:   time.Now,
	}
}

// Annotate runs the full pipeline over every file: prolog split, header
// location, extraction, optional cross-file resolution, merge, atomic write.
// Per-file failures are recorded and the batch continues; the resolver
// snapshot is taken strictly before any write.
func (w *workflow) Annotate(args AnnotateArgs) error {
	if args.MaxWidth <= 0 {
		args.MaxWidth = DefaultMaxWidth
	}
	// The marker line must survive truncation or the next run cannot find
	// the header again.
	if args.MaxWidth < len(m.MarkerLine) {
		args.MaxWidth = len(m.MarkerLine)
	}

	files, err := w.discover(args.Paths, args.Root, args.Exclude)
	if err != nil {
		return err
	}

	// Snapshot the repository index before the first write, so resolution
	// never depends on per-file processing order.
	var index Index
	if args.ResolveParents {
		index = BuildIndex(w.fs, args.Root, files)
	}

	if err := w.ui.Start(len(files)); err != nil {
		return err
	}

	today := w.now().Format("2006-01-02")
	outcomes := make([]m.Outcome, len(files))

	parallel := args.Parallel
	if parallel < 1 {
		parallel = 1
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(parallel)

	for i, path := range files {
		g.Go(func() error {
			outcome := w.annotateFile(path, args, index, today)
			outcomes[i] = outcome

			mu.Lock()
			w.ui.DisplayOutcome(outcome)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	report := m.Report{
		Date:     today,
		Root:     string(args.Root),
		DryRun:   args.DryRun,
		Outcomes: outcomes,
	}
	w.ui.DisplaySummary(report)
	w.ui.Close()

	if !args.DryRun && args.Reports != "" {
		if err := w.store.Save(args.Reports, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if args.Verify && !args.DryRun {
		verifyReport := VerifyBatch(w.fs, args.Root, files)
		w.ui.DisplayVerify(verifyReport)
		if !verifyReport.Clean() {
			return ErrIncomplete
		}
	}

	if report.Failed() {
		return ErrBatchFailures
	}
	return nil
}

// annotateFile processes one file in isolation. Every failure is captured in
// the outcome, never propagated.
func (w *workflow) annotateFile(path m.Path, args AnnotateArgs, index Index, today string) m.Outcome {
	rel := w.fs.RelPath(args.Root, path)

	language := lang.ForExtension(filepath.Ext(string(path)))
	if language == nil {
		return m.Outcome{Path: rel, Status: m.StatusSkipped}
	}

	lines, err := w.fs.ReadLines(path)
	if err != nil {
		return m.Outcome{Path: rel, Status: m.StatusFailed, Err: err.Error()}
	}

	file := m.SourceFile{Origin: path, RelPath: rel, Lang: language.Name}
	var rest []string
	file.Prolog, rest = SplitProlog(lines, language.Name)
	file.Header, file.Body, file.State = LocateHeader(rest)

	warning := ""
	if file.State == m.HeaderCorrupt {
		warning = "corrupt header rebuilt"
	}

	existing := map[m.Field]string{}
	if file.State == m.HeaderPresent {
		existing = ParseHeaderFields(file.Header)
	}

	docHint := ""
	if language.DocstringPurpose {
		docHint = PeekModuleDocstring(file.Body)
	}

	ex := ExtractSymbols(language, file.Body, file.BodyOffset(), index)

	opts := MergeOptions{
		Rebuild:   args.Rebuild,
		Purpose:   args.Purpose,
		IndexHint: args.IndexHint,
		DocHint:   docHint,
		Today:     today,
	}
	rec := Merge(rel, existing, ex, file.BodyOffset()+len(file.Body), opts)

	rendered := Render(rec, language.Style, args.MaxWidth)
	newLines := assemble(file.Prolog, rendered, file.Body)

	// Bump Last update only when something other than the date changed.
	if file.State == m.HeaderPresent && !equalLines(newLines, lines) && rec.Value(m.FieldLastUpdate) != today {
		rec.Fields[m.FieldLastUpdate] = m.FieldValue{Text: today, Origin: m.OriginRecomputed}
		rendered = Render(rec, language.Style, args.MaxWidth)
		newLines = assemble(file.Prolog, rendered, file.Body)
	}

	if equalLines(newLines, lines) {
		return m.Outcome{Path: rel, Status: m.StatusUnchanged}
	}

	if !args.DryRun {
		if err := w.fs.WriteLinesAtomic(path, newLines); err != nil {
			return m.Outcome{Path: rel, Status: m.StatusFailed, Err: err.Error()}
		}
	}

	status := m.StatusUpdated
	if file.State == m.HeaderAbsent {
		status = m.StatusInserted
	}
	return m.Outcome{Path: rel, Status: status, Warning: warning}
}

// Check runs the verifier as an independent pass.
func (w *workflow) Check(args CheckArgs) error {
	files, err := w.discover(args.Paths, args.Root, args.Exclude)
	if err != nil {
		return err
	}

	report := VerifyBatch(w.fs, args.Root, files)
	w.ui.DisplayVerify(report)

	if !report.Clean() {
		return ErrIncomplete
	}
	return nil
}

// List shows every supported file with its header state and symbol counts.
func (w *workflow) List(args ListArgs) error {
	files, err := w.discover(args.Paths, args.Root, args.Exclude)
	if err != nil {
		return err
	}

	var entries []adapter.ListEntry
	for _, path := range files {
		language := lang.ForExtension(filepath.Ext(string(path)))
		if language == nil {
			continue
		}
		lines, err := w.fs.ReadLines(path)
		if err != nil {
			continue
		}

		prolog, rest := SplitProlog(lines, language.Name)
		_, body, state := LocateHeader(rest)
		ex := ExtractSymbols(language, body, len(prolog)+m.HeaderLines, nil)

		entries = append(entries, adapter.ListEntry{
			Path:   w.fs.RelPath(args.Root, path),
			Lang:   language.Name,
			Header: state,
			Types:  len(ex.Types),
			Funcs:  len(ex.Funcs),
			Edges:  len(ex.Edges),
		})
	}

	w.ui.DisplayFiles(entries)
	return nil
}

// View replays the most recent saved report.
func (w *workflow) View(reports m.Path) error {
	report, err := w.store.LoadLatest(reports)
	if err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		w.ui.DisplayOutcome(o)
	}
	w.ui.DisplaySummary(report)
	return nil
}

func (w *workflow) discover(paths []m.Path, root m.Path, exclude []string) ([]m.Path, error) {
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	files, err := w.fs.Discover(paths)
	if err != nil {
		return nil, err
	}
	if len(exclude) == 0 {
		return files, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))
	for _, e := range exclude {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", e, err)
		}
		patterns = append(patterns, re)
	}

	var kept []m.Path
	for _, f := range files {
		rel := w.fs.RelPath(root, f)
		excluded := false
		for _, re := range patterns {
			if re.MatchString(rel) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

func assemble(prolog, header, body []string) []string {
	out := make([]string, 0, len(prolog)+len(header)+len(body))
	out = append(out, prolog...)
	out = append(out, header...)
	out = append(out, body...)
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
