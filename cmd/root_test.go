package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/topline/internal/domain"
	m "github.com/mouse-blink/topline/internal/model"
)

type fakeWorkflow struct {
	annotateArgs *domain.AnnotateArgs
	checkArgs    *domain.CheckArgs
	listArgs     *domain.ListArgs
	viewReports  *m.Path
	err          error
}

func (f *fakeWorkflow) Annotate(args domain.AnnotateArgs) error {
	f.annotateArgs = &args
	return f.err
}

func (f *fakeWorkflow) Check(args domain.CheckArgs) error {
	f.checkArgs = &args
	return f.err
}

func (f *fakeWorkflow) List(args domain.ListArgs) error {
	f.listArgs = &args
	return f.err
}

func (f *fakeWorkflow) View(reports m.Path) error {
	f.viewReports = &reports
	return f.err
}

// swapWorkflow installs a fake and restores the real wiring afterwards.
func swapWorkflow(t *testing.T, fake *fakeWorkflow) {
	t.Helper()
	orig := workflow
	workflow = fake
	t.Cleanup(func() { workflow = orig })
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootCmd_Defaults(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	require.NoError(t, execute(t))

	require.NotNil(t, fake.annotateArgs)
	got := *fake.annotateArgs
	assert.Empty(t, got.Paths)
	assert.Equal(t, m.Path("."), got.Root)
	assert.Equal(t, domain.DefaultMaxWidth, got.MaxWidth)
	assert.False(t, got.DryRun)
	assert.False(t, got.Rebuild)
	assert.Equal(t, 1, got.Parallel)
	assert.Equal(t, m.Path(".topline-reports"), got.Reports)
}

func TestRootCmd_FlagsAndPaths(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	require.NoError(t, execute(t,
		"src", "tools/gen.py",
		"--root", "src",
		"--purpose", "Does things.",
		"--rebuild",
		"--resolve-parents",
		"--dry-run",
		"--verify",
		"--max-width", "80",
		"-p", "4",
		"-x", `^vendor/`,
		"-x", `_test\.py$`,
	))

	require.NotNil(t, fake.annotateArgs)
	got := *fake.annotateArgs
	assert.Equal(t, []m.Path{"src", "tools/gen.py"}, got.Paths)
	assert.Equal(t, m.Path("src"), got.Root)
	assert.Equal(t, "Does things.", got.Purpose)
	assert.True(t, got.Rebuild)
	assert.True(t, got.ResolveParents)
	assert.True(t, got.DryRun)
	assert.True(t, got.Verify)
	assert.Equal(t, 80, got.MaxWidth)
	assert.Equal(t, 4, got.Parallel)
	assert.Equal(t, []string{`^vendor/`, `_test\.py$`}, got.Exclude)
}

func TestRootCmd_PropagatesError(t *testing.T) {
	fake := &fakeWorkflow{err: domain.ErrIncomplete}
	swapWorkflow(t, fake)

	err := execute(t, "--verify")
	assert.True(t, errors.Is(err, domain.ErrIncomplete))
}

func TestCheckCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	require.NoError(t, execute(t, "check", "src", "--root", "src", "-x", `^gen/`))

	require.NotNil(t, fake.checkArgs)
	assert.Equal(t, []m.Path{"src"}, fake.checkArgs.Paths)
	assert.Equal(t, m.Path("src"), fake.checkArgs.Root)
	assert.Equal(t, []string{`^gen/`}, fake.checkArgs.Exclude)
}

func TestListCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	require.NoError(t, execute(t, "list", "src"))

	require.NotNil(t, fake.listArgs)
	assert.Equal(t, []m.Path{"src"}, fake.listArgs.Paths)
}

func TestViewCmd(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	require.NoError(t, execute(t, "view", "--reports", "runs"))

	require.NotNil(t, fake.viewReports)
	assert.Equal(t, m.Path("runs"), *fake.viewReports)
}
