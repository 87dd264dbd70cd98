// Package cmd provides the root command and CLI setup for topline.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/topline/internal/adapter"
	"github.com/mouse-blink/topline/internal/domain"
	m "github.com/mouse-blink/topline/internal/model"
)

var sourceFS adapter.SourceFS
var reportStore adapter.ReportStore
var ui adapter.UI
var workflow domain.Workflow

func init() {
	sourceFS = adapter.NewLocalSourceFS()
	reportStore = adapter.NewReportStore()
	ui = adapter.NewUI(rootCmd, adapter.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(sourceFS, reportStore, ui)
}

var rootFlag = struct {
	root           string
	purpose        string
	indexHint      string
	rebuild        bool
	resolveParents bool
	maxWidth       int
	dryRun         bool
	verify         bool
	parallel       int
	exclude        []string
	reports        string
}{}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topline [paths...]",
		Short: "Maintain fixed 20-line header comments indexing source files",
		Long: `Topline inserts and updates a fixed-size, machine-detectable header
comment at the top of each source file, summarizing its purpose and indexing
its key symbols with line-number addresses, so readers can navigate a
codebase without opening every file body.

Auto-derived fields (types, functions, entrypoints, inheritance, index) are
recomputed on every run; manually edited fields survive re-annotation unless
--rebuild is given.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Annotate(domain.AnnotateArgs{
				Paths:          parsePaths(args),
				Root:           m.Path(rootFlag.root),
				Exclude:        rootFlag.exclude,
				Purpose:        rootFlag.purpose,
				IndexHint:      rootFlag.indexHint,
				Rebuild:        rootFlag.rebuild,
				ResolveParents: rootFlag.resolveParents,
				MaxWidth:       rootFlag.maxWidth,
				DryRun:         rootFlag.dryRun,
				Verify:         rootFlag.verify,
				Parallel:       rootFlag.parallel,
				Reports:        m.Path(rootFlag.reports),
			})
		},
	}

	cmd.Flags().StringVar(&rootFlag.root, "root", ".", "repository root used to compute relative paths in headers")
	cmd.Flags().StringVar(&rootFlag.purpose, "purpose", "", "override the Purpose line")
	cmd.Flags().StringVar(&rootFlag.indexHint, "index-hint", "", "override the Index line (e.g. Types@L..-..; ...)")
	cmd.Flags().BoolVar(&rootFlag.rebuild, "rebuild", false, "rewrite headers from scratch, resetting manual fields")
	cmd.Flags().BoolVar(&rootFlag.resolveParents, "resolve-parents", false, "resolve external parents as Name@path#L.. in Inheritance")
	cmd.Flags().IntVar(&rootFlag.maxWidth, "max-width", domain.DefaultMaxWidth, "truncate each header line to this width")
	cmd.Flags().BoolVar(&rootFlag.dryRun, "dry-run", false, "compute everything but write nothing")
	cmd.Flags().BoolVar(&rootFlag.verify, "verify", false, "run completeness verification after annotating")
	cmd.Flags().IntVarP(&rootFlag.parallel, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&rootFlag.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVar(&rootFlag.reports, "reports", ".topline-reports", "directory for batch run reports")

	return cmd
}

// parsePaths converts the positional arguments to model paths.
func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}
	return paths
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). The exit status is nonzero
// when verification found incomplete files or any file failed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
