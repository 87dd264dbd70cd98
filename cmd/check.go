package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/topline/internal/domain"
	m "github.com/mouse-blink/topline/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()
var checkRootFlag string
var checkExcludeFlags []string

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify that auto-populated header fields are complete",
		Long: `Check scans files carrying the header marker and verifies that fields
the annotator should have populated are not left as placeholders: Key funcs
must be filled when the file declares functions, Entrypoints when it has an
entrypoint idiom. Key types and Index may legitimately stay TODO.

Exits nonzero when any file is incomplete, so callers can decide to re-run
annotation.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Check(domain.CheckArgs{
				Paths:   parsePaths(args),
				Root:    m.Path(checkRootFlag),
				Exclude: checkExcludeFlags,
			})
		},
	}
	cmd.Flags().StringVar(&checkRootFlag, "root", ".", "repository root used to compute relative paths")
	cmd.Flags().StringArrayVarP(&checkExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
