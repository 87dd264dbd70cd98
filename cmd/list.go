package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/topline/internal/domain"
	m "github.com/mouse-blink/topline/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listRootFlag string
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list [paths...]",
		Short:        "List supported files with header state and symbol counts",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Paths:   parsePaths(args),
				Root:    m.Path(listRootFlag),
				Exclude: listExcludeFlags,
			})
		},
	}
	cmd.Flags().StringVar(&listRootFlag, "root", ".", "repository root used to compute relative paths")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
