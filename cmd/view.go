package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/topline/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()
var viewReportsFlag string

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "view",
		Short:        "Show the most recent saved run report",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(m.Path(viewReportsFlag))
		},
	}
	cmd.Flags().StringVar(&viewReportsFlag, "reports", ".topline-reports", "directory holding batch run reports")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
