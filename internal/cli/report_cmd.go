package cli

import (
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize planned hours, completion and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.Reports.Report(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatReport(r))
			return nil
		},
	}
}
