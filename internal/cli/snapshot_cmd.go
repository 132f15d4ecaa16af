package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the learner's state as a JSON snapshot",
		Long:  "Writes subjects, plan, progress, streak and notifications. Without --out the JSON goes to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Snapshots.ExportSnapshot(commandContext(cmd), learnerFlag(cmd), out)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(res.Data)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d subject(s), %d plan day(s), %d ledger entries to %s\n",
				res.Subjects, res.Days, res.Entries, formatter.Bold(res.Path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Snapshot file to write")
	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the learner's state with a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Snapshots.ImportSnapshot(commandContext(cmd), learnerFlag(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d subject(s), %d plan day(s), %d ledger entries saved %s\n",
				res.Subjects, res.Days, res.Entries, res.SavedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}
