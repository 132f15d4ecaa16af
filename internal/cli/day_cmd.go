package cli

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDayCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"days"},
		Short:   "Track progress through the plan's days",
	}
	cmd.AddCommand(
		newDayListCmd(a),
		newDayCompleteCmd(a),
		newDaySkipCmd(a),
	)
	return cmd
}

// dayLabel joins arguments so both `day complete "Day 2"` and
// `day complete Day 2` work.
func dayLabel(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func newDayListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the progress ledger and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.Study.ListDays(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatLedger(view))
			return nil
		},
	}
}

func newDayCompleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "complete DAY",
		Aliases: []string{"done"},
		Short:   "Mark a day as completed and extend the streak",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Study.CompleteDay(commandContext(cmd), learnerFlag(cmd), dayLabel(args))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatComplete(resp))
			return nil
		},
	}
}

func newDaySkipCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "skip DAY",
		Short: "Move a day's tasks onto the following day",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Study.SkipDay(commandContext(cmd), learnerFlag(cmd), dayLabel(args))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSkip(resp))
			return nil
		},
	}
}
