package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newLearnerCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learner",
		Short: "Manage learners",
	}
	cmd.AddCommand(
		newLearnerAddCmd(a),
		newLearnerListCmd(a),
		newLearnerGoalCmd(a),
	)
	return cmd
}

func newLearnerAddCmd(a *App) *cobra.Command {
	var goal float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a learner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.Learners.CreateLearner(commandContext(cmd), args[0], goal)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created learner %s (goal %s/day)\n",
				formatter.Bold(l.Name), formatter.FormatHours(l.GoalHoursPerDay))
			return nil
		},
	}
	cmd.Flags().Float64Var(&goal, "goal", domain.DefaultGoalHoursPerDay, "Daily study goal in hours")
	return cmd
}

func newLearnerListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List learners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			learners, err := a.Learners.ListLearners(commandContext(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatLearners(learners, learnerFlag(cmd)))
			return nil
		},
	}
}

func newLearnerGoalCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goal HOURS",
		Short: "Set the learner's daily study goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return domain.InvalidInputf("goal %q is not a number", args[0])
			}
			l, err := a.Learners.SetGoal(commandContext(cmd), learnerFlag(cmd), hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now aims for %s/day\n",
				formatter.Bold(l.Name), formatter.FormatHours(l.GoalHoursPerDay))
			return nil
		},
	}
}
