package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect the study plan",
	}
	cmd.AddCommand(
		newPlanGenerateCmd(a),
		newPlanShowCmd(a),
		newPlanRegenerateCmd(a),
		newPlanClearCmd(a),
	)
	return cmd
}

// planInputs holds generate flags as entered, before parsing.
type planInputs struct {
	hours    string
	days     string
	examDate *time.Time
	examText string
	focus    []string
}

func (in planInputs) request(learner string) (app.GenerateRequest, error) {
	req := app.GenerateRequest{Learner: learner, Focus: in.focus}
	if s := strings.TrimSpace(in.hours); s != "" {
		h, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return req, domain.InvalidInputf("hours %q is not a number", s)
		}
		req.HoursPerDay = &h
	}
	if s := strings.TrimSpace(in.days); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil {
			return req, domain.InvalidInputf("days %q is not a whole number", s)
		}
		req.Days = &d
	}
	req.ExamDate = in.examDate
	return req, nil
}

func newPlanGenerateCmd(a *App) *cobra.Command {
	var in planInputs

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a new plan from the learner's subjects",
		Long: `Scores every subject by difficulty, exam proximity and focus, then splits
the daily budget across subjects and fills each day's remainder with review.
Generating replaces the current plan and resets the progress ledger.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			learner := learnerFlag(cmd)

			if a.interactive() && !anyChanged(cmd.Flags(), "hours", "days", "exam-date", "focus") {
				subjects, err := a.Subjects.ListSubjects(ctx, learner)
				if err != nil {
					return err
				}
				if err := runForm(planForm(subjects, &in.hours, &in.days, &in.examText, &in.focus)); err != nil {
					return err
				}
				if err := newDateValue(&in.examDate).Set(in.examText); err != nil {
					return err
				}
			}

			req, err := in.request(learner)
			if err != nil {
				return err
			}
			resp, err := a.Study.Generate(ctx, req)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatGenerate(resp, a.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&in.hours, "hours", "", "Study hours per day (default: the learner's goal)")
	cmd.Flags().StringVar(&in.days, "days", "", fmt.Sprintf("Number of days to plan (default %d)", app.DefaultPlanDays))
	cmd.Flags().Var(newDateValue(&in.examDate), "exam-date", "Exam date applying to all subjects (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&in.focus, "focus", nil, "Subjects to prioritize (repeatable or comma-separated)")
	return cmd
}

func newPlanShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.Study.ShowPlan(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatPlan(plan, a.now()))
			return nil
		},
	}
}

func newPlanRegenerateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate",
		Short: "Rebuild the plan from current subjects with the same settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Study.Regenerate(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatGenerate(resp, a.now()))
			return nil
		},
	}
}

func newPlanClearCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the plan, the ledger and all subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && a.interactive() {
				confirmed := false
				if err := runForm(confirmForm("Clear the plan, progress and every subject?", &confirmed)); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing cleared")
					return nil
				}
			}
			if err := a.Study.Clear(commandContext(cmd), learnerFlag(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schedule and subjects cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
