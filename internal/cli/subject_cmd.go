package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects"},
		Short:   "Manage the subjects to plan for",
	}
	cmd.AddCommand(
		newSubjectAddCmd(a),
		newSubjectListCmd(a),
		newSubjectRemoveCmd(a),
		newSubjectExamplesCmd(a),
	)
	return cmd
}

func newSubjectAddCmd(a *App) *cobra.Command {
	var difficulty, examText string
	var exam *time.Time

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Add a subject",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if strings.TrimSpace(name) == "" {
				if !a.interactive() {
					return domain.InvalidInputf("subject name is required")
				}
				examText = newDateValue(&exam).String()
				if err := runForm(subjectForm(&name, &difficulty, &examText)); err != nil {
					return err
				}
				if err := newDateValue(&exam).Set(examText); err != nil {
					return err
				}
			}

			d, err := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(difficulty)))
			if err != nil {
				return err
			}
			s := domain.Subject{Name: strings.TrimSpace(name), Difficulty: d, ExamDate: exam}
			if err := a.Subjects.AddSubject(commandContext(cmd), learnerFlag(cmd), s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", formatter.Bold(s.Name), formatter.DifficultyBadge(s.Difficulty))
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", string(domain.DifficultyMedium), "easy, medium or hard")
	cmd.Flags().Var(newDateValue(&exam), "exam-date", "Exam date for this subject (YYYY-MM-DD)")
	return cmd
}

func newSubjectListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := a.Subjects.ListSubjects(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), formatter.FormatSubjects(subjects, a.now()))
			return nil
		},
	}
}

func newSubjectRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Remove a subject",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Subjects.RemoveSubject(commandContext(cmd), learnerFlag(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
}

func newSubjectExamplesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Replace subjects with a starter set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := a.Subjects.LoadExamples(commandContext(cmd), learnerFlag(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d example subjects\n", len(subjects))
			writeLine(cmd.OutOrStdout(), formatter.FormatSubjects(subjects, a.now()))
			return nil
		},
	}
}
