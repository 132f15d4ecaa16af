package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/spf13/cobra"
)

// DefaultLearnerName is the learner seeded by the first migration.
const DefaultLearnerName = "default"

// App holds the use cases the commands drive plus process-level settings.
type App struct {
	Learners  app.LearnerUseCase
	Subjects  app.SubjectUseCase
	Study     app.StudyPlanUseCase
	Reports   app.ReportUseCase
	Snapshots app.SnapshotUseCase

	// DefaultLearner is used when --learner is not given.
	DefaultLearner string
	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// which keeps forms out of tests and pipes.
	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Adaptive study planner with progress tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	learner := a.DefaultLearner
	if learner == "" {
		learner = DefaultLearnerName
	}
	root.PersistentFlags().String("learner", learner, "Learner whose plan to act on")
	root.SetFlagErrorFunc(flagError)

	root.AddCommand(
		newLearnerCmd(a),
		newSubjectCmd(a),
		newPlanCmd(a),
		newDayCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newTrackCmd(a),
	)
	return root
}

// learnerFlag returns the effective --learner value for cmd.
func learnerFlag(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("learner")
	if strings.TrimSpace(name) == "" {
		return DefaultLearnerName
	}
	return strings.TrimSpace(name)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, strings.TrimRight(s, "\n"))
}
