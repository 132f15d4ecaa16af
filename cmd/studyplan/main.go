package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

func run() error {
	// STUDYPLAN_DB overrides ~/.studyplan/studyplan.db
	dbPath := os.Getenv("STUDYPLAN_DB")
	if dbPath == "" {
		dbPath = db.DefaultPath()
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("STUDYPLAN_LOG_USECASES") == "1" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	uow := db.NewSQLiteUnitOfWork(database)
	locks := service.NewLearnerLocks()

	app := &cli.App{
		Learners:       service.NewLearnerService(uow, observer),
		Subjects:       service.NewSubjectService(uow, locks, observer),
		Study:          service.NewStudyService(uow, locks, observer),
		Reports:        service.NewReportService(uow, observer),
		Snapshots:      service.NewSnapshotService(uow, locks, observer),
		DefaultLearner: os.Getenv("STUDYPLAN_LEARNER"),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
