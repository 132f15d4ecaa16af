package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	db        *sql.DB
	uow       db.UnitOfWork
	learners  *learnerService
	subjects  *subjectService
	study     *studyService
	reports   *reportService
	snapshots *snapshotService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	locks := NewLearnerLocks()
	clock := func() time.Time { return fixedNow }

	f := &fixture{
		db:        database,
		uow:       uow,
		learners:  NewLearnerService(uow).(*learnerService),
		subjects:  NewSubjectService(uow, locks).(*subjectService),
		study:     NewStudyService(uow, locks).(*studyService),
		reports:   NewReportService(uow).(*reportService),
		snapshots: NewSnapshotService(uow, locks).(*snapshotService),
	}
	f.learners.now = clock
	f.study.now = clock
	f.reports.now = clock
	f.snapshots.now = clock
	return f
}

func (f *fixture) addSubjects(t *testing.T, learner string, subjects ...domain.Subject) {
	t.Helper()
	for _, s := range subjects {
		require.NoError(t, f.subjects.AddSubject(context.Background(), learner, s))
	}
}

func mathAndHistory() []domain.Subject {
	return []domain.Subject{
		testutil.NewTestSubject("Math", testutil.WithDifficulty(domain.DifficultyHard)),
		testutil.NewTestSubject("History", testutil.WithDifficulty(domain.DifficultyEasy)),
	}
}

func hoursPtr(h float64) *float64 { return &h }
func daysPtr(d int) *int { return &d }
