package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteDay_RollbackOnLedgerWriteFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addSubjects(t, learner, mathAndHistory()...)
	_, err := f.study.Generate(ctx, app.GenerateRequest{Learner: learner, HoursPerDay: hoursPtr(4), Days: daysPtr(2)})
	require.NoError(t, err)

	failing := NewStudyService(&testutil.FailingUoW{
		DB:    f.db,
		Match: "INSERT INTO progress_tasks",
		Err:   fmt.Errorf("injected ledger write failure"),
	}, nil)

	_, err = failing.CompleteDay(ctx, learner, "Day 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected ledger write failure")

	view, err := f.study.ListDays(ctx, learner)
	require.NoError(t, err)
	require.Len(t, view.Entries, 2, "ledger should be intact after rollback")
	assert.False(t, view.Entries[0].Completed)
	assert.Equal(t, domain.Streak{}, view.Streak)
}

func TestCompleteDay_RollbackOnStreakWriteFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addSubjects(t, learner, domain.Subject{Name: "Math", Difficulty: domain.DifficultyHard})
	_, err := f.study.Generate(ctx, app.GenerateRequest{Learner: learner, HoursPerDay: hoursPtr(2), Days: daysPtr(1)})
	require.NoError(t, err)

	failing := NewStudyService(&testutil.FailingUoW{
		DB:    f.db,
		Match: "INSERT INTO streaks",
		Err:   fmt.Errorf("injected streak failure"),
	}, nil)

	_, err = failing.CompleteDay(ctx, learner, "Day 1")
	require.Error(t, err)

	view, err := f.study.ListDays(ctx, learner)
	require.NoError(t, err)
	assert.False(t, view.Entries[0].Completed, "completion must roll back with the streak")
	assert.Equal(t, domain.Streak{}, view.Streak)
}

func TestGenerate_RollbackKeepsPreviousPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addSubjects(t, learner, mathAndHistory()...)
	_, err := f.study.Generate(ctx, app.GenerateRequest{Learner: learner, HoursPerDay: hoursPtr(4), Days: daysPtr(5)})
	require.NoError(t, err)

	// #1 deletes the old plan, #2 inserts the new one, #3 inserts its first day.
	failing := NewStudyService(&testutil.FailingUoW{
		DB:     f.db,
		FailOn: 3,
		Err:    fmt.Errorf("injected plan write failure"),
	}, nil)
	_, err = failing.Generate(ctx, app.GenerateRequest{Learner: learner, HoursPerDay: hoursPtr(2), Days: daysPtr(2)})
	require.Error(t, err)

	plan, err := f.study.ShowPlan(ctx, learner)
	require.NoError(t, err)
	assert.Len(t, plan.Days, 5)
	assert.Equal(t, 4.0, plan.Settings.HoursPerDay)

	view, err := f.study.ListDays(ctx, learner)
	require.NoError(t, err)
	assert.Len(t, view.Entries, 5)
}
