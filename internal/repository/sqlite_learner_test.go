package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnerRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLearnerRepo(db)
	ctx := context.Background()

	l := testutil.NewTestLearner("ana", testutil.WithGoalHours(4.5))
	require.NoError(t, repo.Create(ctx, l))

	byID, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.Name)
	assert.Equal(t, 4.5, byID.GoalHoursPerDay)
	assert.True(t, l.CreatedAt.Equal(byID.CreatedAt))

	byName, err := repo.GetByName(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, l.ID, byName.ID)
}

func TestLearnerRepo_CreateSeedsStreak(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	l := testutil.NewTestLearner("ben")
	require.NoError(t, NewSQLiteLearnerRepo(db).Create(ctx, l))

	s, err := NewSQLiteStreakRepo(db).Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Streak{}, s)
}

func TestLearnerRepo_DuplicateNameIsInvalidInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLearnerRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLearner("ana")))
	err := repo.Create(ctx, testutil.NewTestLearner("ana"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLearnerRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLearnerRepo(db)

	_, err := repo.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestLearnerRepo_ListIncludesSeededDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLearnerRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestLearner("zoe")))
	learners, err := repo.List(ctx)
	require.NoError(t, err)

	var names []string
	for _, l := range learners {
		names = append(names, l.Name)
	}
	assert.ElementsMatch(t, []string{"default", "zoe"}, names)
}

func TestLearnerRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteLearnerRepo(db)
	ctx := context.Background()

	l := testutil.NewTestLearner("ana")
	require.NoError(t, repo.Create(ctx, l))

	l.GoalHoursPerDay = 6
	require.NoError(t, repo.Update(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.GoalHoursPerDay)

	missing := testutil.NewTestLearner("ghost")
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}
