package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultLearner = "default"

func subjectNames(subjects []domain.Subject) []string {
	names := make([]string, len(subjects))
	for i, s := range subjects {
		names[i] = s.Name
	}
	return names
}

func TestSubjectRepo_AddKeepsInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	exam := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Physics", testutil.WithDifficulty(domain.DifficultyHard))))
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Art", testutil.WithExamDate(exam))))
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Biology")))

	got, err := repo.List(ctx, defaultLearner)
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics", "Art", "Biology"}, subjectNames(got))
	assert.Equal(t, domain.DifficultyHard, got[0].Difficulty)
	assert.Nil(t, got[0].ExamDate)
	require.NotNil(t, got[1].ExamDate)
	assert.Equal(t, "2025-06-01", got[1].ExamDate.Format("2006-01-02"))
}

func TestSubjectRepo_DuplicateIsInvalidInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Math")))
	err := repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Math"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Math")))
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("History")))

	require.NoError(t, repo.Delete(ctx, defaultLearner, "Math"))
	got, err := repo.List(ctx, defaultLearner)
	require.NoError(t, err)
	assert.Equal(t, []string{"History"}, subjectNames(got))

	assert.ErrorIs(t, repo.Delete(ctx, defaultLearner, "Math"), ErrNotFound)
}

func TestSubjectRepo_AddAfterDeleteAppends(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject(n)))
	}
	require.NoError(t, repo.Delete(ctx, defaultLearner, "A"))
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("A")))

	got, err := repo.List(ctx, defaultLearner)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, subjectNames(got))
}

func TestSubjectRepo_ReplaceAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Old")))
	require.NoError(t, repo.ReplaceAll(ctx, defaultLearner, domain.ExampleSubjects()))

	got, err := repo.List(ctx, defaultLearner)
	require.NoError(t, err)
	assert.Equal(t, subjectNames(domain.ExampleSubjects()), subjectNames(got))

	require.NoError(t, repo.DeleteAll(ctx, defaultLearner))
	got, err = repo.List(ctx, defaultLearner)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubjectRepo_ScopedByLearner(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	other := testutil.NewTestLearner("other")
	require.NoError(t, NewSQLiteLearnerRepo(db).Create(ctx, other))

	repo := NewSQLiteSubjectRepo(db)
	require.NoError(t, repo.Add(ctx, defaultLearner, testutil.NewTestSubject("Math")))
	require.NoError(t, repo.Add(ctx, other.ID, testutil.NewTestSubject("Math")))

	got, err := repo.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
