package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() *Snapshot {
	p := samplePlan()
	done := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	return &Snapshot{
		Subjects: []Subject{{Name: "Math", Difficulty: DifficultyHard}, {Name: "History", Difficulty: DifficultyEasy}},
		Plan:     p,
		Progress: []ProgressEntry{
			{Day: "Day 1", Tasks: CopyTasks(p.Days[0].Tasks), Completed: true, CompletedAt: &done},
			{Day: "Day 2", Tasks: CopyTasks(p.Days[1].Tasks)},
		},
		Streak:  Streak{Current: 1, Best: 1},
		SavedAt: done,
	}
}

func TestSnapshot_ValidateAcceptsConsistentState(t *testing.T) {
	assert.NoError(t, sampleSnapshot().Validate())
}

func TestSnapshot_ValidateRejectsProgressWithoutPlan(t *testing.T) {
	s := sampleSnapshot()
	s.Plan = nil
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}

func TestSnapshot_ValidateRejectsDuplicateProgressDay(t *testing.T) {
	s := sampleSnapshot()
	s.Progress[1].Day = "Day 1"
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}

func TestSnapshot_ValidateRejectsBadStreak(t *testing.T) {
	s := sampleSnapshot()
	s.Streak = Streak{Current: 3, Best: 1}
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}

func TestSnapshot_ValidateRejectsCompletionTimeOnPendingEntry(t *testing.T) {
	s := sampleSnapshot()
	s.Progress[0].Completed = false
	assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
}

func TestProgressEntry_CloneIsIndependent(t *testing.T) {
	e := sampleSnapshot().Progress[0]
	c := e.Clone()
	c.Tasks[0].Hours = 99
	*c.CompletedAt = time.Time{}
	assert.InDelta(t, 2.0, e.Tasks[0].Hours, 1e-9)
	assert.False(t, e.CompletedAt.IsZero())
	assert.Equal(t, EntryCompleted, e.Status())
}
