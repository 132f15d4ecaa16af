package progress

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func threeDayPlan() *domain.Plan {
	return &domain.Plan{
		Settings: domain.PlanSettings{HoursPerDay: 4, Days: 3},
		Days: domain.DayPlans{
			{Label: "Day 1", Tasks: []domain.Task{{Subject: "Math", Hours: 2.86}, {Subject: "History", Hours: 1.14}}},
			{Label: "Day 2", Tasks: []domain.Task{{Subject: "Math", Hours: 2.85}, {Subject: "History", Hours: 1.15}}},
			{Label: "Day 3", Tasks: []domain.Task{{Subject: "Math", Hours: 4}}},
		},
	}
}

func labels(l *Ledger) []string {
	var out []string
	for _, e := range l.Entries() {
		out = append(out, e.Day)
	}
	return out
}

func TestNewLedger_OnePendingEntryPerDay(t *testing.T) {
	l := NewLedger(threeDayPlan())
	require.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Day 1", "Day 2", "Day 3"}, labels(l))
	for _, e := range l.Entries() {
		assert.Equal(t, domain.EntryPending, e.Status())
		assert.Nil(t, e.CompletedAt)
	}
}

func TestNewLedger_TasksIndependentOfPlan(t *testing.T) {
	plan := threeDayPlan()
	l := NewLedger(plan)

	plan.Days[0].Tasks[0].Hours = 99
	e, ok := l.Entry("Day 1")
	require.True(t, ok)
	assert.InDelta(t, 2.86, e.Tasks[0].Hours, 1e-9)

	e.Tasks[0].Hours = 42
	again, _ := l.Entry("Day 1")
	assert.InDelta(t, 2.86, again.Tasks[0].Hours, 1e-9, "Entry must return a copy")
}

func TestComplete_UpdatesStreakAndStamp(t *testing.T) {
	l := NewLedger(threeDayPlan())
	var streak domain.Streak

	got, err := l.Complete("Day 1", testNow, &streak)
	require.NoError(t, err)
	assert.Equal(t, domain.Streak{Current: 1, Best: 1}, got)

	e, _ := l.Entry("Day 1")
	assert.True(t, e.Completed)
	require.NotNil(t, e.CompletedAt)
	assert.Equal(t, testNow, *e.CompletedAt)
	assert.Equal(t, 1, l.CompletedCount())
}

func TestComplete_TwiceIsInvalidState(t *testing.T) {
	l := NewLedger(threeDayPlan())
	var streak domain.Streak

	_, err := l.Complete("Day 1", testNow, &streak)
	require.NoError(t, err)

	got, err := l.Complete("Day 1", testNow.Add(time.Hour), &streak)
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, domain.Streak{Current: 1, Best: 1}, got)
	assert.Equal(t, domain.Streak{Current: 1, Best: 1}, streak, "streak unchanged on failure")

	e, _ := l.Entry("Day 1")
	assert.Equal(t, testNow, *e.CompletedAt, "first completion time kept")
}

func TestComplete_UnknownDayIsNotFound(t *testing.T) {
	l := NewLedger(threeDayPlan())
	streak := domain.Streak{Current: 2, Best: 4}

	_, err := l.Complete("Day 9", testNow, &streak)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.Streak{Current: 2, Best: 4}, streak)
	assert.Equal(t, 0, l.CompletedCount())
}

func TestComplete_StreakMonotonic(t *testing.T) {
	l := NewLedger(threeDayPlan())
	streak := domain.Streak{Current: 0, Best: 2}

	for i, day := range []string{"Day 1", "Day 2", "Day 3"} {
		before := streak.Current
		got, err := l.Complete(day, testNow, &streak)
		require.NoError(t, err)
		assert.Equal(t, before+1, got.Current)
		assert.GreaterOrEqual(t, got.Best, got.Current, "step %d", i)
	}
	assert.Equal(t, domain.Streak{Current: 3, Best: 3}, streak)
}

func TestSkip_MergesIntoExistingNextDay(t *testing.T) {
	l := NewLedger(threeDayPlan())

	result, err := l.Skip("Day 1")
	require.NoError(t, err)
	assert.Equal(t, SkipResult{From: "Day 1", To: "Day 2", Moved: 2, Merged: true}, result)

	_, ok := l.Entry("Day 1")
	assert.False(t, ok, "skipped day is removed")
	assert.Equal(t, []string{"Day 2", "Day 3"}, labels(l))

	day2, _ := l.Entry("Day 2")
	require.Len(t, day2.Tasks, 4)
	assert.InDelta(t, 2.85, day2.Tasks[0].Hours, 1e-9, "next day's own tasks stay first")
	assert.InDelta(t, 2.86, day2.Tasks[2].Hours, 1e-9, "skipped tasks appended in order")
	assert.Equal(t, "History", day2.Tasks[3].Subject)
}

func TestSkip_LastDayInsertsNewEntryInPlace(t *testing.T) {
	l := NewLedger(threeDayPlan())

	result, err := l.Skip("Day 3")
	require.NoError(t, err)
	assert.Equal(t, "Day 4", result.To)
	assert.False(t, result.Merged)
	assert.Equal(t, []string{"Day 1", "Day 2", "Day 4"}, labels(l))

	day4, _ := l.Entry("Day 4")
	assert.Equal(t, domain.EntryPending, day4.Status())
	assert.Len(t, day4.Tasks, 1)
}

func TestSkip_MiddleGapInsertsAfterSkippedPosition(t *testing.T) {
	l := FromEntries([]domain.ProgressEntry{
		{Day: "Day 1", Tasks: []domain.Task{{Subject: "A", Hours: 1}}},
		{Day: "Day 3", Tasks: []domain.Task{{Subject: "B", Hours: 1}}},
	})

	_, err := l.Skip("Day 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Day 2", "Day 3"}, labels(l))
}

func TestSkip_CompletedDayCanBeCarriedForward(t *testing.T) {
	l := NewLedger(threeDayPlan())
	var streak domain.Streak
	_, err := l.Complete("Day 2", testNow, &streak)
	require.NoError(t, err)

	_, err = l.Skip("Day 2")
	require.NoError(t, err)
	day3, _ := l.Entry("Day 3")
	assert.Len(t, day3.Tasks, 3)
	assert.Equal(t, 1, streak.Current, "skip never touches the streak")
}

func TestSkip_EmptyDayIsInvalidState(t *testing.T) {
	l := FromEntries([]domain.ProgressEntry{{Day: "Day 1"}, {Day: "Day 2", Tasks: []domain.Task{{Subject: "A", Hours: 1}}}})

	_, err := l.Skip("Day 1")
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, []string{"Day 1", "Day 2"}, labels(l), "no mutation on failure")
}

func TestSkip_UnknownDayIsNotFound(t *testing.T) {
	l := NewLedger(threeDayPlan())
	_, err := l.Skip("Day 7")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 3, l.Len())
}

func TestSkip_UnparseableLabelFallsBack(t *testing.T) {
	l := FromEntries([]domain.ProgressEntry{
		{Day: "Revision", Tasks: []domain.Task{{Subject: "A", Hours: 1}}},
		{Day: "Day 1", Tasks: []domain.Task{{Subject: "B", Hours: 1}}},
	})

	result, err := l.Skip("Revision")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, "Revision (tasks appended)", result.To)
	assert.Equal(t, []string{"Revision (tasks appended)", "Day 1"}, labels(l))
}

func TestSkip_FallbackLabelSkipsToNumberedDay(t *testing.T) {
	l := FromEntries([]domain.ProgressEntry{
		{Day: "Day 3 (tasks appended)", Tasks: []domain.Task{{Subject: "A", Hours: 1}}},
	})
	result, err := l.Skip("Day 3 (tasks appended)")
	require.NoError(t, err)
	assert.Equal(t, "Day 4", result.To)
	assert.False(t, result.Fallback)
}

// TestSkip_ConservesHours property-tests that skipping never loses or
// duplicates planned hours.
func TestSkip_ConservesHours(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		days := rng.Intn(10) + 1
		plan := &domain.Plan{}
		for d := 1; d <= days; d++ {
			var tasks []domain.Task
			for k := 0; k < rng.Intn(4); k++ {
				tasks = append(tasks, domain.Task{Subject: fmt.Sprintf("S%d", k), Hours: float64(rng.Intn(16)+1) / 4})
			}
			plan.Days = append(plan.Days, domain.DayPlan{Label: domain.DayLabel(d), Tasks: tasks})
		}
		l := NewLedger(plan)

		for step := 0; step < 5 && l.Len() > 0; step++ {
			entries := l.Entries()
			pick := entries[rng.Intn(len(entries))]
			before := l.TotalHours()
			beforeTasks := countTasks(l)

			_, err := l.Skip(pick.Day)
			if len(pick.Tasks) == 0 {
				require.ErrorIs(t, err, domain.ErrInvalidState)
				continue
			}
			require.NoError(t, err, "trial %d step %d", trial, step)
			assert.InDelta(t, before, l.TotalHours(), 1e-9, "trial %d step %d", trial, step)
			assert.Equal(t, beforeTasks, countTasks(l), "trial %d step %d", trial, step)
		}
	}
}

func countTasks(l *Ledger) int {
	n := 0
	for _, e := range l.Entries() {
		n += len(e.Tasks)
	}
	return n
}

func TestNextLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Day 1", "Day 2", true},
		{"Day 41", "Day 42", true},
		{"Week 3", "Day 4", true},
		{"Day", "Day (tasks appended)", false},
		{"Day x", "Day x (tasks appended)", false},
		{"", " (tasks appended)", false},
	}
	for _, tc := range cases {
		got, ok := NextLabel(tc.in)
		assert.Equal(t, tc.want, got, "NextLabel(%q)", tc.in)
		assert.Equal(t, tc.ok, ok, "NextLabel(%q)", tc.in)
	}
}
