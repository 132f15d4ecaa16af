// Package progress tracks per-day completion of a study plan.
//
// A Ledger holds one entry per plan day in plan order. Entries are either
// pending or completed; skipping a day is a structural change that moves its
// tasks onto the following day and drops the skipped entry.
package progress

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type Ledger struct {
	entries []domain.ProgressEntry
	pos     map[string]int
}

// NewLedger seeds a pending entry for every day of plan. Tasks are copied so
// later changes to the plan never reach the ledger.
func NewLedger(plan *domain.Plan) *Ledger {
	entries := make([]domain.ProgressEntry, 0, len(plan.Days))
	for _, d := range plan.Days {
		entries = append(entries, domain.ProgressEntry{
			Day:   d.Label,
			Tasks: domain.CopyTasks(d.Tasks),
		})
	}
	return newLedger(entries)
}

// FromEntries rebuilds a ledger from stored entries.
func FromEntries(entries []domain.ProgressEntry) *Ledger {
	cloned := make([]domain.ProgressEntry, len(entries))
	for i := range entries {
		cloned[i] = entries[i].Clone()
	}
	return newLedger(cloned)
}

func newLedger(entries []domain.ProgressEntry) *Ledger {
	l := &Ledger{entries: entries}
	l.reindex()
	return l
}

func (l *Ledger) reindex() {
	l.pos = make(map[string]int, len(l.entries))
	for i, e := range l.entries {
		l.pos[e.Day] = i
	}
}

// Entries returns deep copies of the entries in ledger order.
func (l *Ledger) Entries() []domain.ProgressEntry {
	out := make([]domain.ProgressEntry, len(l.entries))
	for i := range l.entries {
		out[i] = l.entries[i].Clone()
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entry returns a copy of the entry for day.
func (l *Ledger) Entry(day string) (domain.ProgressEntry, bool) {
	i, ok := l.pos[day]
	if !ok {
		return domain.ProgressEntry{}, false
	}
	return l.entries[i].Clone(), true
}

// Complete marks day as completed at the given time and records the
// completion on streak. The updated streak is returned.
func (l *Ledger) Complete(day string, at time.Time, streak *domain.Streak) (domain.Streak, error) {
	i, ok := l.pos[day]
	if !ok {
		return *streak, domain.NotFoundf("no progress entry for %q", day)
	}
	e := &l.entries[i]
	if e.Completed {
		return *streak, domain.InvalidStatef("%s is already completed", day)
	}

	e.Completed = true
	stamp := at
	e.CompletedAt = &stamp
	streak.RecordCompletion()
	return *streak, nil
}

// SkipResult describes where a skipped day's tasks went.
type SkipResult struct {
	From  string
	To    string
	Moved int
	// Merged is set when To already existed and received the tasks.
	Merged bool
	// Fallback is set when From had no parseable day number.
	Fallback bool
}

// Skip carries day's tasks forward onto the next day and removes day from
// the ledger. If the next day has an entry its tasks come first; otherwise a
// pending entry is inserted where day was.
func (l *Ledger) Skip(day string) (SkipResult, error) {
	i, ok := l.pos[day]
	if !ok {
		return SkipResult{}, domain.NotFoundf("no progress entry for %q", day)
	}
	skipped := l.entries[i]
	if len(skipped.Tasks) == 0 {
		return SkipResult{}, domain.InvalidStatef("%s has no tasks to carry forward", day)
	}

	next, parsed := NextLabel(day)
	result := SkipResult{From: day, To: next, Moved: len(skipped.Tasks), Fallback: !parsed}

	if j, exists := l.pos[next]; exists {
		target := &l.entries[j]
		target.Tasks = append(domain.CopyTasks(target.Tasks), domain.CopyTasks(skipped.Tasks)...)
		result.Merged = true
		l.remove(i)
		return result, nil
	}

	l.insertAfter(i, domain.ProgressEntry{
		Day:   next,
		Tasks: domain.CopyTasks(skipped.Tasks),
	})
	l.remove(i)
	return result, nil
}

func (l *Ledger) insertAfter(i int, e domain.ProgressEntry) {
	l.entries = append(l.entries, domain.ProgressEntry{})
	copy(l.entries[i+2:], l.entries[i+1:])
	l.entries[i+1] = e
	l.reindex()
}

func (l *Ledger) remove(i int) {
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	l.reindex()
}

// TotalHours sums planned hours across all entries.
func (l *Ledger) TotalHours() float64 {
	var total float64
	for i := range l.entries {
		total += l.entries[i].TotalHours()
	}
	return total
}

func (l *Ledger) CompletedCount() int {
	n := 0
	for _, e := range l.entries {
		if e.Completed {
			n++
		}
	}
	return n
}
