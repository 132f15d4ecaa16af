package domain

import "time"

// ProgressEntry tracks completion of one plan day. Tasks are an independent
// copy of the day's plan tasks.
type ProgressEntry struct {
	Day         string     `json:"day"`
	Tasks       []Task     `json:"tasks"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (e *ProgressEntry) Status() EntryStatus {
	if e.Completed {
		return EntryCompleted
	}
	return EntryPending
}

func (e *ProgressEntry) TotalHours() float64 {
	return sumHours(e.Tasks)
}

// Clone returns a deep copy of the entry.
func (e *ProgressEntry) Clone() ProgressEntry {
	c := *e
	c.Tasks = CopyTasks(e.Tasks)
	if e.CompletedAt != nil {
		at := *e.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

// CopyTasks returns a fresh slice holding copies of tasks.
func CopyTasks(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// ValidateProgress checks day labels are present and unique and that every
// task has positive hours.
func ValidateProgress(entries []ProgressEntry) error {
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Day == "" {
			return InvalidInputf("progress entry %d has no day label", i)
		}
		if seen[e.Day] {
			return InvalidInputf("duplicate progress entry %q", e.Day)
		}
		seen[e.Day] = true
		if err := validateTasks(e.Day, e.Tasks); err != nil {
			return err
		}
		if e.CompletedAt != nil && !e.Completed {
			return InvalidInputf("progress entry %q has a completion time but is pending", e.Day)
		}
	}
	return nil
}
