package testutil

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

// Learner options
type LearnerOption func(*domain.Learner)

func WithGoalHours(h float64) LearnerOption {
	return func(l *domain.Learner) {
		l.GoalHoursPerDay = h
	}
}

func WithLearnerID(id string) LearnerOption {
	return func(l *domain.Learner) {
		l.ID = id
	}
}

func NewTestLearner(name string, opts ...LearnerOption) *domain.Learner {
	now := time.Now().UTC().Truncate(time.Second)
	l := &domain.Learner{
		ID:              uuid.New().String(),
		Name:            name,
		GoalHoursPerDay: domain.DefaultGoalHoursPerDay,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subject options
type SubjectOption func(*domain.Subject)

func WithDifficulty(d domain.Difficulty) SubjectOption {
	return func(s *domain.Subject) {
		s.Difficulty = d
	}
}

func WithExamDate(d time.Time) SubjectOption {
	return func(s *domain.Subject) {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		s.ExamDate = &day
	}
}

func NewTestSubject(name string, opts ...SubjectOption) domain.Subject {
	s := domain.Subject{Name: name, Difficulty: domain.DifficultyMedium}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestPlan builds a plan of the given number of days in which every day
// holds one task per subject with the given hours each.
func NewTestPlan(days int, hours float64, subjects ...string) *domain.Plan {
	p := &domain.Plan{
		Settings: domain.PlanSettings{
			HoursPerDay: hours * float64(len(subjects)),
			Days:        days,
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
		},
	}
	for d := 1; d <= days; d++ {
		day := domain.DayPlan{Label: domain.DayLabel(d)}
		for _, s := range subjects {
			day.Tasks = append(day.Tasks, domain.Task{Subject: s, Hours: hours, Note: "note " + s})
		}
		p.Days = append(p.Days, day)
	}
	return p
}

func NewTestNotification(learnerID, message string, at time.Time) *domain.Notification {
	return &domain.Notification{
		ID:        uuid.New().String(),
		LearnerID: learnerID,
		Message:   message,
		CreatedAt: at.UTC().Truncate(time.Second),
	}
}
