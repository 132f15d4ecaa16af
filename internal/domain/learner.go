package domain

import (
	"strings"
	"time"
)

// DefaultGoalHoursPerDay is used when a learner is created without a goal.
const DefaultGoalHoursPerDay = 3.0

type Learner struct {
	ID              string
	Name            string
	GoalHoursPerDay float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (l *Learner) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return InvalidInputf("learner name is required")
	}
	if l.GoalHoursPerDay <= 0 {
		return InvalidInputf("goal hours per day must be positive, got %.2f", l.GoalHoursPerDay)
	}
	return nil
}

type Notification struct {
	ID        string
	LearnerID string
	Message   string
	CreatedAt time.Time
}
