package app

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// DefaultPlanDays is used when a generate request leaves Days nil.
const DefaultPlanDays = 7

type GenerateRequest struct {
	Learner string
	// HoursPerDay falls back to the learner's goal when nil.
	HoursPerDay *float64
	// Days falls back to DefaultPlanDays when nil. Zero is rejected.
	Days        *int
	ExamDate    *time.Time
	Focus       []string
	Now         *time.Time
}

// SubjectScore is one subject's weight and horizon total in a generated plan.
type SubjectScore struct {
	Subject     string
	Difficulty  domain.Difficulty
	Score       float64
	TargetHours float64
	Reasons     []string
}

type GenerateResponse struct {
	Plan          *domain.Plan
	Ledger        []domain.ProgressEntry
	Scores        []SubjectScore
	Overflow      bool
	Notifications []string
}

type LedgerView struct {
	Entries []domain.ProgressEntry
	Streak  domain.Streak
}

type CompleteResponse struct {
	Day         string
	CompletedAt time.Time
	Streak      domain.Streak
	Remaining   int
}

type SkipResponse struct {
	From     string
	To       string
	Moved    int
	Merged   bool
	Fallback bool
	Entries  []domain.ProgressEntry
}
