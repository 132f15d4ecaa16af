package app

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type SubjectHours struct {
	Subject string
	Hours   float64
}

type ReportResponse struct {
	Learner        string
	GeneratedAt    time.Time
	SubjectCount   int
	PlanDays       int
	LedgerEntries  int
	CompletedDays  int
	TotalHours     float64
	HoursBySubject []SubjectHours
	// CompletionRate is a percentage rounded to one decimal.
	CompletionRate float64
	// Productivity is a 0..100 score mixing completion and planned volume.
	Productivity int
	// FocusArea is the subject with the fewest planned hours, if any.
	FocusArea     string
	Streak        domain.Streak
	Notifications []string
}
