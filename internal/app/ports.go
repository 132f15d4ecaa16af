package app

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type LearnerUseCase interface {
	CreateLearner(ctx context.Context, name string, goalHoursPerDay float64) (*domain.Learner, error)
	GetLearner(ctx context.Context, name string) (*domain.Learner, error)
	ListLearners(ctx context.Context) ([]*domain.Learner, error)
	SetGoal(ctx context.Context, name string, goalHoursPerDay float64) (*domain.Learner, error)
}

type SubjectUseCase interface {
	AddSubject(ctx context.Context, learner string, s domain.Subject) error
	ListSubjects(ctx context.Context, learner string) ([]domain.Subject, error)
	RemoveSubject(ctx context.Context, learner, name string) error
	// LoadExamples replaces the learner's subjects with the starter set.
	LoadExamples(ctx context.Context, learner string) ([]domain.Subject, error)
}

type StudyPlanUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Regenerate(ctx context.Context, learner string) (*GenerateResponse, error)
	ShowPlan(ctx context.Context, learner string) (*domain.Plan, error)
	Clear(ctx context.Context, learner string) error
	ListDays(ctx context.Context, learner string) (*LedgerView, error)
	CompleteDay(ctx context.Context, learner, day string) (*CompleteResponse, error)
	SkipDay(ctx context.Context, learner, day string) (*SkipResponse, error)
}

type ReportUseCase interface {
	Report(ctx context.Context, learner string) (*ReportResponse, error)
}

type SnapshotUseCase interface {
	// ExportSnapshot writes the learner's snapshot to path, or returns it in
	// ExportResult.Data when path is empty.
	ExportSnapshot(ctx context.Context, learner, path string) (*ExportResult, error)
	ImportSnapshot(ctx context.Context, learner, path string) (*ImportResult, error)
}
