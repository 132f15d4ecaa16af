package repository

import (
	"context"

	"github.com/alexanderramin/studyplan/internal/domain"
)

type LearnerRepo interface {
	Create(ctx context.Context, l *domain.Learner) error
	GetByID(ctx context.Context, id string) (*domain.Learner, error)
	GetByName(ctx context.Context, name string) (*domain.Learner, error)
	List(ctx context.Context) ([]*domain.Learner, error)
	Update(ctx context.Context, l *domain.Learner) error
}

// SubjectRepo stores a learner's subjects in insertion order.
type SubjectRepo interface {
	Add(ctx context.Context, learnerID string, s domain.Subject) error
	List(ctx context.Context, learnerID string) ([]domain.Subject, error)
	Delete(ctx context.Context, learnerID, name string) error
	ReplaceAll(ctx context.Context, learnerID string, subjects []domain.Subject) error
	DeleteAll(ctx context.Context, learnerID string) error
}

// PlanRepo stores at most one plan per learner.
type PlanRepo interface {
	Get(ctx context.Context, learnerID string) (*domain.Plan, error)
	Save(ctx context.Context, learnerID string, p *domain.Plan) error
	Delete(ctx context.Context, learnerID string) error
}

// ProgressRepo stores the ledger entries of a learner's current plan.
type ProgressRepo interface {
	List(ctx context.Context, learnerID string) ([]domain.ProgressEntry, error)
	Replace(ctx context.Context, learnerID string, entries []domain.ProgressEntry) error
	DeleteAll(ctx context.Context, learnerID string) error
}

type StreakRepo interface {
	Get(ctx context.Context, learnerID string) (domain.Streak, error)
	Upsert(ctx context.Context, learnerID string, s domain.Streak) error
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListRecent returns up to limit notifications, newest first.
	ListRecent(ctx context.Context, learnerID string, limit int) ([]*domain.Notification, error)
	// List returns every notification, oldest first.
	List(ctx context.Context, learnerID string) ([]*domain.Notification, error)
	DeleteAll(ctx context.Context, learnerID string) error
}
