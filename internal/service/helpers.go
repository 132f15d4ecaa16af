package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/google/uuid"
)

// txRepos bundles the repositories a use case needs inside one transaction.
type txRepos struct {
	learners      *repository.SQLiteLearnerRepo
	subjects      *repository.SQLiteSubjectRepo
	plans         *repository.SQLitePlanRepo
	progress      *repository.SQLiteProgressRepo
	streaks       *repository.SQLiteStreakRepo
	notifications *repository.SQLiteNotificationRepo
}

func newTxRepos(tx db.DBTX) txRepos {
	return txRepos{
		learners:      repository.NewSQLiteLearnerRepo(tx),
		subjects:      repository.NewSQLiteSubjectRepo(tx),
		plans:         repository.NewSQLitePlanRepo(tx),
		progress:      repository.NewSQLiteProgressRepo(tx),
		streaks:       repository.NewSQLiteStreakRepo(tx),
		notifications: repository.NewSQLiteNotificationRepo(tx),
	}
}

func (r txRepos) learner(ctx context.Context, name string) (*domain.Learner, error) {
	l, err := r.learners.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("learner %q", name)
		}
		return nil, err
	}
	return l, nil
}

// plan loads the learner's plan, reporting a missing plan in terms the user
// can act on.
func (r txRepos) plan(ctx context.Context, learnerID string) (*domain.Plan, error) {
	p, err := r.plans.Get(ctx, learnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf("no study plan yet; run 'plan generate' first")
		}
		return nil, err
	}
	return p, nil
}

func (r txRepos) notify(ctx context.Context, learnerID, message string, at time.Time) error {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		LearnerID: learnerID,
		Message:   message,
		CreatedAt: at,
	}
	if err := r.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("recording notification: %w", err)
	}
	return nil
}

func messages(ns []*domain.Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Message
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func systemClock() time.Time {
	return time.Now().UTC()
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
