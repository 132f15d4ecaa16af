package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/google/uuid"
)

type learnerService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewLearnerService(uow db.UnitOfWork, observers ...UseCaseObserver) LearnerService {
	return &learnerService{uow: uow, observer: useCaseObserverOrNoop(observers), now: systemClock}
}

func (s *learnerService) CreateLearner(ctx context.Context, name string, goal float64) (l *domain.Learner, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": name}
	defer func() { observe(ctx, s.observer, "create-learner", startedAt, fields, err) }()

	if goal == 0 {
		goal = domain.DefaultGoalHoursPerDay
	}
	now := s.now()
	l = &domain.Learner{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(name),
		GoalHoursPerDay: goal,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = l.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return newTxRepos(tx).learners.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *learnerService) GetLearner(ctx context.Context, name string) (*domain.Learner, error) {
	var l *domain.Learner
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		l, err = newTxRepos(tx).learner(ctx, name)
		return err
	})
	return l, err
}

func (s *learnerService) ListLearners(ctx context.Context) ([]*domain.Learner, error) {
	var out []*domain.Learner
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = newTxRepos(tx).learners.List(ctx)
		return err
	})
	return out, err
}

func (s *learnerService) SetGoal(ctx context.Context, name string, goal float64) (l *domain.Learner, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": name, "goal_hours": goal}
	defer func() { observe(ctx, s.observer, "set-goal", startedAt, fields, err) }()

	if !(goal > 0) {
		return nil, domain.InvalidInputf("goal hours per day must be positive, got %v", goal)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		found, err := repos.learner(ctx, name)
		if err != nil {
			return err
		}
		found.GoalHoursPerDay = goal
		found.UpdatedAt = s.now()
		if err := repos.learners.Update(ctx, found); err != nil {
			return err
		}
		l = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
