package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type subjectService struct {
	uow      db.UnitOfWork
	locks    *LearnerLocks
	observer UseCaseObserver
}

func NewSubjectService(uow db.UnitOfWork, locks *LearnerLocks, observers ...UseCaseObserver) SubjectService {
	return &subjectService{uow: uow, locks: locksOrNew(locks), observer: useCaseObserverOrNoop(observers)}
}

func (s *subjectService) AddSubject(ctx context.Context, learner string, subject domain.Subject) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "subject": subject.Name}
	defer func() { observe(ctx, s.observer, "add-subject", startedAt, fields, err) }()

	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Difficulty == "" {
		subject.Difficulty = domain.DifficultyMedium
	}
	if err = subject.Validate(); err != nil {
		return err
	}

	defer s.locks.Lock(learner)()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		return repos.subjects.Add(ctx, l.ID, subject)
	})
}

func (s *subjectService) ListSubjects(ctx context.Context, learner string) ([]domain.Subject, error) {
	var out []domain.Subject
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		out, err = repos.subjects.List(ctx, l.ID)
		return err
	})
	return out, err
}

func (s *subjectService) RemoveSubject(ctx context.Context, learner, name string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "subject": name}
	defer func() { observe(ctx, s.observer, "remove-subject", startedAt, fields, err) }()

	defer s.locks.Lock(learner)()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		return repos.subjects.Delete(ctx, l.ID, name)
	})
}

func (s *subjectService) LoadExamples(ctx context.Context, learner string) (out []domain.Subject, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner}
	defer func() { observe(ctx, s.observer, "load-example-subjects", startedAt, fields, err) }()

	examples := domain.ExampleSubjects()
	defer s.locks.Lock(learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		return repos.subjects.ReplaceAll(ctx, l.ID, examples)
	})
	if err != nil {
		return nil, err
	}
	fields["subjects"] = len(examples)
	return examples, nil
}
