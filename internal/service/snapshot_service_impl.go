package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
)

type snapshotService struct {
	uow      db.UnitOfWork
	locks    *LearnerLocks
	observer UseCaseObserver
	now      func() time.Time
}

func NewSnapshotService(uow db.UnitOfWork, locks *LearnerLocks, observers ...UseCaseObserver) SnapshotService {
	return &snapshotService{
		uow:      uow,
		locks:    locksOrNew(locks),
		observer: useCaseObserverOrNoop(observers),
		now:      systemClock,
	}
}

func (s *snapshotService) ExportSnapshot(ctx context.Context, learner, path string) (res *app.ExportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "path": path}
	defer func() { observe(ctx, s.observer, "export-snapshot", startedAt, fields, err) }()

	snap, err := s.snapshot(ctx, learner)
	if err != nil {
		return nil, err
	}
	res = &app.ExportResult{Path: path, Subjects: len(snap.Subjects), Entries: len(snap.Progress)}
	if snap.Plan != nil {
		res.Days = len(snap.Plan.Days)
	}

	if path == "" {
		res.Data, err = repository.EncodeSnapshot(snap)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	if err = repository.NewSnapshotFileStore(path).Save(snap); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *snapshotService) snapshot(ctx context.Context, learner string) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{SavedAt: s.now()}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		if snap.Subjects, err = repos.subjects.List(ctx, l.ID); err != nil {
			return err
		}
		plan, err := repos.plans.Get(ctx, l.ID)
		if err == nil {
			snap.Plan = plan
			if snap.Progress, err = repos.progress.List(ctx, l.ID); err != nil {
				return err
			}
		} else if !isNotFound(err) {
			return err
		}
		if snap.Streak, err = repos.streaks.Get(ctx, l.ID); err != nil {
			return err
		}
		all, err := repos.notifications.List(ctx, l.ID)
		if err != nil {
			return err
		}
		snap.Notifications = messages(all)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ImportSnapshot loads a snapshot file and replaces the learner's subjects,
// plan, ledger, streak and notifications with its contents. Nothing changes
// unless the whole document validates.
func (s *snapshotService) ImportSnapshot(ctx context.Context, learner, path string) (res *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "path": path}
	defer func() { observe(ctx, s.observer, "import-snapshot", startedAt, fields, err) }()

	snap, err := repository.NewSnapshotFileStore(path).Load()
	if err != nil {
		return nil, err
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = s.now()
	}

	defer s.locks.Lock(learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		if err := repos.subjects.ReplaceAll(ctx, l.ID, snap.Subjects); err != nil {
			return err
		}
		if err := repos.progress.DeleteAll(ctx, l.ID); err != nil {
			return err
		}
		if snap.Plan != nil {
			snap.Plan.FillSettings(snap.SavedAt)
			if err := repos.plans.Save(ctx, l.ID, snap.Plan); err != nil {
				return err
			}
			if err := repos.progress.Replace(ctx, l.ID, snap.Progress); err != nil {
				return err
			}
		} else if err := repos.plans.Delete(ctx, l.ID); err != nil {
			return err
		}
		if err := repos.streaks.Upsert(ctx, l.ID, snap.Streak); err != nil {
			return err
		}

		if err := repos.notifications.DeleteAll(ctx, l.ID); err != nil {
			return err
		}
		// Imported messages keep their order; their timestamps are lost.
		at := s.now()
		for _, msg := range snap.Notifications {
			if err := repos.notify(ctx, l.ID, msg, at); err != nil {
				return err
			}
		}
		return repos.notify(ctx, l.ID,
			fmt.Sprintf("Imported snapshot saved %s", snap.SavedAt.Format("2006-01-02 15:04")), at)
	})
	if err != nil {
		return nil, err
	}

	res = &app.ImportResult{
		Subjects:      len(snap.Subjects),
		Entries:       len(snap.Progress),
		Notifications: len(snap.Notifications),
		SavedAt:       snap.SavedAt,
	}
	if snap.Plan != nil {
		res.Days = len(snap.Plan.Days)
	}
	fields["subjects"] = res.Subjects
	fields["days"] = res.Days
	return res, nil
}
