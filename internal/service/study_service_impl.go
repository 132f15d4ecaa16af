package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/progress"
	"github.com/alexanderramin/studyplan/internal/scheduler"
)

type studyService struct {
	uow      db.UnitOfWork
	locks    *LearnerLocks
	observer UseCaseObserver
	now      func() time.Time
}

func NewStudyService(uow db.UnitOfWork, locks *LearnerLocks, observers ...UseCaseObserver) StudyService {
	return &studyService{
		uow:      uow,
		locks:    locksOrNew(locks),
		observer: useCaseObserverOrNoop(observers),
		now:      systemClock,
	}
}

func (s *studyService) Generate(ctx context.Context, req app.GenerateRequest) (resp *app.GenerateResponse, err error) {
	startedAt := time.Now()
	days := domain.ValueOr(app.DefaultPlanDays, req.Days)
	fields := map[string]any{"learner": req.Learner, "days": days}
	defer func() { observe(ctx, s.observer, "generate-plan", startedAt, fields, err) }()

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	defer s.locks.Lock(req.Learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, req.Learner)
		if err != nil {
			return err
		}
		hours := domain.ValueOr(l.GoalHoursPerDay, req.HoursPerDay)
		subjects, err := repos.subjects.List(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(subjects) == 0 {
			return domain.InvalidInputf("learner %q has no subjects; add some with 'subject add'", l.Name)
		}
		if err := checkFocus(req.Focus, subjects); err != nil {
			return err
		}

		resp, err = s.replace(ctx, repos, l, scheduler.AllocationRequest{
			Subjects:    subjects,
			HoursPerDay: hours,
			Days:        days,
			ExamDate:    req.ExamDate,
			Focus:       req.Focus,
			Now:         now,
		}, fmt.Sprintf("New %d-day plan generated", days))
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["subjects"] = len(resp.Scores)
	fields["overflow"] = resp.Overflow
	return resp, nil
}

// Regenerate rebuilds the plan from the current subjects. The daily budget is
// read back from the hours planned on Day 1, the horizon from the plan
// length. The stored exam date and the focus subjects that still exist carry
// over, so a regenerated plan weighs subjects the way the last generate did.
// Streak totals are kept.
func (s *studyService) Regenerate(ctx context.Context, learner string) (resp *app.GenerateResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner}
	defer func() { observe(ctx, s.observer, "regenerate-plan", startedAt, fields, err) }()

	defer s.locks.Lock(learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		old, err := repos.plan(ctx, l.ID)
		if err != nil {
			return err
		}
		subjects, err := repos.subjects.List(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(subjects) == 0 {
			return domain.InvalidInputf("learner %q has no subjects to plan", l.Name)
		}

		hours := l.GoalHoursPerDay
		if first, ok := old.Day(domain.DayLabel(1)); ok && first.TotalHours() > 0 {
			hours = first.TotalHours()
		}
		resp, err = s.replace(ctx, repos, l, scheduler.AllocationRequest{
			Subjects:    subjects,
			HoursPerDay: hours,
			Days:        len(old.Days),
			ExamDate:    old.Settings.ExamDate,
			Focus:       keepKnown(old.Settings.Focus, subjects),
			Now:         s.now(),
		}, "Plan regenerated from current subjects")
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["days"] = len(resp.Plan.Days)
	return resp, nil
}

// replace allocates a new plan and swaps it, together with a fresh ledger,
// for whatever the learner had.
func (s *studyService) replace(ctx context.Context, repos txRepos, l *domain.Learner, req scheduler.AllocationRequest, message string) (*app.GenerateResponse, error) {
	alloc, err := scheduler.Allocate(req)
	if err != nil {
		return nil, err
	}
	ledger := progress.NewLedger(alloc.Plan)

	if err := repos.plans.Save(ctx, l.ID, alloc.Plan); err != nil {
		return nil, err
	}
	if err := repos.progress.Replace(ctx, l.ID, ledger.Entries()); err != nil {
		return nil, err
	}

	notes := []string{message}
	if alloc.Overflow {
		notes = append(notes, fmt.Sprintf(
			"Too many subjects for %.2f h over %d day(s): some subjects get less than their minimum share",
			req.HoursPerDay, req.Days))
	}
	for _, msg := range notes {
		if err := repos.notify(ctx, l.ID, msg, req.Now); err != nil {
			return nil, err
		}
	}

	return &app.GenerateResponse{
		Plan:          alloc.Plan,
		Ledger:        ledger.Entries(),
		Scores:        subjectScores(alloc),
		Overflow:      alloc.Overflow,
		Notifications: notes,
	}, nil
}

func (s *studyService) ShowPlan(ctx context.Context, learner string) (*domain.Plan, error) {
	var plan *domain.Plan
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		plan, err = repos.plan(ctx, l.ID)
		return err
	})
	return plan, err
}

// Clear drops the plan, its ledger and every subject. Streak and
// notifications are kept.
func (s *studyService) Clear(ctx context.Context, learner string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner}
	defer func() { observe(ctx, s.observer, "clear-plan", startedAt, fields, err) }()

	defer s.locks.Lock(learner)()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		if err := repos.progress.DeleteAll(ctx, l.ID); err != nil {
			return err
		}
		if err := repos.plans.Delete(ctx, l.ID); err != nil {
			return err
		}
		if err := repos.subjects.DeleteAll(ctx, l.ID); err != nil {
			return err
		}
		return repos.notify(ctx, l.ID, "Schedule and subjects cleared", s.now())
	})
}

func (s *studyService) ListDays(ctx context.Context, learner string) (*app.LedgerView, error) {
	var view app.LedgerView
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		if _, err := repos.plan(ctx, l.ID); err != nil {
			return err
		}
		if view.Entries, err = repos.progress.List(ctx, l.ID); err != nil {
			return err
		}
		view.Streak, err = repos.streaks.Get(ctx, l.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *studyService) CompleteDay(ctx context.Context, learner, day string) (resp *app.CompleteResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "day": day}
	defer func() { observe(ctx, s.observer, "complete-day", startedAt, fields, err) }()

	defer s.locks.Lock(learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, ledger, err := s.loadLedger(ctx, repos, learner)
		if err != nil {
			return err
		}
		streak, err := repos.streaks.Get(ctx, l.ID)
		if err != nil {
			return err
		}

		at := s.now()
		updated, err := ledger.Complete(day, at, &streak)
		if err != nil {
			return err
		}
		if err := repos.progress.Replace(ctx, l.ID, ledger.Entries()); err != nil {
			return err
		}
		if err := repos.streaks.Upsert(ctx, l.ID, updated); err != nil {
			return err
		}
		msg := fmt.Sprintf("%s completed. Streak: %d (best %d)", day, updated.Current, updated.Best)
		if err := repos.notify(ctx, l.ID, msg, at); err != nil {
			return err
		}

		resp = &app.CompleteResponse{
			Day:         day,
			CompletedAt: at,
			Streak:      updated,
			Remaining:   ledger.Len() - ledger.CompletedCount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["streak"] = resp.Streak.Current
	return resp, nil
}

func (s *studyService) SkipDay(ctx context.Context, learner, day string) (resp *app.SkipResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner, "day": day}
	defer func() { observe(ctx, s.observer, "skip-day", startedAt, fields, err) }()

	defer s.locks.Lock(learner)()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, ledger, err := s.loadLedger(ctx, repos, learner)
		if err != nil {
			return err
		}

		result, err := ledger.Skip(day)
		if err != nil {
			return err
		}
		if err := repos.progress.Replace(ctx, l.ID, ledger.Entries()); err != nil {
			return err
		}

		msg := fmt.Sprintf("Moved %d task(s) from %s to %s", result.Moved, result.From, result.To)
		if result.Fallback {
			msg = fmt.Sprintf("Could not read a day number from %q; %d task(s) moved to %q",
				result.From, result.Moved, result.To)
		}
		if err := repos.notify(ctx, l.ID, msg, s.now()); err != nil {
			return err
		}

		resp = &app.SkipResponse{
			From:     result.From,
			To:       result.To,
			Moved:    result.Moved,
			Merged:   result.Merged,
			Fallback: result.Fallback,
			Entries:  ledger.Entries(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["to"] = resp.To
	fields["fallback"] = resp.Fallback
	return resp, nil
}

func (s *studyService) loadLedger(ctx context.Context, repos txRepos, learner string) (*domain.Learner, *progress.Ledger, error) {
	l, err := repos.learner(ctx, learner)
	if err != nil {
		return nil, nil, err
	}
	if _, err := repos.plan(ctx, l.ID); err != nil {
		return nil, nil, err
	}
	entries, err := repos.progress.List(ctx, l.ID)
	if err != nil {
		return nil, nil, err
	}
	return l, progress.FromEntries(entries), nil
}

// checkFocus rejects focus names that are not among the learner's subjects.
func checkFocus(focus []string, subjects []domain.Subject) error {
	known := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		known[s.Name] = true
	}
	for _, name := range focus {
		if !known[name] {
			return domain.InvalidInputf("focus subject %q is not one of the learner's subjects", name)
		}
	}
	return nil
}

func keepKnown(focus []string, subjects []domain.Subject) []string {
	known := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		known[s.Name] = true
	}
	var out []string
	for _, name := range focus {
		if known[name] {
			out = append(out, name)
		}
	}
	return out
}

func subjectScores(alloc *scheduler.Allocation) []app.SubjectScore {
	out := make([]app.SubjectScore, len(alloc.Scores))
	for i, sc := range alloc.Scores {
		reasons := make([]string, len(sc.Reasons))
		for j, r := range sc.Reasons {
			reasons[j] = r.Message
		}
		out[i] = app.SubjectScore{
			Subject:     sc.Subject.Name,
			Difficulty:  sc.Subject.Difficulty,
			Score:       sc.Score,
			TargetHours: alloc.Targets[sc.Subject.Name],
			Reasons:     reasons,
		}
	}
	return out
}
