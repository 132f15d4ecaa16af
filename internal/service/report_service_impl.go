package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// recentNotifications is how many notifications a report shows.
const recentNotifications = 5

type reportService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewReportService(uow db.UnitOfWork, observers ...UseCaseObserver) ReportService {
	return &reportService{uow: uow, observer: useCaseObserverOrNoop(observers), now: systemClock}
}

func (s *reportService) Report(ctx context.Context, learner string) (resp *app.ReportResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"learner": learner}
	defer func() { observe(ctx, s.observer, "report", startedAt, fields, err) }()

	resp = &app.ReportResponse{Learner: learner, GeneratedAt: s.now()}
	var entries []domain.ProgressEntry
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newTxRepos(tx)
		l, err := repos.learner(ctx, learner)
		if err != nil {
			return err
		}
		subjects, err := repos.subjects.List(ctx, l.ID)
		if err != nil {
			return err
		}
		resp.SubjectCount = len(subjects)

		plan, err := repos.plans.Get(ctx, l.ID)
		switch {
		case err == nil:
			resp.PlanDays = len(plan.Days)
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		if entries, err = repos.progress.List(ctx, l.ID); err != nil {
			return err
		}
		if resp.Streak, err = repos.streaks.Get(ctx, l.ID); err != nil {
			return err
		}
		recent, err := repos.notifications.ListRecent(ctx, l.ID, recentNotifications)
		if err != nil {
			return err
		}
		resp.Notifications = messages(recent)
		return nil
	})
	if err != nil {
		return nil, err
	}

	summarizeLedger(resp, entries)
	fields["entries"] = resp.LedgerEntries
	return resp, nil
}

// summarizeLedger fills the completion and hour figures of r from entries.
func summarizeLedger(r *app.ReportResponse, entries []domain.ProgressEntry) {
	r.LedgerEntries = len(entries)

	var order []string
	hours := map[string]float64{}
	for _, e := range entries {
		if e.Completed {
			r.CompletedDays++
		}
		for _, t := range e.Tasks {
			if _, seen := hours[t.Subject]; !seen {
				order = append(order, t.Subject)
			}
			hours[t.Subject] += t.Hours
			r.TotalHours += t.Hours
		}
	}

	r.HoursBySubject = make([]app.SubjectHours, len(order))
	for i, name := range order {
		r.HoursBySubject[i] = app.SubjectHours{Subject: name, Hours: hours[name]}
	}
	// First-seen order decides both ties here and the focus area below.
	focus := -1
	for i, sh := range r.HoursBySubject {
		if focus < 0 || sh.Hours < r.HoursBySubject[focus].Hours {
			focus = i
		}
	}
	if focus >= 0 {
		r.FocusArea = r.HoursBySubject[focus].Subject
	}
	sort.SliceStable(r.HoursBySubject, func(i, j int) bool {
		return r.HoursBySubject[i].Hours > r.HoursBySubject[j].Hours
	})

	if r.LedgerEntries > 0 {
		r.CompletionRate = round1(float64(r.CompletedDays) / float64(r.LedgerEntries) * 100)
	}
	r.Productivity = productivity(r.CompletionRate, r.TotalHours)
}

// productivity blends completion rate (60%) with planned volume, capped at
// six hours' worth of weekly average, into a 0..100 score.
func productivity(completionRate, totalHours float64) int {
	score := int((completionRate*0.6 + math.Min(totalHours/7, 6)*10) / 1.6)
	if score > 100 {
		return 100
	}
	return score
}
