package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

const (
	// minSubjectHours is the floor on a subject's horizon total.
	minSubjectHours = 0.5
	// minChunkHours is the smallest task handed out on any day.
	minChunkHours = 0.25
	// exhaustedHours treats budgets at or below this as used up.
	exhaustedHours = domain.HoursEpsilon
)

// MaxDays bounds the planning horizon. Each day becomes a plan day and a
// ledger row.
const MaxDays = 365

type AllocationRequest struct {
	Subjects    []domain.Subject
	HoursPerDay float64
	Days        int
	ExamDate    *time.Time
	Focus       []string
	Now         time.Time
}

type Allocation struct {
	Plan    *domain.Plan
	Scores  []ScoredSubject
	Targets map[string]float64
	// Overflow is set when the per-subject minimum pushed the summed targets
	// past HoursPerDay × Days. Day caps truncate the excess.
	Overflow bool
}

// Allocate scores subjects and spreads HoursPerDay × Days across them, one
// day at a time. Each subject's remaining total is amortized evenly over the
// remaining days and every day is capped at HoursPerDay.
func Allocate(req AllocationRequest) (*Allocation, error) {
	if len(req.Subjects) == 0 {
		return nil, domain.InvalidInputf("at least one subject is required")
	}
	if !(req.HoursPerDay > 0) || math.IsInf(req.HoursPerDay, 0) {
		return nil, domain.InvalidInputf("hours per day must be positive, got %v", req.HoursPerDay)
	}
	if req.Days < 1 || req.Days > MaxDays {
		return nil, domain.InvalidInputf("days must be between 1 and %d, got %d", MaxDays, req.Days)
	}
	if err := domain.ValidateSubjects(req.Subjects); err != nil {
		return nil, err
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	focus := make(map[string]bool, len(req.Focus))
	for _, name := range req.Focus {
		focus[name] = true
	}

	scores := make([]ScoredSubject, len(req.Subjects))
	var totalScore float64
	for i, s := range req.Subjects {
		scores[i] = ScoreSubject(ScoringInput{
			Subject:  s,
			ExamDate: req.ExamDate,
			Focus:    focus,
			Now:      now,
		})
		totalScore += scores[i].Score
	}
	if totalScore == 0 {
		totalScore = 1.0
	}

	budget := req.HoursPerDay * float64(req.Days)
	targets := make([]target, len(scores))
	targetHours := make(map[string]float64, len(scores))
	left := make(map[string]float64, len(scores))
	var targetSum float64
	for i, s := range scores {
		h := math.Max(minSubjectHours, round2(s.Score/totalScore*budget))
		targets[i] = target{Name: s.Subject.Name, Hours: h}
		targetHours[s.Subject.Name] = h
		left[s.Subject.Name] = h
		targetSum += h
	}
	sortTargets(targets)

	days := make(domain.DayPlans, 0, req.Days)
	for d := 1; d <= req.Days; d++ {
		days = append(days, allocateDay(d, req.Days, req.HoursPerDay, targets, left))
	}

	return &Allocation{
		Plan: &domain.Plan{
			Settings: domain.PlanSettings{
				HoursPerDay: req.HoursPerDay,
				Days:        req.Days,
				ExamDate:    req.ExamDate,
				Focus:       focusList(req.Focus),
				GeneratedAt: now,
			},
			Days: days,
		},
		Scores:   scores,
		Targets:  targetHours,
		Overflow: targetSum > budget+exhaustedHours,
	}, nil
}

// allocateDay fills one day's budget from the ordered targets, drawing down
// left as it goes.
func allocateDay(day, totalDays int, hoursPerDay float64, order []target, left map[string]float64) domain.DayPlan {
	plan := domain.DayPlan{Label: domain.DayLabel(day)}
	remaining := hoursPerDay
	remainingDays := float64(totalDays - day + 1)

	for _, t := range order {
		if left[t.Name] <= exhaustedHours {
			continue
		}
		ideal := left[t.Name] / remainingDays
		alloc := round2(math.Min(remaining, math.Max(minChunkHours, ideal)))
		if alloc <= 0 {
			continue
		}
		plan.Tasks = append(plan.Tasks, domain.Task{
			Subject: t.Name,
			Hours:   alloc,
			Note:    FocusNote(t.Name),
		})
		remaining -= alloc
		left[t.Name] -= alloc
		if remaining <= exhaustedHours {
			break
		}
	}

	if remaining > exhaustedHours {
		plan.Tasks = append(plan.Tasks, domain.Task{
			Subject: domain.ReviewSubject,
			Hours:   round2(remaining),
			Note:    domain.ReviewNote,
		})
	}

	plan.Tasks = positiveTasks(plan.Tasks)
	return plan
}

func positiveTasks(tasks []domain.Task) []domain.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.Hours > 0 {
			out = append(out, t)
		}
	}
	return out
}

// focusList drops duplicates and blanks, keeping first-seen order.
func focusList(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
