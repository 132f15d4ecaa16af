package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// Difficulty base weights. Unknown difficulties score as medium.
var difficultyWeights = map[domain.Difficulty]float64{
	domain.DifficultyEasy:   1.0,
	domain.DifficultyMedium: 1.5,
	domain.DifficultyHard:   2.5,
}

const (
	focusBoost = 1.15

	nearExamDays     = 7
	nearExamStep     = 0.12
	upcomingExamDays = 30
	upcomingExamStep = 0.03
)

type ReasonCode string

const (
	ReasonDifficulty   ReasonCode = "DIFFICULTY"
	ReasonExamNear     ReasonCode = "EXAM_NEAR"
	ReasonExamUpcoming ReasonCode = "EXAM_UPCOMING"
	ReasonFocus        ReasonCode = "FOCUS"
)

// Reason explains one multiplicative factor of a subject's score.
type Reason struct {
	Code    ReasonCode
	Message string
	Factor  float64
}

type ScoringInput struct {
	Subject domain.Subject
	// ExamDate is the plan-level exam date; Subject.ExamDate takes precedence.
	ExamDate *time.Time
	Focus    map[string]bool
	Now      time.Time
}

type ScoredSubject struct {
	Subject domain.Subject
	Score   float64
	Reasons []Reason
}

// ScoreSubject computes base weight × urgency × focus boost for a subject.
// The result is always positive.
func ScoreSubject(input ScoringInput) ScoredSubject {
	result := ScoredSubject{Subject: input.Subject}

	score := 1.0
	factors := []func(ScoringInput) (float64, *Reason){
		scoreDifficulty,
		scoreUrgency,
		scoreFocus,
	}
	for _, f := range factors {
		factor, reason := f(input)
		score *= factor
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = score
	return result
}

// BaseWeight returns the difficulty weight of d.
func BaseWeight(d domain.Difficulty) float64 {
	if w, ok := difficultyWeights[d]; ok {
		return w
	}
	return difficultyWeights[domain.DifficultyMedium]
}

// Urgency returns the exam-proximity multiplier for an exam daysUntil days away.
func Urgency(daysUntil int) float64 {
	switch {
	case daysUntil <= nearExamDays:
		return 1.0 + float64(nearExamDays+1-daysUntil)*nearExamStep
	case daysUntil <= upcomingExamDays:
		return 1.0 + float64(upcomingExamDays-daysUntil)*upcomingExamStep
	default:
		return 1.0
	}
}

// DaysUntil returns whole days from now to exam, floored, never negative.
func DaysUntil(exam, now time.Time) int {
	d := int(math.Floor(exam.Sub(now).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

func scoreDifficulty(input ScoringInput) (float64, *Reason) {
	w := BaseWeight(input.Subject.Difficulty)
	return w, &Reason{
		Code:    ReasonDifficulty,
		Message: fmt.Sprintf("%s difficulty", difficultyName(input.Subject.Difficulty)),
		Factor:  w,
	}
}

func scoreUrgency(input ScoringInput) (float64, *Reason) {
	exam := domain.FirstNonNil(input.Subject.ExamDate, input.ExamDate)
	if exam == nil {
		return 1.0, nil
	}
	days := DaysUntil(*exam, input.Now)
	u := Urgency(days)
	switch {
	case days <= nearExamDays:
		return u, &Reason{Code: ReasonExamNear, Message: formatExamMessage(days), Factor: u}
	case days <= upcomingExamDays:
		return u, &Reason{Code: ReasonExamUpcoming, Message: formatExamMessage(days), Factor: u}
	}
	return 1.0, nil
}

func scoreFocus(input ScoringInput) (float64, *Reason) {
	if !input.Focus[input.Subject.Name] {
		return 1.0, nil
	}
	return focusBoost, &Reason{
		Code:    ReasonFocus,
		Message: "Marked as a priority subject",
		Factor:  focusBoost,
	}
}

func difficultyName(d domain.Difficulty) string {
	if _, ok := difficultyWeights[d]; ok {
		return string(d)
	}
	return string(domain.DifficultyMedium)
}

func formatExamMessage(daysUntil int) string {
	switch {
	case daysUntil == 0:
		return "Exam today"
	case daysUntil == 1:
		return "Exam tomorrow"
	case daysUntil <= nearExamDays:
		return "Exam this week"
	default:
		return fmt.Sprintf("Exam in %d days", daysUntil)
	}
}
