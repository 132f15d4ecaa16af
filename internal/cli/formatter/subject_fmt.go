package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatSubjects renders the learner's subjects in insertion order.
func FormatSubjects(subjects []domain.Subject, now time.Time) string {
	if len(subjects) == 0 {
		return Dim("No subjects yet. Add one with 'studyplan subject add NAME' or load the examples.") + "\n"
	}
	rows := make([][]string, 0, len(subjects))
	for i, s := range subjects {
		exam := Dim("--")
		if s.ExamDate != nil {
			exam = ExamCountdown(*s.ExamDate, now)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(s.Name),
			DifficultyBadge(s.Difficulty),
			exam,
		})
	}
	return RenderTable([]string{"#", "SUBJECT", "DIFFICULTY", "EXAM"}, rows)
}

// FormatLearners lists learners, marking the active one.
func FormatLearners(learners []*domain.Learner, active string) string {
	rows := make([][]string, 0, len(learners))
	for _, l := range learners {
		marker := " "
		name := StyleFg.Render(l.Name)
		if l.Name == active {
			marker = StyleGreen.Render("●")
			name = Bold(l.Name)
		}
		rows = append(rows, []string{marker, name, FormatHours(l.GoalHoursPerDay) + Dim("/day")})
	}
	return RenderTable([]string{" ", "LEARNER", "GOAL"}, rows)
}

// FormatNotifications renders messages as a bulleted list.
func FormatNotifications(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(StylePurple.Render("  » ") + m + "\n")
	}
	return b.String()
}
