package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
)

const planBarWidth = 12

// FormatPlan renders a study plan day by day inside a box.
func FormatPlan(p *domain.Plan, now time.Time) string {
	var b strings.Builder

	s := p.Settings
	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %s\n",
		Dim("budget"), Bold(FormatHours(s.HoursPerDay)+"/day"),
		Dim("days"), len(p.Days),
		Dim("total"), Bold(FormatHours(p.TotalHours()))))
	if s.ExamDate != nil {
		b.WriteString(Dim("exam   ") + ExamCountdown(*s.ExamDate, now) + "\n")
	}
	if len(s.Focus) > 0 {
		b.WriteString(Dim("focus  ") + StylePurple.Render(strings.Join(s.Focus, ", ")) + "\n")
	}

	for _, d := range p.Days {
		b.WriteString("\n")
		b.WriteString(formatDay(d.Label, d.Tasks, s.HoursPerDay))
	}
	return RenderBox("Study Plan", b.String())
}

func formatDay(label string, tasks []domain.Task, budget float64) string {
	var b strings.Builder
	total := 0.0
	for _, t := range tasks {
		total += t.Hours
	}
	head := StyleHeader.Render(label) + "  " + Dim(FormatHours(total))
	if budget > 0 {
		head += "  " + RenderMeter(total, budget, planBarWidth)
	}
	b.WriteString(head + "\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("  rest day") + "\n")
		return b.String()
	}

	width := 0
	for _, t := range tasks {
		width = max(width, len([]rune(t.Subject)))
	}
	for _, t := range tasks {
		name := t.Subject + strings.Repeat(" ", width-len([]rune(t.Subject)))
		style := StyleFg
		if t.Subject == domain.ReviewSubject {
			style = StylePurple
		}
		line := fmt.Sprintf("  %s  %6s", style.Render(name), FormatHours(t.Hours))
		if t.Note != "" {
			line += "  " + Dim(t.Note)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// FormatScores renders the per-subject scoring breakdown of a generated plan.
func FormatScores(scores []app.SubjectScore) string {
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, []string{
			Bold(s.Subject),
			DifficultyBadge(s.Difficulty),
			fmt.Sprintf("%.2f", s.Score),
			FormatHours(s.TargetHours),
			Dim(strings.Join(s.Reasons, "; ")),
		})
	}
	return RenderTable([]string{"SUBJECT", "DIFFICULTY", "SCORE", "HOURS", "WHY"}, rows)
}

// FormatGenerate renders the outcome of plan generation: plan, scores and
// any notifications raised.
func FormatGenerate(resp *app.GenerateResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatPlan(resp.Plan, now))
	b.WriteString("\n\n")
	b.WriteString(FormatScores(resp.Scores))
	if resp.Overflow {
		b.WriteString("\n" + StyleYellow.Render("  WARNING: the daily budget could not fit every subject's minimum share") + "\n")
	}
	if n := FormatNotifications(resp.Notifications); n != "" {
		b.WriteString("\n" + n)
	}
	return b.String()
}
