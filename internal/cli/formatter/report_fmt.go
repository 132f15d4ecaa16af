package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/app"
)

const (
	reportBarWidth   = 20
	subjectBarWidth  = 16
	reportTimeFormat = "2006-01-02 15:04"
)

// FormatReport renders the learner's progress report.
func FormatReport(r *app.ReportResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		Dim("learner"), Bold(r.Learner), Dim("as of"), r.GeneratedAt.Format(reportTimeFormat)))
	b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %d/%d   %s %s\n\n",
		Dim("subjects"), r.SubjectCount,
		Dim("plan days"), r.PlanDays,
		Dim("completed"), r.CompletedDays, r.LedgerEntries,
		Dim("planned"), Bold(FormatHours(r.TotalHours))))

	b.WriteString(fmt.Sprintf("%-13s %s\n", "Completion", RenderProgress(r.CompletionRate/100, reportBarWidth)))
	b.WriteString(fmt.Sprintf("%-13s %s\n", "Productivity", RenderProgress(float64(r.Productivity)/100, reportBarWidth)))
	b.WriteString(FormatStreak(r.Streak) + "\n")

	if len(r.HoursBySubject) > 0 {
		b.WriteString("\n" + Header("Hours by subject") + "\n")
		top := r.HoursBySubject[0].Hours
		width := 0
		for _, sh := range r.HoursBySubject {
			width = max(width, len([]rune(sh.Subject)))
		}
		for _, sh := range r.HoursBySubject {
			name := sh.Subject + strings.Repeat(" ", width-len([]rune(sh.Subject)))
			b.WriteString(fmt.Sprintf("%s  %s %s\n", name, RenderMeter(sh.Hours, top, subjectBarWidth), FormatHours(sh.Hours)))
		}
	}
	if r.FocusArea != "" {
		b.WriteString("\n" + Dim("Needs attention: ") + StyleYellow.Render(r.FocusArea) + "\n")
	}

	if len(r.Notifications) > 0 {
		b.WriteString("\n" + Header("Recent") + "\n")
		b.WriteString(FormatNotifications(r.Notifications))
	}
	return RenderBox("Report", strings.TrimRight(b.String(), "\n"))
}
