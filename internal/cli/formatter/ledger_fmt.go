package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatLedger renders the progress ledger with per-entry status and the streak.
func FormatLedger(view *app.LedgerView) string {
	var b strings.Builder
	if len(view.Entries) == 0 {
		b.WriteString(Dim("The ledger is empty.") + "\n")
	} else {
		rows := make([][]string, 0, len(view.Entries))
		for _, e := range view.Entries {
			rows = append(rows, []string{
				Bold(e.Day),
				StatusPill(e.Status()),
				FormatHours(e.TotalHours()),
				Dim(subjectList(e.Tasks)),
			})
		}
		b.WriteString(RenderTable([]string{"DAY", "STATUS", "HOURS", "SUBJECTS"}, rows))
	}
	b.WriteString("\n" + FormatStreak(view.Streak) + "\n")
	return b.String()
}

// FormatStreak renders "Streak: 3 (best 5)" with a flame when the run is live.
func FormatStreak(s domain.Streak) string {
	current := StyleFg.Render(fmt.Sprintf("%d", s.Current))
	if s.Current > 0 {
		current = StyleYellow.Render(fmt.Sprintf("%d 🔥", s.Current))
	}
	return fmt.Sprintf("%s %s %s", Dim("Streak:"), current, Dim(fmt.Sprintf("(best %d)", s.Best)))
}

// FormatComplete renders the confirmation for a completed day.
func FormatComplete(resp *app.CompleteResponse) string {
	return fmt.Sprintf("%s %s completed at %s\n%s\n%s\n",
		StyleGreen.Render("✔"), Bold(resp.Day), resp.CompletedAt.Format("15:04"),
		FormatStreak(resp.Streak),
		Dim(fmt.Sprintf("%d day(s) still pending", resp.Remaining)))
}

// FormatSkip renders where a skipped day's tasks went.
func FormatSkip(resp *app.SkipResponse) string {
	var b strings.Builder
	if resp.Fallback {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("Could not read a day number from %q; used %s.", resp.From, resp.To)) + "\n")
	}
	verb := "into new entry"
	if resp.Merged {
		verb = "merged into"
	}
	b.WriteString(fmt.Sprintf("%s Moved %d task(s) from %s %s %s\n",
		StyleBlue.Render("↷"), resp.Moved, Bold(resp.From), verb, Bold(resp.To)))
	return b.String()
}

func subjectList(tasks []domain.Task) string {
	seen := make(map[string]bool, len(tasks))
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t.Subject == domain.ReviewSubject || seen[t.Subject] {
			continue
		}
		seen[t.Subject] = true
		names = append(names, t.Subject)
	}
	return strings.Join(names, ", ")
}
