package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatHours renders an hour amount with at most two decimals and no
// trailing zeros, e.g. 2.5 -> "2.5h", 3 -> "3h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64) + "h"
}

// ExamCountdown describes how far an exam date lies from now, colored by
// urgency: red within three days or past, yellow within two weeks.
func ExamCountdown(exam, now time.Time) string {
	days := int(math.Round(exam.Sub(truncateDay(now)).Hours() / 24))
	text := exam.Format("2006-01-02")
	switch {
	case days < 0:
		return StyleRed.Render(fmt.Sprintf("%s (%dd ago)", text, -days))
	case days == 0:
		return StyleRed.Render(text + " (today)")
	case days <= 3:
		return StyleRed.Render(fmt.Sprintf("%s (in %dd)", text, days))
	case days <= 14:
		return StyleYellow.Render(fmt.Sprintf("%s (in %dd)", text, days))
	default:
		return StyleFg.Render(fmt.Sprintf("%s (in %dd)", text, days))
	}
}

// HumanTimestamp returns a relative timestamp such as "5m ago", falling back
// to an absolute date after a day.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
