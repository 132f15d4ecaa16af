package formatter

import (
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Accent marks headers and focus, the rest map to meaning.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorPurple = lipgloss.Color("#bb9af7")
	ColorDim    = lipgloss.Color("#737aa2")
	ColorFg     = lipgloss.Color("#c0caf5")
	ColorHeader = lipgloss.Color("#ff9e64")
)

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

var (
	StyleGreen  = fg(ColorGreen)
	StyleYellow = fg(ColorYellow)
	StyleRed    = fg(ColorRed)
	StyleBlue   = fg(ColorBlue)
	StylePurple = fg(ColorPurple)
	StyleDim    = fg(ColorDim)
	StyleFg     = fg(ColorFg)
	StyleHeader = fg(ColorHeader).Bold(true)
	StyleBold   = fg(ColorFg).Bold(true)

	headerRule = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorDim)
)

// DifficultyBadge renders a subject difficulty with hard in red and easy in green.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyHard:
		return StyleRed.Render("▲ hard")
	case domain.DifficultyMedium:
		return StyleYellow.Render("■ medium")
	case domain.DifficultyEasy:
		return StyleGreen.Render("▼ easy")
	default:
		return StyleDim.Render(string(d))
	}
}

// StatusPill returns a colored indicator for a ledger entry.
func StatusPill(status domain.EntryStatus) string {
	switch status {
	case domain.EntryCompleted:
		return StyleGreen.Render("✔ Done")
	case domain.EntryPending:
		return StyleBlue.Render("○ Pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header upper-cases text and underlines it.
func Header(text string) string {
	return headerRule.Render(strings.ToUpper(text))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
