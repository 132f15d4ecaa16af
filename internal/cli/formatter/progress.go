package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%. pct is a fraction in
// [0,1]; out-of-range values are clamped. Green above two thirds, yellow
// above one third, red below.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct).Render(bar), pct*100)
}

// RenderMeter renders a bare bar of width cells scaled against max, used for
// per-subject hour charts.
func RenderMeter(value, max float64, width int) string {
	if max <= 0 || width < 1 {
		return ""
	}
	filled := int(clamp01(value/max)*float64(width) + 0.5)
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

func progressStyle(pct float64) lipgloss.Style {
	if pct < 0.33 {
		return StyleRed
	}
	if pct < 0.66 {
		return StyleYellow
	}
	return StyleGreen
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
