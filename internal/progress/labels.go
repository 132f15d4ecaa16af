package progress

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// fallbackSuffix is appended to labels whose day number cannot be parsed.
const fallbackSuffix = " (tasks appended)"

// NextLabel returns the label of the day after day. The second
// whitespace-separated field is read as the day number ("Day 3" → "Day 4").
// When that fails, ok is false and the label falls back to day plus a suffix.
func NextLabel(day string) (label string, ok bool) {
	fields := strings.Fields(day)
	if len(fields) >= 2 {
		if n, err := strconv.Atoi(fields[1]); err == nil {
			return domain.DayLabel(n + 1), true
		}
	}
	return day + fallbackSuffix, false
}
