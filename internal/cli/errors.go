package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
)

// FormatError renders err for the terminal with a prefix naming its kind.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid input: " + trimSentinel(msg, domain.ErrInvalidInput)
	case errors.Is(err, domain.ErrNotFound):
		return "not found: " + trimSentinel(msg, domain.ErrNotFound)
	case errors.Is(err, domain.ErrInvalidState):
		return "not allowed: " + trimSentinel(msg, domain.ErrInvalidState)
	default:
		return "error: " + msg
	}
}

// trimSentinel drops the sentinel's own text from a wrapped message so the
// prefix does not repeat it.
func trimSentinel(msg string, sentinel error) string {
	return strings.Replace(msg, sentinel.Error()+": ", "", 1)
}
