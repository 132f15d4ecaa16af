package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the caller supplied values that cannot produce
	// a plan or be stored (empty subject set, non-positive budget, bad labels).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a referenced learner, subject, plan or day is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates the operation is not allowed from the current
	// state, e.g. completing a day twice.
	ErrInvalidState = errors.New("invalid state")
)

// InvalidInputf wraps ErrInvalidInput with a formatted detail message.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidStatef wraps ErrInvalidState with a formatted detail message.
func InvalidStatef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
