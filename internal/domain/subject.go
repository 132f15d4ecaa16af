package domain

import (
	"strings"
	"time"
)

type Subject struct {
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	// ExamDate overrides the plan-level exam date when scoring this subject.
	ExamDate *time.Time `json:"exam_date,omitempty"`
}

// Validate checks the name is non-blank and the difficulty is known.
func (s *Subject) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return InvalidInputf("subject name is required")
	}
	if !ValidDifficulties[string(s.Difficulty)] {
		return InvalidInputf("subject %q: difficulty %q must be one of easy, medium, hard", s.Name, s.Difficulty)
	}
	return nil
}

// ValidateSubjects validates each subject and rejects duplicate names.
func ValidateSubjects(subjects []Subject) error {
	seen := make(map[string]bool, len(subjects))
	for i := range subjects {
		if err := subjects[i].Validate(); err != nil {
			return err
		}
		if seen[subjects[i].Name] {
			return InvalidInputf("duplicate subject %q", subjects[i].Name)
		}
		seen[subjects[i].Name] = true
	}
	return nil
}

// ExampleSubjects returns the starter subject set offered to new learners.
func ExampleSubjects() []Subject {
	return []Subject{
		{Name: "Mathematics", Difficulty: DifficultyHard},
		{Name: "Physics", Difficulty: DifficultyHard},
		{Name: "Chemistry", Difficulty: DifficultyMedium},
		{Name: "English Literature", Difficulty: DifficultyEasy},
		{Name: "Computer Science", Difficulty: DifficultyMedium},
	}
}

// DateLayout is the calendar date format accepted for exam dates.
const DateLayout = "2006-01-02"

// ParseDate parses an optional YYYY-MM-DD date as UTC midnight. A blank
// string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, InvalidInputf("exam date %q is not a YYYY-MM-DD date", s)
	}
	return &t, nil
}
