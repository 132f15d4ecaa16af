package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// ParseDifficulty normalizes s into a Difficulty. An empty string maps to medium.
func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return DifficultyMedium, nil
	}
	if !ValidDifficulties[s] {
		return "", InvalidInputf("difficulty %q must be one of easy, medium, hard", s)
	}
	return Difficulty(s), nil
}

type EntryStatus string

const (
	EntryPending   EntryStatus = "pending"
	EntryCompleted EntryStatus = "completed"
)
