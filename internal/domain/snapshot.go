package domain

import "time"

// Snapshot is the serializable state of one learner handed to persistence.
type Snapshot struct {
	Subjects      []Subject       `json:"subjects"`
	Plan          *Plan           `json:"plan"`
	Progress      []ProgressEntry `json:"progress"`
	Streak        Streak          `json:"streak"`
	Notifications []string        `json:"notifications"`
	SavedAt       time.Time       `json:"saved_at"`
}

// Validate reports the first structural violation in the snapshot.
func (s *Snapshot) Validate() error {
	if err := ValidateSubjects(s.Subjects); err != nil {
		return err
	}
	if s.Plan != nil {
		if err := s.Plan.Validate(); err != nil {
			return err
		}
	} else if len(s.Progress) > 0 {
		return InvalidInputf("progress present without a plan")
	}
	if err := ValidateProgress(s.Progress); err != nil {
		return err
	}
	return s.Streak.Validate()
}
