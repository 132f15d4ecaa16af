package domain

// Streak counts consecutive completed days. Best never drops below Current.
type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// RecordCompletion advances the streak by one completed day.
func (s *Streak) RecordCompletion() {
	s.Current++
	if s.Current > s.Best {
		s.Best = s.Current
	}
}

func (s Streak) Validate() error {
	if s.Current < 0 || s.Best < 0 {
		return InvalidInputf("streak counters must be non-negative (current=%d best=%d)", s.Current, s.Best)
	}
	if s.Best < s.Current {
		return InvalidInputf("streak best (%d) is below current (%d)", s.Best, s.Current)
	}
	return nil
}
