package service

import "sync"

// LearnerLocks serializes mutations per learner. Different learners never
// block each other.
type LearnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLearnerLocks() *LearnerLocks {
	return &LearnerLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the learner's mutex and returns its release function.
func (l *LearnerLocks) Lock(learner string) func() {
	l.mu.Lock()
	m, ok := l.locks[learner]
	if !ok {
		m = &sync.Mutex{}
		l.locks[learner] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func locksOrNew(l *LearnerLocks) *LearnerLocks {
	if l == nil {
		return NewLearnerLocks()
	}
	return l
}
