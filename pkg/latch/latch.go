package latch

import (
	"sync"
	"sync/atomic"
)

// Latch guards one form against duplicate submission: Idle -> Saving -> Idle.
type Latch struct {
	saving atomic.Bool
}

// TryAcquire moves the latch to Saving. It returns false if a save is already running.
func (l *Latch) TryAcquire() bool {
	return l.saving.CompareAndSwap(false, true)
}

func (l *Latch) Release() {
	l.saving.Store(false)
}

func (l *Latch) Saving() bool {
	return l.saving.Load()
}

// Set hands out one latch per form key, e.g. "course:<userID>".
type Set struct {
	mu      sync.Mutex
	latches map[string]*Latch
}

func NewSet() *Set {
	return &Set{latches: make(map[string]*Latch)}
}

func (s *Set) Get(key string) *Latch {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.latches[key]
	if !ok {
		l = &Latch{}
		s.latches[key] = l
	}
	return l
}

// Key builds a form key from the form name and the user id.
func Key(form, userID string) string {
	return form + ":" + userID
}
