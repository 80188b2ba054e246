package app

import "sync"

// Phase discriminates a fetched slot's state
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

// Slot holds one fetch target as a discriminated Loading/Loaded/Failed
// value. Each fetch begins by taking a generation token; a completion
// only applies while its token is still current, so a fast double-trigger
// cannot apply responses out of order. The zero value is Loading.
type Slot[T any] struct {
	mu    sync.Mutex
	gen   uint64
	phase Phase
	value T
	err   error
}

// Begin marks the slot Loading and returns the generation token the
// eventual completion must present
func (s *Slot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.phase = PhaseLoading
	s.err = nil
	return s.gen
}

// Complete applies a fetch result. It reports false when the token is
// stale, in which case the result is discarded.
func (s *Slot[T]) Complete(gen uint64, value T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}

	if err != nil {
		s.phase = PhaseFailed
		s.err = err
		return true
	}

	s.phase = PhaseLoaded
	s.value = value
	s.err = nil
	return true
}

// Reset invalidates any in-flight fetch and returns the slot to an empty
// Loaded state
func (s *Slot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.gen++
	s.phase = PhaseLoaded
	s.value = zero
	s.err = nil
}

// State returns the current phase together with the value or error
func (s *Slot[T]) State() (Phase, T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase, s.value, s.err
}

// Value returns the loaded value, reporting false unless the slot is Loaded
func (s *Slot[T]) Value() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLoaded {
		var zero T
		return zero, false
	}
	return s.value, true
}
