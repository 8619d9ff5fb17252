package config

import "sync/atomic"

// Store publishes the current options record to concurrent readers. A rebind
// replaces the whole record so readers never observe a partial update.
type Store struct {
	current atomic.Pointer[Opts]
}

// NewStore creates a store holding initial, or the empty record if nil.
func NewStore(initial *Opts) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Current returns the active record. It never returns nil.
func (s *Store) Current() *Opts {
	if o := s.current.Load(); o != nil {
		return o
	}
	return Empty()
}

// Replace swaps in next and returns the record it replaced.
func (s *Store) Replace(next *Opts) *Opts {
	if next == nil {
		next = Empty()
	}
	return s.current.Swap(next)
}
