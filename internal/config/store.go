package config

import "sync/atomic"

// Store publishes the active configuration to concurrent readers. The hot
// reloader swaps in a freshly loaded Config; request handlers call Load on
// every use and treat the snapshot as read-only.
type Store struct {
	ptr atomic.Pointer[Config]
}

func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.ptr.Store(cfg)
	return s
}

// Load returns the current snapshot. Never nil after NewStore.
func (s *Store) Load() *Config {
	return s.ptr.Load()
}

// Swap makes cfg the active snapshot for subsequent Load calls. In-flight
// requests keep the snapshot they already loaded.
func (s *Store) Swap(cfg *Config) {
	s.ptr.Store(cfg)
}
