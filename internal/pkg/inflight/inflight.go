// Package inflight tracks which records have a long-running action in flight.
package inflight

import (
	"strings"
	"sync"
)

// Set is a non-blocking keyed lock. A key can be held by one caller at a time;
// a second caller is refused instead of queued.
type Set struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// New creates an empty set
func New() *Set {
	return &Set{keys: make(map[string]struct{})}
}

// TryAcquire claims key. ok is false when the key is already held. The returned
// release func is idempotent.
func (s *Set) TryAcquire(key string) (release func(), ok bool) {
	key = strings.TrimSpace(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, held := s.keys[key]; held {
		return func() {}, false
	}
	s.keys[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.keys, key)
			s.mu.Unlock()
		})
	}, true
}

// Held reports whether key is currently claimed
func (s *Set) Held(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, held := s.keys[strings.TrimSpace(key)]
	return held
}
