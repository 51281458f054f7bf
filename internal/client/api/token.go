package api

import "sync"

// TokenStore holds the current bearer token in process memory. The HTTP
// client reads it on every request; the session writes it on login/logout.
// Reads and writes may come from different goroutines (the CLI's liveness
// probe runs in the background), hence the mutex.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set stores token, overwriting any prior value. Idempotent.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored token; subsequent requests omit the auth header.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Get returns the stored token, or "" when none is set.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
