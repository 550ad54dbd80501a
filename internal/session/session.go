// Package session holds per-user conversational state for the lifetime of
// the process.
package session

import (
	"sync"

	"BankChat/internal/intent"
)

// Session is the state carried across a user's messages. Authenticated
// defaults to false and is only ever flipped by an external auth
// collaborator; the chat core reads it but never sets it. Context is a
// free-form extension point unused by the current handlers.
type Session struct {
	UserID        string
	Authenticated bool
	LastIntent    intent.Intent
	Context       map[string]any
}

func newSession(userID string) *Session {
	return &Session{UserID: userID, Context: map[string]any{}}
}

// Store owns every live Session, keyed by user id. There is at most one
// session per user and the store is its sole owner. A single mutex guards
// the map so concurrent transports can share one store; the single-threaded
// shell pays only an uncontended lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the existing session for userID or registers a new one
// with defaults. The second return reports whether a session was created.
func (s *Store) GetOrCreate(userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess, false
	}
	sess := newSession(userID)
	s.sessions[userID] = sess
	return sess, true
}

// Create registers a fresh session for userID, replacing any existing one.
func (s *Store) Create(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := newSession(userID)
	s.sessions[userID] = sess
	return sess
}

// Get returns the session for userID if one exists.
func (s *Store) Get(userID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// End removes the session for userID. Ending an unknown or already ended
// user id is a no-op; End is idempotent.
func (s *Store) End(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
