package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/strawhutmedia/onboarding/internal/form"
)

// SessionStore holds live wizard sessions keyed by opaque token. Sessions
// are process-local; drafts persisted to the database survive a restart,
// the in-memory sessions do not.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*form.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*form.Session)}
}

// Create registers a new session and returns its token.
func (s *SessionStore) Create(session *form.Session) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()
	return token
}

// Get looks up a session by token.
func (s *SessionStore) Get(token string) (*form.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return session, nil
}

// Remove drops a session, typically after submission.
func (s *SessionStore) Remove(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Count reports the number of live sessions, used by the health report.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
