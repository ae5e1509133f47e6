package usecase

import (
	"sync"
	"time"

	"github.com/peacelink/peacelink/internal/pkg/models"
)

// SessionManager owns the process's single active session. Callers are
// trusted to have already authenticated; Login never re-validates. The
// session is not persisted: a restart always comes up logged out.
type SessionManager struct {
	mu      sync.RWMutex
	session *models.Session
}

// NewSessionManager creates an empty session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Login sets the active session, replacing any prior one. Only the
// account's public fields are retained.
func (s *SessionManager) Login(record *models.AccountRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &models.Session{
		Account:  record.PublicCopy(),
		LoggedIn: time.Now(),
	}
}

// Logout clears the active session
func (s *SessionManager) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Current returns a copy of the active session, or nil when logged out.
func (s *SessionManager) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}
