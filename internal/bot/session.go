package bot

import (
	"log/slog"
	"sync"
	"time"

	"github.com/communitylabs/doorman/internal/domain"
)

// SessionManager tracks active conversation sessions per user. Each user
// owns independent state, so the lock only guards the map itself.
type SessionManager struct {
	mu     sync.RWMutex
	active map[int64]*domain.Session
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		active: make(map[int64]*domain.Session),
	}
}

// Begin creates a fresh session for the user, replacing any session still
// in flight. A repeated start command always yields a clean slate.
func (m *SessionManager) Begin(userID int64) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &domain.Session{
		UserID:    userID,
		State:     domain.StateAwaitingName,
		StartedAt: time.Now(),
	}
	m.active[userID] = sess
	slog.Info("Conversation started", "user_id", userID)
	return sess
}

// Get returns the active session for a user, if any.
func (m *SessionManager) Get(userID int64) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.active[userID]
	return sess, ok
}

// End discards the session for a user. Called on every terminal
// transition so partial data never leaks into the next conversation.
func (m *SessionManager) End(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[userID]; !ok {
		return
	}
	delete(m.active, userID)
	slog.Info("Conversation ended", "user_id", userID)
}
