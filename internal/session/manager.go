package session

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrTooManySessions is returned by Start when the manager is full.
var ErrTooManySessions = errors.New("session: too many sessions")

// Manager tracks live sessions keyed by a generated ID.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	logger      *log.Logger
}

// NewManager creates a manager. maxSessions <= 0 means unlimited.
// A nil logger uses log.Default().
func NewManager(maxSessions int, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Start registers a new session for owner. The caller starts its first
// game with Session.NewGame.
func (m *Manager) Start(owner string, seed int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, fmt.Errorf("start session for %q (limit %d): %w", owner, m.maxSessions, ErrTooManySessions)
	}

	id := uuid.NewString()
	s := New(id, owner, seed, m.logger)
	m.sessions[id] = s

	m.logger.Info("session registered", "session", id, "owner", owner, "active", len(m.sessions))
	return s, nil
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// End drops a session and its engine. Returns false if the ID is unknown.
func (m *Manager) End(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return false
	}
	delete(m.sessions, id)

	st := s.Stats()
	m.logger.Info("session closed",
		"session", id,
		"owner", s.Owner(),
		"games", st.Games,
		"active", len(m.sessions),
	)
	return true
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// List returns the live sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Started().Before(result[j].Started())
	})
	return result
}
