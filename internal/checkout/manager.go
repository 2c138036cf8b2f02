package checkout

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"villagestay/internal/domain"
)

// Manager keeps checkout sessions in memory for their short lifetime.
// Only confirmed bookings are durable; abandoning a session loses
// nothing but wizard state.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: map[string]*Session{}}
}

// Add registers a session and assigns its id.
func (m *Manager) Add(s *Session) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := newSessionID()
	for m.sessions[id] != nil {
		id = newSessionID()
	}
	s.ID = id
	m.sessions[id] = s
	return id
}

// Get returns the session for id, scoped to its owner.
func (m *Manager) Get(id, ownerKey string) (*Session, error) {
	m.mu.RLock()
	s := m.sessions[id]
	m.mu.RUnlock()
	if s == nil || s.OwnerKey != ownerKey {
		return nil, domain.NotFoundError{Resource: "checkout session"}
	}
	return s, nil
}

func newSessionID() string {
	// lightweight unique id (time + rand) to avoid heavy deps
	return strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.Itoa(rand.Intn(1000000))
}
