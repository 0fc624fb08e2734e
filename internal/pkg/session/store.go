package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store tracks the sessions of in-flight calls.
type Store interface {
	Add(sess *Session) error
	Get(id uuid.UUID) (*Session, error)
	Remove(id uuid.UUID) error
	Len() int
}

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	sessions map[uuid.UUID]*Session
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Add registers a session for the duration of its call.
func (m *MemoryStore) Add(sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sess.ID()]; ok {
		return ErrSessionAlreadyExists
	}
	m.sessions[sess.ID()] = sess
	return nil
}

// Get returns the session with the given identifier.
func (m *MemoryStore) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[id]; ok {
		return sess, nil
	}
	return nil, ErrSessionNotFound
}

// Remove drops the session once its call has returned.
func (m *MemoryStore) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Len reports the number of in-flight sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
