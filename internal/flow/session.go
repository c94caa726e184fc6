package flow

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found or expired")

type sessionEntry struct {
	state    *SessionState
	lastSeen time.Time
}

// SessionManager holds per-browser session state in memory. Sessions expire
// after ttl of inactivity and are reaped lazily on access.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a fresh session and returns its ID.
func (sm *SessionManager) Create() (string, *SessionState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.reapLocked()

	id := uuid.New().String()
	st := NewSessionState()
	sm.sessions[id] = &sessionEntry{state: st, lastSeen: sm.now()}
	return id, st
}

// Get returns the session state and refreshes its expiry.
func (sm *SessionManager) Get(id string) (*SessionState, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	entry, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sm.now().Sub(entry.lastSeen) > sm.ttl {
		delete(sm.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.lastSeen = sm.now()
	return entry.state, nil
}

// Delete removes a session.
func (sm *SessionManager) Delete(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// Len reports the number of live sessions.
func (sm *SessionManager) Len() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.reapLocked()
	return len(sm.sessions)
}

func (sm *SessionManager) reapLocked() {
	cutoff := sm.now().Add(-sm.ttl)
	for id, entry := range sm.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(sm.sessions, id)
		}
	}
}
