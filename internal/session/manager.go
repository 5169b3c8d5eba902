package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager is the in-memory registry of live sessions. Sessions idle for
// longer than the configured timeout are dropped by Sweep.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*entry

	newState    func(id string) *State
	idleTimeout time.Duration
	now         func() time.Time
}

type entry struct {
	state    *State
	lastSeen time.Time
}

func NewManager(idleTimeout time.Duration, newState func(id string) *State) *Manager {
	return &Manager{
		sessions:    make(map[string]*entry),
		newState:    newState,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Get returns the live session with the given id and marks it as used.
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.lastSeen) > m.idleTimeout {
		delete(m.sessions, id)
		return nil, false
	}
	e.lastSeen = m.now()
	return e.state, true
}

// Create registers a fresh session under a random id.
func (m *Manager) Create() *State {
	id := uuid.NewString()
	st := m.newState(id)

	m.mu.Lock()
	m.sessions[id] = &entry{state: st, lastSeen: m.now()}
	m.mu.Unlock()

	slog.Debug("Session created", "session_id", id)
	return st
}

// Len reports the number of registered sessions, expired ones included
// until the next sweep.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes idle sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	cutoff := m.now().Add(-m.idleTimeout)
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Info("Expired idle sessions", "count", n)
			}
		}
	}
}
