package battle

import (
	"log/slog"
	"sync"
	"time"

	"github.com/velrin/bestiago/internal/config"
)

// Manager tracks every running battle session. A background sweeper drops
// finished battles and battles nobody has touched for the idle window, so
// abandoned sessions cannot pile up.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	bal        config.Balance
	sweepEvery time.Duration
	idleAfter  time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
}

// NewManager creates a session manager. Sessions created through it
// inherit bal unless their params carry an explicit balance. Call Start
// to begin sweeping.
func NewManager(bal config.Balance, sweepEvery, idleAfter time.Duration) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session, 16),
		bal:        bal,
		sweepEvery: sweepEvery,
		idleAfter:  idleAfter,
		stopCh:     make(chan struct{}),
	}
}

// Create builds a session and registers it.
func (m *Manager) Create(p SessionParams) (*Session, error) {
	if p.Balance == (config.Balance{}) {
		p.Balance = m.bal
	}
	s, err := NewSession(p)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	slog.Debug("battle session registered", "battle", s.ID())
	return s, nil
}

// Get returns a session by ID, nil when unknown.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Remove drops a session from the manager.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of tracked sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sessions returns a snapshot of every tracked session.
func (m *Manager) Sessions() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}

// Start launches the sweeper goroutine.
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.run()
}

// Stop terminates the sweeper and blocks until it exits.
func (m *Manager) Stop() {
	close(m.stopCh)
	m.wg.Wait()
}

func (m *Manager) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopCh:
			return
		}
	}
}

// sweep removes finished and abandoned sessions.
func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.idleAfter)

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		finished := s.Finished()
		idle := s.LastActive().Before(cutoff)
		if !finished && !idle {
			continue
		}
		delete(m.sessions, id)
		slog.Debug("battle session swept",
			"battle", id,
			"finished", finished,
			"idle", idle)
	}
}
