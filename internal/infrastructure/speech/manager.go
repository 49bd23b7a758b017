package speech

import (
	"context"
	"sync"

	"medassist/pkg/logger"
)

// Manager tracks the active speech bridge session per user. A user with
// no session, or a session that never announced a capability, simply has
// that capability unavailable.
type Manager struct {
	sessions   map[string]*Session
	Register   chan *Session
	Unregister chan *Session
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		Register:   make(chan *Session),
		Unregister: make(chan *Session),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case session := <-m.Register:
				m.mutex.Lock()
				m.sessions[session.UserID] = session
				m.mutex.Unlock()
				logger.Info("Speech session registered: %s", session.UserID)

			case session := <-m.Unregister:
				m.mutex.Lock()
				if current, ok := m.sessions[session.UserID]; ok && current == session {
					delete(m.sessions, session.UserID)
				}
				m.mutex.Unlock()
				logger.Info("Speech session unregistered: %s", session.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// RecognizerFor returns the user's recognizer, or nil when the capability
// is absent.
func (m *Manager) RecognizerFor(userID string) Recognizer {
	m.mutex.RLock()
	session, ok := m.sessions[userID]
	m.mutex.RUnlock()

	if !ok || !session.HasRecognition() {
		return nil
	}
	return session
}

// SynthesizerFor returns the user's synthesizer, or nil when the
// capability is absent.
func (m *Manager) SynthesizerFor(userID string) Synthesizer {
	m.mutex.RLock()
	session, ok := m.sessions[userID]
	m.mutex.RUnlock()

	if !ok || !session.HasSynthesis() {
		return nil
	}
	return session
}
