package auth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func newSessionManager() *sessionManager {
	return &sessionManager{
		sessions: make(map[string]Session),
	}
}

func (m *sessionManager) Issue(session Session, ttl time.Duration) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	session.ExpiresAt = time.Now().Add(ttl)
	m.mu.Lock()
	m.sessions[token] = session
	m.mu.Unlock()
	return token, nil
}

func (m *sessionManager) Validate(token string) (Session, bool) {
	m.mu.RLock()
	session, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		m.Drop(token)
		return Session{}, false
	}
	return session, true
}

func (m *sessionManager) Drop(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
