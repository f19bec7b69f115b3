package identity

import (
	"log/slog"
	"sync"
)

// LogoutHook runs when the session is cleared. The preview surface
// registers one so a focused artifact cannot outlive the session that
// selected it.
type LogoutHook func()

// Session holds the single active identity context. One session
// instance per workspace; there is no cross-session sharing.
type Session struct {
	mu       sync.RWMutex
	user     *User
	onLogout []LogoutHook
	logger   *slog.Logger
}

func NewSession(logger *slog.Logger) *Session {
	return &Session{logger: logger}
}

// Login replaces any existing identity unconditionally. Credential
// verification is an external concern; the declared role is trusted.
func (s *Session) Login(name string, role Role, college, department string, attributes map[string]string) *User {
	attrs := make(map[string]string, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}

	user := &User{
		Name:       name,
		Role:       role,
		College:    college,
		Department: department,
		Attributes: attrs,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.logger.Info("session started",
		"user", name,
		"role", role,
		"college", college,
		"department", department)

	return user
}

// Logout clears the identity context and runs registered hooks.
func (s *Session) Logout() {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.mu.Unlock()

	for _, hook := range s.onLogout {
		hook()
	}

	if user != nil {
		s.logger.Info("session ended", "user", user.Name, "role", user.Role)
	}
}

// Current returns the active user, or nil when nobody is logged in.
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) OnLogout(hook LogoutHook) {
	s.onLogout = append(s.onLogout, hook)
}
