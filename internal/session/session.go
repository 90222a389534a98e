// Package session holds the authenticated session: the bearer token returned
// by auth/login and the user object returned by auth/authorized. It is created
// on login success, cleared on logout, and read-only everywhere else.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SayubShakya/recipenest-client/internal/types"
)

// Session is the client-side equivalent of the two session-storage keys: the
// raw bearer token and the serialized user.
type Session struct {
	Token string                `json:"token"`
	User  *types.AuthorizedUser `json:"user,omitempty"`
}

// Expired reports whether the session token carries an exp claim in the past.
// The token is not verified here; the client holds no signing secret and
// trusts the backend to reject stale tokens.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.Token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.Token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// TokenSource yields the bearer token attached to outgoing requests. An empty
// string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Store persists the session across invocations.
type Store interface {
	TokenSource
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file, typically under the user config
// directory.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

func (f *FileStore) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (f *FileStore) Token() string {
	s, err := f.Load()
	if err != nil {
		return ""
	}
	return s.Token
}

// MemStore is an in-memory store used by tests and short-lived views.
type MemStore struct {
	mu sync.RWMutex
	s  Session
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	copied := m.s
	return &copied, nil
}

func (m *MemStore) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = *s
	return nil
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	return nil
}

func (m *MemStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Token
}
