package session

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Store holds the single staff session token for the whole process and
// persists it to a fixed-name file so the session survives a restart.
// At most one token is held at a time; an absent token means unauthenticated.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// Open creates a store backed by the given file, loading any token a
// previous run left behind. A missing file is simply the logged-out state.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current session token and whether one is held
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set stores a new session token, replacing any previous one
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	s.token = token
	return nil
}

// Clear drops the session token. It reports whether a token was actually
// held, so that of several concurrent expiry signals exactly one observes
// the transition and fires the redirect.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return false
	}
	s.token = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		// The in-memory state is authoritative; a stale file only means the
		// next restart starts with a dead token and hits the 401 path again.
		return true
	}
	return true
}
