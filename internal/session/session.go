// Package session holds the logged-in user's identity. It replaces the
// ambient browser-storage pattern with an explicit object that callers
// pass to the API client, persisted to a single JSON file between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoSession means no user is logged in.
var ErrNoSession = errors.New("no active session")

// Session identifies an authenticated user against the backend.
type Session struct {
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	Name    string    `json:"name,omitempty"`
	SavedAt time.Time `json:"savedAt"`
}

// Valid reports whether the session carries enough to authenticate.
func (s Session) Valid() bool {
	return s.Email != "" && s.Token != ""
}

// Store persists a single session to a JSON file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user session file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".xpensify", "session.json"), nil
}

// Load reads the stored session. Returns ErrNoSession when no session
// file exists or the stored session is unusable.
func (st *Store) Load() (Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if !s.Valid() {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// Save writes the session, creating the parent directory if needed.
// The file is user-readable only since it contains the auth token.
func (st *Store) Save(s Session) error {
	if !s.Valid() {
		return errors.New("refusing to save incomplete session")
	}
	s.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(st.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not
// an error.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
