// ABOUTME: Persistent session store for the DCM client
// ABOUTME: Stores the authenticated identity in the XDG config directory

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the single source of truth for "who is logged in, as what role".
// It is a dumb persistent cache: no token validation or expiry happens here.
type Store interface {
	// Establish writes a complete session, replacing any prior one.
	// An incomplete session is rejected so no call site can persist a
	// partially-populated identity.
	Establish(s Session) error
	// Read returns the current session. ok is false when no complete
	// session exists; the zero Session is returned in that case.
	Read() (Session, bool)
	// Clear removes the session. Clearing an absent session is a no-op.
	Clear() error
}

// FileStore persists the session as a JSON file, surviving process
// restarts the way browser storage survives reloads.
type FileStore struct {
	configDir string
}

// NewFileStore creates a store rooted at the given config directory
func NewFileStore(configDir string) *FileStore {
	return &FileStore{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dcm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dcm")
}

func (fs *FileStore) sessionFile() string {
	return filepath.Join(fs.configDir, "session.json")
}

// Establish writes all session fields in one atomic rename so a concurrent
// reader sees either the whole session or none of it
func (fs *FileStore) Establish(s Session) error {
	if !s.Complete() {
		return fmt.Errorf("refusing to store incomplete session (token, role, and user id are required)")
	}

	if err := os.MkdirAll(fs.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(fs.configDir, "session-*.json")
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fs.sessionFile())
}

// Read loads the session from disk. A missing, unreadable, or incomplete
// file all read as "not logged in" rather than an error.
func (fs *FileStore) Read() (Session, bool) {
	data, err := os.ReadFile(fs.sessionFile())
	if err != nil {
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false
	}
	if !s.Complete() {
		return Session{}, false
	}

	return s, true
}

// Clear removes the session file. Idempotent.
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.sessionFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
