package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wexinc/offerdesk/internal/api"
	apperrors "github.com/wexinc/offerdesk/internal/errors"
)

// State is what a store persists between runs.
type State struct {
	Token   string    `json:"token"`
	User    api.User  `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}

// Store persists session state. Load returns nil, nil when nothing is stored.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// FileStore keeps the session as a JSON file readable only by the owner.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the session file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the session file. A missing file is not an error.
func (f *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.SessionStore(f.path, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, apperrors.SessionStore(f.path, err)
	}
	if state.Token == "" {
		return nil, nil
	}
	return &state, nil
}

// Save writes the session atomically with mode 0600.
func (f *FileStore) Save(state *State) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return apperrors.SessionStore(f.path, err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return apperrors.SessionStore(f.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return apperrors.SessionStore(f.path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return apperrors.SessionStore(f.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.SessionStore(f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.SessionStore(f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return apperrors.SessionStore(f.path, err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent file succeeds.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperrors.SessionStore(f.path, err)
	}
	return nil
}

// MemoryStore keeps the session in memory only.
type MemoryStore struct {
	mu    sync.Mutex
	state *State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	cp := *m.state
	return &cp, nil
}

func (m *MemoryStore) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *state
	m.state = &cp
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = nil
	return nil
}
