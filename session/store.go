package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amparo-care/amparo/config"
)

type Store interface {
	Load() (*Session, error)
	Save(session *Session) error
	Clear() error
}

// fileStore persists the session as a JSON file with user-only permissions,
// the closest CLI equivalent of the mobile app's AsyncStorage entry.
type fileStore struct {
	path string
}

var _ Store = &fileStore{}

func NewStore(cfg *config.Config) (Store, error) {
	path := cfg.SessionFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("unable to resolve session location: %w", err)
		}
		path = filepath.Join(dir, "amparo", "session.json")
	}
	return &fileStore{path: path}, nil
}

func (f *fileStore) Load() (*Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	session := &Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, fmt.Errorf("session file %s is corrupt: %w", f.path, err)
	}
	return session, nil
}

func (f *fileStore) Save(session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

func (f *fileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
