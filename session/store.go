// Package session holds the authenticated identity for one client run and
// persists it across restarts, the way a browser tab keeps sessionStorage.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage keys. Each identity kind persists under its own key so a stale
// alternate-kind session cannot leak in.
const (
	KeyCurrentUser      = "currentUser"
	KeyCurrentCaregiver = "currentCaregiver"
	KeySelectedCareType = "selectedCareType"
)

// Store is tab-scoped persistent storage: opaque string keys mapping to
// serialized documents.
type Store interface {
	// Get returns the stored document for key, or ok=false when absent.
	Get(key string) (data []byte, ok bool, err error)
	// Put stores the document under key, replacing any previous value.
	Put(key string, data []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// FileStore keeps one JSON document per key inside a state directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileStore) Put(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o600)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	data, ok := s.values[key]
	return data, ok, nil
}

func (s *MemStore) Put(key string, data []byte) error {
	s.values[key] = data
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
