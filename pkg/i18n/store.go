package i18n

import (
	"os"
	"strings"
	"sync"
)

// FileStore persists the language preference as a single code in a file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(code string) error {
	return os.WriteFile(s.path, []byte(code+"\n"), 0o644)
}

// MemoryStore keeps the preference in memory. Useful for tests and for
// deployments that do not want the choice to survive restarts.
type MemoryStore struct {
	mu   sync.Mutex
	code string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code, nil
}

func (s *MemoryStore) Save(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	return nil
}
