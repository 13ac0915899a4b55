package localdb

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists each key as a file under a base directory. Writes go
// through a temp file and rename so a crash mid-write leaves the previous
// value intact.
type FileBackend struct {
	basePath string
	mutex    sync.Mutex
}

func NewFileBackend(basePath string) (*FileBackend, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}
	return &FileBackend{basePath: basePath}, nil
}

func (f *FileBackend) Get(key string) (string, bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return string(data), true, nil
}

func (f *FileBackend) Set(key, value string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	path := f.keyPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

func (f *FileBackend) Delete(key string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	err := os.Remove(f.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (f *FileBackend) keyPath(key string) string {
	return filepath.Join(f.basePath, key+".json")
}
