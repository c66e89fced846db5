package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileStore keeps the bearer token in a single file, the desktop analog
// of the browser's localStorage key. Nothing else is kept on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrap(err, "read token")
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "token dir")
	}
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
