package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps assets in a directory on disk.
type LocalStore struct {
	dir string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Fetch(_ context.Context, _ *Workspace, name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return "", fmt.Errorf("failed to stat asset %s: %w", name, err)
	}
	return path, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset %s: %w", name, err)
	}
	return path, nil
}
