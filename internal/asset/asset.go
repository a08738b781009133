// Package asset fetches and stores the certificate template, the font and
// rendered samples, either on local disk or in a MinIO bucket.
package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

var ErrAssetNotFound = errors.New("asset not found")

// Store reads and writes named assets.
type Store interface {
	// Fetch makes the named asset available as a local file and returns
	// its path. Remote stores stage the file inside ws.
	Fetch(ctx context.Context, ws *Workspace, name string) (string, error)
	// Save persists data under name and returns its location.
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Workspace is a temporary directory scoped to a single generation run.
type Workspace struct {
	dir string
}

func NewWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", workspacePrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

func (w *Workspace) Dir() string {
	return w.dir
}

// Path returns the staging path for name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, filepath.Base(name))
}

// Close removes the workspace and everything staged in it.
func (w *Workspace) Close() error {
	if w == nil || w.dir == "" {
		return nil
	}
	if err := os.RemoveAll(w.dir); err != nil {
		slog.Warn("Failed to remove workspace", "error", err, "dir", w.dir)
		return err
	}
	slog.Debug("Workspace cleaned up", "dir", w.dir)
	return nil
}

// Load fetches name through store and reads it into memory.
func Load(ctx context.Context, store Store, ws *Workspace, name string) ([]byte, error) {
	path, err := store.Fetch(ctx, ws, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	return data, nil
}
