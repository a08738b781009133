package asset

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const workspacePrefix = "cert-overlay-"

// StartWorkspaceSweeper removes workspaces older than maxAge that a crashed
// run left behind, once at startup and then every interval until ctx ends.
func StartWorkspaceSweeper(ctx context.Context, interval time.Duration, maxAge time.Duration) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in workspace sweeper", "panic", r)
			}
		}()

		SweepWorkspaces(os.TempDir(), maxAge)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				SweepWorkspaces(os.TempDir(), maxAge)
			}
		}
	}()

	slog.Info("Workspace sweeper started", "interval", interval, "max_age", maxAge)
}

// SweepWorkspaces deletes workspace directories under base whose
// modification time is older than maxAge, returning how many were removed.
func SweepWorkspaces(base string, maxAge time.Duration) int {
	entries, err := os.ReadDir(base)
	if err != nil {
		slog.Warn("Workspace sweep failed to read directory", "error", err, "dir", base)
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), workspacePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(base, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			slog.Warn("Workspace sweep failed to remove directory", "error", err, "dir", path)
			continue
		}
		removed++
	}

	if removed > 0 {
		slog.Info("Stale workspaces removed", "count", removed)
	}
	return removed
}
