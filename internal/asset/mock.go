package asset

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// MockStore is an in-memory Store that stages fetched assets into the
// workspace like a remote store would.
type MockStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	SaveErr error
}

var _ Store = (*MockStore)(nil)

func NewMockStore(objects map[string][]byte) *MockStore {
	if objects == nil {
		objects = make(map[string][]byte)
	}
	return &MockStore{Objects: objects}
}

func (m *MockStore) Fetch(_ context.Context, ws *Workspace, name string) (string, error) {
	m.mu.Lock()
	data, ok := m.Objects[name]
	m.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if ws == nil {
		return "", fmt.Errorf("workspace is required to fetch %s", name)
	}

	path := ws.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (m *MockStore) Save(_ context.Context, name string, data []byte, _ string) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[name] = append([]byte(nil), data...)
	return "mock://" + name, nil
}
