package asset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_CloseRemovesStagedFiles(t *testing.T) {
	ws, err := NewWorkspace()
	require.NoError(t, err)

	path := ws.Path("font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	assert.Equal(t, ws.Dir(), filepath.Dir(path))

	require.NoError(t, ws.Close())
	_, err = os.Stat(ws.Dir())
	assert.True(t, os.IsNotExist(err))

	var nilWorkspace *Workspace
	assert.NoError(t, nilWorkspace.Close())
}

func TestWorkspace_PathStripsDirectories(t *testing.T) {
	ws, err := NewWorkspace()
	require.NoError(t, err)
	defer ws.Close()

	assert.Equal(t, filepath.Join(ws.Dir(), "passwd"), ws.Path("../../etc/passwd"))
}

func TestLocalStore_SaveAndLoad(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "public"))

	location, err := store.Save(t.Context(), "template.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.FileExists(t, location)

	data, err := Load(t.Context(), store, nil, "template.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	_, err = Load(t.Context(), store, nil, "missing.ttf")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestMockStore_StagesIntoWorkspace(t *testing.T) {
	store := NewMockStore(map[string][]byte{"font.ttf": []byte("font")})

	ws, err := NewWorkspace()
	require.NoError(t, err)

	data, err := Load(t.Context(), store, ws, "font.ttf")
	require.NoError(t, err)
	assert.Equal(t, []byte("font"), data)
	assert.FileExists(t, ws.Path("font.ttf"))

	require.NoError(t, ws.Close())
	assert.NoFileExists(t, ws.Path("font.ttf"))

	_, err = store.Fetch(t.Context(), nil, "font.ttf")
	assert.Error(t, err)
}

func TestSweepWorkspaces_RemovesOnlyStaleWorkspaces(t *testing.T) {
	base := t.TempDir()
	stale := filepath.Join(base, workspacePrefix+"stale")
	fresh := filepath.Join(base, workspacePrefix+"fresh")
	other := filepath.Join(base, "unrelated")
	for _, dir := range []string{stale, fresh, other} {
		require.NoError(t, os.Mkdir(dir, 0o755))
	}

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(other, old, old))

	assert.Equal(t, 1, SweepWorkspaces(base, time.Hour))
	assert.NoDirExists(t, stale)
	assert.DirExists(t, fresh)
	assert.DirExists(t, other)

	assert.Equal(t, 0, SweepWorkspaces(filepath.Join(base, "missing"), time.Hour))
}

func TestMinIOStore_ObjectName(t *testing.T) {
	store := NewMinIOStore(nil, "resources", "s3.local", true)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "template.png", want: "template.png"},
		{input: "https://s3.local/resources/fonts/font.ttf", want: "fonts/font.ttf"},
		{input: "http://s3.local/other/font.ttf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := store.objectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
