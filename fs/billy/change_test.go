//go:build unix

package billy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/native/fs/core"
)

func TestLocalFiles_SetMode(t *testing.T) {
	root := t.TempDir()
	files := NewLocal(root)
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), nil, 0o644))
	require.NoError(t, os.Symlink("f", filepath.Join(root, "link")))

	tests := []struct {
		name string
		path string
		mode core.PermissionBits
	}{
		{"relative", "f", 0o600},
		{"absolute under root", filepath.Join(root, "f"), 0o640},
		{"through symlink", "link", 0o700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, files.SetMode(tt.path, tt.mode))

			info, err := os.Stat(filepath.Join(root, "f"))
			require.NoError(t, err)
			assert.Equal(t, tt.mode, core.PermissionBitsFromFileMode(info.Mode()))
		})
	}
}

func TestLocalFiles_ChangeStaysInRoot(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "outside")
	require.NoError(t, os.WriteFile(outside, nil, 0o644))

	root := t.TempDir()
	files := NewLocal(root)
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))

	// The link target resolves under root, where nothing exists.
	err := files.SetMode("escape", 0o600)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotExist)

	info, err := os.Stat(outside)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestLocalFiles_Change(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), nil, 0o644))
	require.NoError(t, os.Symlink("f", filepath.Join(root, "link")))

	ch, ok := NewLocal(root).Unwrap().(billy.Change)
	require.True(t, ok)

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, ch.Chtimes("link", mtime, mtime))
	info, err := os.Stat(filepath.Join(root, "f"))
	require.NoError(t, err)
	assert.True(t, mtime.Equal(info.ModTime()))

	require.NoError(t, ch.Chown("f", os.Getuid(), os.Getgid()))
	require.NoError(t, ch.Lchown("link", os.Getuid(), os.Getgid()))
}
