//go:build unix

package posix

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/fstest"
	"github.com/jmgilman/go/native/fs/oserr"
)

func TestFiles_Conformance(t *testing.T) {
	fstest.TestFiles(t, func(t *testing.T) fstest.Fixture {
		return fstest.LocalFixture(t, New())
	})
}

func TestFiles_Type(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, New().Type())
}

func TestStat(t *testing.T) {
	files := New()
	dir := t.TempDir()

	t.Run("missing path", func(t *testing.T) {
		st, err := files.Stat(filepath.Join(dir, "nope"))
		require.NoError(t, err)
		assert.Equal(t, core.MissingStatus, st)
	})

	t.Run("regular file", func(t *testing.T) {
		p := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(p, []byte("hello"), 0o640))
		require.NoError(t, os.Chmod(p, 0o640))

		st, err := files.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeFile, st.Type)
		assert.Equal(t, core.PermissionBits(0o640), st.Mode)
		assert.Equal(t, int64(5), st.Size)
		assert.Equal(t, uint32(os.Getuid()), st.UID)
		assert.False(t, st.ModTime.IsZero())
	})

	t.Run("root directory", func(t *testing.T) {
		st, err := files.Stat("/")
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeDirectory, st.Type)
		assert.NotZero(t, st.Mode)
	})

	t.Run("fifo is other", func(t *testing.T) {
		p := filepath.Join(dir, "fifo")
		require.NoError(t, unix.Mkfifo(p, 0o600))

		st, err := files.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeOther, st.Type)
		assert.Equal(t, core.PermissionBits(0o600), st.Mode)
	})

	t.Run("not a directory", func(t *testing.T) {
		p := filepath.Join(dir, "parent-file")
		require.NoError(t, os.WriteFile(p, nil, 0o644))

		_, err := files.Stat(filepath.Join(p, "child"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeOSFailure, errors.GetCode(err))
		assert.Equal(t,
			"Could not get file details for "+filepath.Join(p, "child")+": could not lstat file (ENOTDIR errno 20).",
			err.Error())
	})
}

func TestGetMode_Missing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing")

	_, err := New().GetMode(p)
	require.Error(t, err)
	assert.Equal(t, "Could not get UNIX mode on "+p+": file does not exist.", err.Error())
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSetMode(t *testing.T) {
	files := New()
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		p := filepath.Join(dir, "f")
		require.NoError(t, os.WriteFile(p, nil, 0o644))

		for _, mode := range []core.PermissionBits{0o740, 0o660} {
			require.NoError(t, files.SetMode(p, mode))

			got, err := files.GetMode(p)
			require.NoError(t, err)
			assert.Equal(t, mode, got)

			st, err := files.Stat(p)
			require.NoError(t, err)
			assert.Equal(t, mode, st.Mode)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		p := filepath.Join(dir, "missing")

		err := files.SetMode(p, 0o740)
		require.Error(t, err)
		assert.Equal(t, "Could not set UNIX mode on "+p+": could not chmod file (ENOENT errno 2).", err.Error())
		assert.Equal(t, errors.CodeOSFailure, errors.GetCode(err))

		var oe *oserr.Error
		require.ErrorAs(t, err, &oe)
		assert.Equal(t, oserr.CallChmod, oe.Call())
		assert.Equal(t, unix.ENOENT, oe.Errno())
	})

	t.Run("message keeps the attempted path", func(t *testing.T) {
		link := filepath.Join(dir, "elsewhere")
		require.NoError(t, os.Symlink("/nonexistent-root/a/b", link))

		tests := []struct {
			path string
			want string
		}{
			{"./no-such-entry", "./no-such-entry"},
			{dir + "/./missing", dir + "/./missing"},
			{link + "/../missing", link + "/../missing"},
			{dir + "//missing/", dir + "/missing"},
		}

		for _, tt := range tests {
			err := files.SetMode(tt.path, 0o740)
			require.Error(t, err, tt.path)
			assert.Equal(t, "Could not set UNIX mode on "+tt.want+": could not chmod file (ENOENT errno 2).", err.Error())
		}
	})

	t.Run("follows symlinks", func(t *testing.T) {
		target := filepath.Join(dir, "target")
		link := filepath.Join(dir, "link")
		require.NoError(t, os.WriteFile(target, nil, 0o644))
		require.NoError(t, os.Symlink("target", link))

		require.NoError(t, files.SetMode(link, 0o600))

		got, err := files.GetMode(target)
		require.NoError(t, err)
		assert.Equal(t, core.PermissionBits(0o600), got)
	})
}

func TestSymlink(t *testing.T) {
	files := New()
	dir := t.TempDir()

	t.Run("create and read", func(t *testing.T) {
		link := filepath.Join(dir, "link")
		require.NoError(t, files.Symlink(link, "target"))

		target, err := files.ReadLink(link)
		require.NoError(t, err)
		assert.Equal(t, "target", target)

		st, err := files.Stat(link)
		require.NoError(t, err)
		assert.Equal(t, core.FileTypeSymlink, st.Type)
	})

	t.Run("long target", func(t *testing.T) {
		link := filepath.Join(dir, "long")
		want := strings.Repeat("segment/", 64) + "end"
		require.NoError(t, files.Symlink(link, want))

		got, err := files.ReadLink(link)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing parent", func(t *testing.T) {
		link := filepath.Join(dir, "no", "such", "link")

		err := files.Symlink(link, "target")
		require.Error(t, err)
		assert.Equal(t, "Could not create symlink for "+link+": could not symlink file (ENOENT errno 2).", err.Error())
		assert.Equal(t, errors.CodeOSFailure, errors.GetCode(err))
	})

	t.Run("NUL in target", func(t *testing.T) {
		link := filepath.Join(dir, "nul-target")

		err := files.Symlink(link, "bad\x00target")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not symlink file (EINVAL errno 22)")

		st, err := files.Stat(link)
		require.NoError(t, err)
		assert.False(t, st.Exists())
	})

	t.Run("read link on missing path", func(t *testing.T) {
		p := filepath.Join(dir, "missing")

		_, err := files.ReadLink(p)
		require.Error(t, err)
		assert.Equal(t, "Could not read symlink for "+p+": could not lstat file (ENOENT errno 2).", err.Error())
	})

	t.Run("read link on regular file", func(t *testing.T) {
		p := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(p, nil, 0o644))

		_, err := files.ReadLink(p)
		require.Error(t, err)
		assert.Equal(t, "Could not read symlink for "+p+": could not readlink file (EINVAL errno 22).", err.Error())
		assert.Equal(t, errors.CodeNotALink, errors.GetCode(err))
	})
}

func TestFiles_Concurrent(t *testing.T) {
	files := New()
	dir := t.TempDir()
	for i := 0; i < 8; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, string(rune('a'+i))), nil, 0o644))
	}

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		name := filepath.Join(dir, string(rune('a'+i%8)))
		g.Go(func() error {
			st, err := files.Stat(name)
			if err != nil {
				return err
			}
			if st.Type != core.FileTypeFile {
				return errors.Newf(errors.CodeInternal, "%s: got %s", name, st.Type)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestFiles_LogsCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	files := New(WithLogger(logger))

	p := filepath.Join(t.TempDir(), "missing")
	_, _ = files.GetMode(p)
	_, err := files.Stat("/")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "system call failed")
	assert.Contains(t, out, "call=stat")
	assert.Contains(t, out, "errno=2")
	assert.Contains(t, out, "call=lstat path=/")
}
