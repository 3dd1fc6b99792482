package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/native/fs/core"
)

// Fixture is an empty directory tree together with the facade under test.
//
// The helper functions set up entries out of band, through the backend's
// own API rather than through Files, so that the facade is only ever
// observed and never trusted to prepare its own inputs. All names are
// slash-separated and relative to the fixture root.
type Fixture struct {
	// Files is the facade under test.
	Files core.Files

	// Path converts a fixture-relative name into the path passed to Files.
	Path func(name string) string

	// WriteFile creates a regular file containing data.
	WriteFile func(name string, data []byte) error

	// Mkdir creates a directory, including missing parents.
	Mkdir func(name string) error

	// ReadDir lists the entry names of a directory.
	ReadDir func(name string) ([]string, error)
}

// LocalFixture returns a fixture rooted at a fresh t.TempDir(), populated
// through package os. It suits any facade that operates on the host
// filesystem with absolute paths.
func LocalFixture(t *testing.T, files core.Files) Fixture {
	t.Helper()
	root := t.TempDir()

	path := func(name string) string {
		return filepath.Join(root, filepath.FromSlash(name))
	}

	return Fixture{
		Files: files,
		Path:  path,
		WriteFile: func(name string, data []byte) error {
			return os.WriteFile(path(name), data, 0o644)
		},
		Mkdir: func(name string) error {
			return os.MkdirAll(path(name), 0o755)
		},
		ReadDir: func(name string) ([]string, error) {
			entries, err := os.ReadDir(path(name))
			if err != nil {
				return nil, err
			}
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name()
			}
			return names, nil
		},
	}
}

func (fx Fixture) mustWriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	if err := fx.WriteFile(name, data); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
	return fx.Path(name)
}

func (fx Fixture) mustMkdir(t *testing.T, name string) string {
	t.Helper()
	if err := fx.Mkdir(name); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}
	return fx.Path(name)
}

func (fx Fixture) mustSymlink(t *testing.T, name, target string) string {
	t.Helper()
	link := fx.Path(name)
	if err := fx.Files.Symlink(link, target); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", name, target, err)
	}
	return link
}
