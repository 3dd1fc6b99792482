package billy

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-git/go-billy/v5"
)

// boundChange adds billy.Change to a root-bound osfs, which go-billy does
// not provide. Names resolve against the root the same way the bound
// filesystem resolves them, so links cannot escape it.
type boundChange struct {
	billy.Filesystem
}

func (b *boundChange) abs(name string) (string, error) {
	root := b.Root()
	if name == root {
		name = string(filepath.Separator)
	}
	p, err := securejoin.SecureJoin(root, name)
	if err != nil {
		return "", err
	}
	// Absolute names already under root are joined twice.
	dup := filepath.Join(root, root[len(filepath.VolumeName(root)):])
	if strings.HasPrefix(p, dup+string(filepath.Separator)) {
		return b.abs(p[len(dup):])
	}
	return p, nil
}

// absNoFollow resolves the parent of name but leaves its last element alone.
func (b *boundChange) absNoFollow(name string) (string, error) {
	dir, err := b.abs(filepath.Dir(name))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(name)), nil
}

func (b *boundChange) Chmod(name string, mode os.FileMode) error {
	p, err := b.abs(name)
	if err != nil {
		return err
	}
	return os.Chmod(p, mode)
}

func (b *boundChange) Lchown(name string, uid, gid int) error {
	p, err := b.absNoFollow(name)
	if err != nil {
		return err
	}
	return os.Lchown(p, uid, gid)
}

func (b *boundChange) Chown(name string, uid, gid int) error {
	p, err := b.abs(name)
	if err != nil {
		return err
	}
	return os.Chown(p, uid, gid)
}

func (b *boundChange) Chtimes(name string, atime, mtime time.Time) error {
	p, err := b.abs(name)
	if err != nil {
		return err
	}
	return os.Chtimes(p, atime, mtime)
}

var _ billy.Change = (*boundChange)(nil)
