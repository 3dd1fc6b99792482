//go:build unix

package posix

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// GetMode returns the permission bits of path, following symbolic links.
// A missing path fails with "file does not exist".
func (f *Files) GetMode(path string) (core.PermissionBits, error) {
	var st unix.Stat_t
	if err := f.rawStat(path, oserr.CallStat, unix.Stat, &st); err != nil {
		if errors.Is(err, syscall.ENOENT) {
			return 0, oserr.Missing(oserr.OpGetMode, path, oserr.CallStat)
		}
		return 0, oserr.Failed(oserr.OpGetMode, path, oserr.CallStat, err)
	}
	return core.PermissionBits(st.Mode) & core.PermissionMask, nil
}

// SetMode changes the permission bits of path. The bits reach chmod(2)
// unmodified; ENOENT is an ordinary chmod failure.
func (f *Files) SetMode(path string, mode core.PermissionBits) error {
	p, err := pathcodec.Encode(path)
	if err == nil {
		err = unix.Chmod(p, uint32(mode))
	}
	if f.logCall(oserr.CallChmod, path, err) != nil {
		return oserr.Failed(oserr.OpSetMode, path, oserr.CallChmod, err)
	}
	return nil
}
