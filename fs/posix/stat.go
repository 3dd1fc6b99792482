//go:build unix

package posix

import (
	"errors"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// Stat reports the entry at path without following a trailing symbolic
// link. ENOENT yields core.MissingStatus and a nil error.
func (f *Files) Stat(path string) (core.FileStatus, error) {
	return f.stat(path, oserr.CallLstat, unix.Lstat)
}

// StatTarget reports the entry at path, following symbolic links.
func (f *Files) StatTarget(path string) (core.FileStatus, error) {
	return f.stat(path, oserr.CallStat, unix.Stat)
}

func (f *Files) stat(path, call string, statFn func(string, *unix.Stat_t) error) (core.FileStatus, error) {
	var st unix.Stat_t
	if err := f.rawStat(path, call, statFn, &st); err != nil {
		if errors.Is(err, syscall.ENOENT) {
			return core.MissingStatus, nil
		}
		return core.FileStatus{}, oserr.Failed(oserr.OpStat, path, call, err)
	}
	return decodeStat(&st), nil
}

// rawStat encodes path and runs statFn on it.
func (f *Files) rawStat(path, call string, statFn func(string, *unix.Stat_t) error, st *unix.Stat_t) error {
	p, err := pathcodec.Encode(path)
	if err != nil {
		return f.logCall(call, path, err)
	}
	return f.logCall(call, path, statFn(p, st))
}

func decodeStat(st *unix.Stat_t) core.FileStatus {
	mode := uint32(st.Mode)
	return core.FileStatus{
		Type:    fileType(mode),
		Mode:    core.PermissionBits(mode) & core.PermissionMask,
		Size:    int64(st.Size),
		UID:     uint32(st.Uid),
		GID:     uint32(st.Gid),
		ModTime: time.Unix(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)),
	}
}

func fileType(mode uint32) core.FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return core.FileTypeFile
	case unix.S_IFDIR:
		return core.FileTypeDirectory
	case unix.S_IFLNK:
		return core.FileTypeSymlink
	default:
		return core.FileTypeOther
	}
}
