package billy

import (
	"io/fs"
	"path"
	"syscall"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/native/fs/core"
	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// Stat reports the entry at path without following a trailing symbolic
// link. A missing path yields core.MissingStatus and a nil error.
func (f *Files) Stat(path string) (core.FileStatus, error) {
	return f.stat(path, oserr.CallLstat, f.bfs.Lstat)
}

// StatTarget reports the entry at path, following symbolic links.
func (f *Files) StatTarget(path string) (core.FileStatus, error) {
	return f.stat(path, oserr.CallStat, f.bfs.Stat)
}

func (f *Files) stat(path, call string, statFn func(string) (fs.FileInfo, error)) (core.FileStatus, error) {
	info, err := f.info(path, call, statFn)
	if err != nil {
		if oserr.Errno(err) == syscall.ENOENT {
			return core.MissingStatus, nil
		}
		return core.FileStatus{}, oserr.Failed(oserr.OpStat, path, call, err)
	}
	return decodeInfo(info), nil
}

// info encodes path and runs statFn on its normalized form.
func (f *Files) info(path, call string, statFn func(string) (fs.FileInfo, error)) (fs.FileInfo, error) {
	p, err := pathcodec.Encode(path)
	if err != nil {
		return nil, f.logCall(call, path, err)
	}
	info, err := statFn(normalize(p))
	return info, f.logCall(call, path, err)
}

func decodeInfo(info fs.FileInfo) core.FileStatus {
	uid, gid := owner(info)
	return core.FileStatus{
		Type:    core.FileTypeFromFileMode(info.Mode()),
		Mode:    core.PermissionBitsFromFileMode(info.Mode()),
		Size:    info.Size(),
		UID:     uid,
		GID:     gid,
		ModTime: info.ModTime(),
	}
}

// GetMode returns the permission bits of path, following symbolic links.
func (f *Files) GetMode(path string) (core.PermissionBits, error) {
	info, err := f.info(path, oserr.CallStat, f.bfs.Stat)
	if err != nil {
		if oserr.Errno(err) == syscall.ENOENT {
			return 0, oserr.Missing(oserr.OpGetMode, path, oserr.CallStat)
		}
		return 0, oserr.Failed(oserr.OpGetMode, path, oserr.CallStat, err)
	}
	return core.PermissionBitsFromFileMode(info.Mode()), nil
}

// SetMode changes the permission bits of path. The filesystem must
// implement billy.Change; otherwise the call fails with ENOSYS once the
// path is known to exist.
func (f *Files) SetMode(path string, mode core.PermissionBits) error {
	p, err := pathcodec.Encode(path)
	if err == nil {
		err = f.chmod(normalize(p), mode)
	}
	if f.logCall(oserr.CallChmod, path, err) != nil {
		return oserr.Failed(oserr.OpSetMode, path, oserr.CallChmod, err)
	}
	return nil
}

func (f *Files) chmod(p string, mode core.PermissionBits) error {
	if ch, ok := f.bfs.(billy.Change); ok {
		return ch.Chmod(p, mode.FileMode())
	}
	// Report a missing path the way chmod(2) would before refusing.
	if _, err := f.bfs.Stat(p); err != nil {
		return err
	}
	return syscall.ENOSYS
}

// Symlink creates a symbolic link at linkPath storing target verbatim.
func (f *Files) Symlink(linkPath, target string) error {
	p, err := pathcodec.Encode(linkPath)
	if err == nil {
		var t string
		if t, err = pathcodec.Encode(target); err == nil {
			err = f.symlink(t, normalize(p))
		}
	}
	if f.logCall(oserr.CallSymlink, linkPath, err) != nil {
		return oserr.Failed(oserr.OpCreateSymlink, linkPath, oserr.CallSymlink, err)
	}
	return nil
}

// symlink refuses a missing or non-directory parent before calling the
// backend, since go-billy creates missing parents on its own.
func (f *Files) symlink(target, link string) error {
	if dir := path.Dir(link); dir != "." && dir != "/" {
		info, err := f.bfs.Stat(dir)
		if err != nil {
			if oserr.Errno(err) == syscall.ENOENT {
				return syscall.ENOENT
			}
			return err
		}
		if !info.IsDir() {
			return syscall.ENOTDIR
		}
	}
	return f.bfs.Symlink(target, link)
}

// ReadLink returns the target stored in the link at linkPath.
// Backends disagree on the error for a non-link, so the lstat mode is
// checked here and reported as EINVAL, matching readlink(2).
func (f *Files) ReadLink(linkPath string) (string, error) {
	info, err := f.info(linkPath, oserr.CallLstat, f.bfs.Lstat)
	if err != nil {
		return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallLstat, err)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		err = f.logCall(oserr.CallReadlink, linkPath, syscall.EINVAL)
		return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallReadlink, err)
	}

	p, _ := pathcodec.Encode(linkPath)
	target, err := f.bfs.Readlink(normalize(p))
	if f.logCall(oserr.CallReadlink, linkPath, err) != nil {
		return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallReadlink, err)
	}
	return target, nil
}
