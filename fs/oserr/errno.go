package oserr

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// Errno extracts the OS error number from err.
//
// Errors that already carry a syscall.Errno anywhere in their chain
// (*fs.PathError, *os.LinkError, *os.SyscallError) yield it directly. The
// io/fs sentinels, which backends such as in-memory filesystems return
// without an errno, are mapped to their conventional numbers. Anything else
// is EIO.
func Errno(err error) syscall.Errno {
	if err == nil {
		return 0
	}

	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return errno
	}

	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return syscall.ENOENT
	case stderrors.Is(err, fs.ErrExist):
		return syscall.EEXIST
	case stderrors.Is(err, fs.ErrPermission):
		return syscall.EPERM
	case stderrors.Is(err, fs.ErrInvalid):
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}

// Name returns the symbolic name of errno, e.g. "ENOENT", or "UNKNOWN" if
// the platform table has no entry for it.
func Name(errno syscall.Errno) string {
	if n := errnoName(errno); n != "" {
		return n
	}
	return "UNKNOWN"
}
