//go:build !unix

package oserr

import "syscall"

// Non-POSIX platforms have no errno name table in x/sys; the facade only
// ever produces this small set.
var errnoNames = map[syscall.Errno]string{
	syscall.EPERM:        "EPERM",
	syscall.ENOENT:       "ENOENT",
	syscall.EIO:          "EIO",
	syscall.EACCES:       "EACCES",
	syscall.EEXIST:       "EEXIST",
	syscall.ENOTDIR:      "ENOTDIR",
	syscall.EINVAL:       "EINVAL",
	syscall.ENAMETOOLONG: "ENAMETOOLONG",
	syscall.ENOSYS:       "ENOSYS",
	syscall.ELOOP:        "ELOOP",
}

func errnoName(errno syscall.Errno) string {
	return errnoNames[errno]
}
