// Package posix implements core.Files with direct system calls through
// golang.org/x/sys/unix.
//
// Each method performs one or two system calls (lstat, stat, chmod,
// symlink, readlink) and either decodes the raw result into core types or
// hands the errno to package oserr. Nothing is cached and nothing is
// retried; a call blocks for as long as the kernel does.
//
// The package only builds on unix platforms. Most callers should not
// construct it directly but obtain the process-wide instance from the
// registry:
//
//	files, err := native.Files()
//
// Tests and tools that want their own instance, for example with a debug
// logger, can use New:
//
//	files := posix.New(posix.WithLogger(logger))
//	if err := files.SetMode("script.sh", 0o755); err != nil {
//	    return err
//	}
package posix
