// Package billy provides a go-billy-backed implementation of core.Files,
// enabling the same metadata and symlink facade over go-git filesystems.
//
// This package wraps go-billy's osfs (local) and memfs (in-memory)
// implementations, or any other billy.Filesystem, and reports failures
// with the same messages and error codes as the POSIX facade. Errors from
// backends that return io/fs sentinels instead of errnos are mapped to the
// conventional errno.
//
// Usage:
//
//	// Local filesystem bound to a directory
//	files := billy.NewLocal("/srv/checkout")
//	st, err := files.Stat("scripts/build.sh")
//
//	// Unwrap for go-git integration
//	billyFS := files.Unwrap()
//	repo, err := git.Clone(storage, billyFS, &git.CloneOptions{...})
//
// # Memory Filesystem
//
// For testing, use the in-memory filesystem:
//
//	files := billy.NewMemory()
//	err := files.Symlink("current", "releases/v2")
//
// # Permission Bits
//
// SetMode requires the filesystem to implement billy.Change. osfs and memfs
// do not, so SetMode on them fails with ENOSYS.
//
// # Thread Safety
//
// Files is safe for concurrent use if the underlying filesystem is.
package billy
