package core

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates a remote filesystem (e.g., a network mount).
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Files is the facade over the operating system's file metadata and
// symbolic link calls. It is the capability type that the native registry
// hands out; every method is a synchronous call that performs one or two
// system calls and returns.
//
// All failures implement errors.PlatformError. Their Error() text has the
// form
//
//	Could not <action> <noun> on|for <path>: <clause>.
//
// where <clause> is either "file does not exist" or
// "could not <call> file (<ERRNO_NAME> errno <N>)". Consumers may match on
// this text.
type Files interface {
	// Stat returns the status of path without following a trailing
	// symbolic link. A path that does not exist is not an error: the
	// returned status has Type FileTypeMissing and Mode 0.
	//
	// Any other OS failure (EACCES on a parent, ENAMETOOLONG, ENOTDIR)
	// is returned as an error.
	Stat(path string) (FileStatus, error)

	// StatTarget is Stat with the trailing symbolic link followed.
	// A dangling link reports FileTypeMissing.
	StatTarget(path string) (FileStatus, error)

	// GetMode returns the permission bits of the entry at path, following
	// symbolic links. Unlike Stat, a missing path is an error with code
	// NOT_FOUND and the clause "file does not exist".
	GetMode(path string) (PermissionBits, error)

	// SetMode changes the permission bits of path to mode. The bits are
	// passed to the OS unmodified. A missing path is reported as an OS
	// failure carrying ENOENT.
	SetMode(path string, mode PermissionBits) error

	// Symlink creates a symbolic link at linkPath whose stored target is
	// exactly target. The target is neither resolved nor validated, so a
	// link to a non-existent entry is valid.
	//
	// Fails with ALREADY_EXISTS if an entry exists at linkPath.
	Symlink(linkPath, target string) error

	// ReadLink returns the literal target stored in the symbolic link at
	// linkPath.
	//
	// A missing path fails with NOT_FOUND and a clause naming lstat.
	// An existing path that is not a link fails with NOT_A_LINK and a
	// clause naming readlink.
	ReadLink(linkPath string) (string, error)

	// Type returns the underlying filesystem type.
	Type() FSType
}
