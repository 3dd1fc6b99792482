// Package core defines the types and the capability interface shared by
// the native file metadata facades.
//
// # Types
//
//   - FileType: closed set of entry kinds (file, directory, symlink,
//     missing, other)
//   - PermissionBits: the low 12 bits of a POSIX mode
//   - FileStatus: typed stat result
//
// # Capability
//
// Files is the facade surface: Stat, StatTarget, GetMode, SetMode, Symlink
// and ReadLink. Implementations live in separate packages:
//
//   - github.com/jmgilman/go/native/fs/posix - direct system calls (unix)
//   - github.com/jmgilman/go/native/fs/billy - go-billy-backed (osfs, memfs)
//
// Callers normally obtain the POSIX facade through the registry in the
// root package:
//
//	files, err := native.Files()
//	if err != nil {
//	    return err
//	}
//	status, err := files.Stat("/etc/hosts")
//	if err != nil {
//	    return err
//	}
//	switch status.Type {
//	case core.FileTypeMissing:
//	    // not there
//	case core.FileTypeFile:
//	    fmt.Println(status.Mode) // e.g. 0644
//	}
//
// # Stdlib Compatibility
//
// PermissionBits converts to and from io/fs.FileMode, and facade errors
// unwrap to *fs.PathError so errors.Is(err, fs.ErrNotExist) behaves as
// expected.
package core
