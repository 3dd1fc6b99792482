package core

import (
	"fmt"
	"io/fs"
	"time"
)

// FileType classifies a directory entry. The set is closed.
type FileType int

const (
	// FileTypeMissing indicates no entry exists at the path.
	FileTypeMissing FileType = iota
	// FileTypeFile indicates a regular file.
	FileTypeFile
	// FileTypeDirectory indicates a directory.
	FileTypeDirectory
	// FileTypeSymlink indicates a symbolic link (the link itself).
	FileTypeSymlink
	// FileTypeOther indicates a device, socket, fifo or anything else.
	FileTypeOther
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeMissing:
		return "missing"
	case FileTypeFile:
		return "file"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeOther:
		return "other"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// FileTypeFromFileMode classifies the type bits of an fs.FileMode.
func FileTypeFromFileMode(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return FileTypeFile
	case mode.IsDir():
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	default:
		return FileTypeOther
	}
}

// PermissionBits holds the low 12 bits of a POSIX mode: owner, group and
// other rwx plus setuid, setgid and sticky.
type PermissionBits uint32

const (
	// PermissionMask selects the bits PermissionBits may carry.
	PermissionMask PermissionBits = 0o7777

	// ModeSetuid runs an executable as its owner.
	ModeSetuid PermissionBits = 0o4000

	// ModeSetgid runs an executable as its group, or makes new entries in a
	// directory inherit the directory's group.
	ModeSetgid PermissionBits = 0o2000

	// ModeSticky restricts removal of entries in a directory to their owners.
	ModeSticky PermissionBits = 0o1000
)

// String renders the bits as four octal digits, e.g. "0740".
func (p PermissionBits) String() string {
	return fmt.Sprintf("%04o", uint32(p))
}

// FileMode converts the bits to an fs.FileMode, moving setuid, setgid and
// sticky into Go's high mode bits.
func (p PermissionBits) FileMode() fs.FileMode {
	mode := fs.FileMode(p & 0o777)
	if p&ModeSetuid != 0 {
		mode |= fs.ModeSetuid
	}
	if p&ModeSetgid != 0 {
		mode |= fs.ModeSetgid
	}
	if p&ModeSticky != 0 {
		mode |= fs.ModeSticky
	}
	return mode
}

// PermissionBitsFromFileMode is the inverse of PermissionBits.FileMode.
// Type bits are discarded.
func PermissionBitsFromFileMode(mode fs.FileMode) PermissionBits {
	bits := PermissionBits(mode.Perm())
	if mode&fs.ModeSetuid != 0 {
		bits |= ModeSetuid
	}
	if mode&fs.ModeSetgid != 0 {
		bits |= ModeSetgid
	}
	if mode&fs.ModeSticky != 0 {
		bits |= ModeSticky
	}
	return bits
}

// FileStatus is the typed result of a stat query.
//
// When Type is FileTypeMissing every other field is zero. An existing entry
// may legitimately have Mode 0; that case is not special-cased.
type FileStatus struct {
	Type    FileType
	Mode    PermissionBits
	Size    int64
	UID     uint32
	GID     uint32
	ModTime time.Time
}

// MissingStatus is the status reported for a path that does not exist.
var MissingStatus = FileStatus{Type: FileTypeMissing}

// Exists reports whether the status describes an existing entry.
func (s FileStatus) Exists() bool {
	return s.Type != FileTypeMissing
}
