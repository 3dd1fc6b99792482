package core_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/native/fs/core"
)

func TestFSType_String(t *testing.T) {
	tests := []struct {
		fsType   core.FSType
		expected string
	}{
		{core.FSTypeUnknown, "unknown"},
		{core.FSTypeLocal, "local"},
		{core.FSTypeMemory, "memory"},
		{core.FSTypeRemote, "remote"},
		{core.FSType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fsType.String())
		})
	}
}

func TestFileType_String(t *testing.T) {
	tests := []struct {
		fileType core.FileType
		expected string
	}{
		{core.FileTypeMissing, "missing"},
		{core.FileTypeFile, "file"},
		{core.FileTypeDirectory, "directory"},
		{core.FileTypeSymlink, "symlink"},
		{core.FileTypeOther, "other"},
		{core.FileType(42), "FileType(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fileType.String())
		})
	}
}

func TestFileType_ZeroValueIsMissing(t *testing.T) {
	var status core.FileStatus
	require.Equal(t, core.FileTypeMissing, status.Type)
	require.False(t, status.Exists())
	require.Equal(t, core.MissingStatus, status)
}

func TestFileTypeFromFileMode(t *testing.T) {
	tests := []struct {
		name string
		mode fs.FileMode
		want core.FileType
	}{
		{"regular", 0o644, core.FileTypeFile},
		{"directory", fs.ModeDir | 0o755, core.FileTypeDirectory},
		{"symlink", fs.ModeSymlink | 0o777, core.FileTypeSymlink},
		{"fifo", fs.ModeNamedPipe | 0o600, core.FileTypeOther},
		{"socket", fs.ModeSocket | 0o700, core.FileTypeOther},
		{"device", fs.ModeDevice | 0o660, core.FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.FileTypeFromFileMode(tt.mode))
		})
	}
}

func TestPermissionBits_String(t *testing.T) {
	assert.Equal(t, "0740", core.PermissionBits(0o740).String())
	assert.Equal(t, "0000", core.PermissionBits(0).String())
	assert.Equal(t, "4755", core.PermissionBits(0o4755).String())
}

func TestPermissionBits_FileModeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		bits core.PermissionBits
		mode fs.FileMode
	}{
		{"plain", 0o740, 0o740},
		{"setuid", 0o4755, fs.ModeSetuid | 0o755},
		{"setgid", 0o2750, fs.ModeSetgid | 0o750},
		{"sticky", 0o1777, fs.ModeSticky | 0o777},
		{"all special", 0o7000, fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mode, tt.bits.FileMode())
			assert.Equal(t, tt.bits, core.PermissionBitsFromFileMode(tt.mode))
		})
	}
}

func TestPermissionBitsFromFileMode_DropsTypeBits(t *testing.T) {
	assert.Equal(t, core.PermissionBits(0o755), core.PermissionBitsFromFileMode(fs.ModeDir|0o755))
	assert.Equal(t, core.PermissionBits(0o777), core.PermissionBitsFromFileMode(fs.ModeSymlink|0o777))
}

func TestReexportedErrorsMatchStdlib(t *testing.T) {
	assert.True(t, errors.Is(core.ErrNotExist, fs.ErrNotExist))
	assert.True(t, errors.Is(core.ErrExist, fs.ErrExist))
	assert.True(t, errors.Is(core.ErrPermission, fs.ErrPermission))
	assert.True(t, errors.Is(core.ErrInvalid, fs.ErrInvalid))
	assert.False(t, errors.Is(core.ErrNotExist, core.ErrExist))
}
