// Package pathcodec converts between Go path strings and the byte-string
// paths the operating system consumes.
//
// Go strings are already byte strings, so the conversion is lossless for any
// Unicode text, including characters outside the basic multilingual plane,
// and for names that are not valid UTF-8. The codec never normalizes: the
// bytes handed to the kernel are exactly the bytes of the Go string.
package pathcodec

import (
	"bytes"
	"strings"
	"syscall"

	"golang.org/x/text/unicode/norm"
)

// Encode validates path and returns the form passed to system calls.
//
// An empty path yields ENOENT and a path containing a NUL byte yields
// EINVAL, matching what the kernel would report for the same input.
func Encode(path string) (string, error) {
	if path == "" {
		return "", syscall.ENOENT
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", syscall.EINVAL
	}
	return path, nil
}

// Decode converts bytes returned by the OS (readlink, getdents) into a Go
// string, stopping at the first NUL.
func Decode(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Display returns the form used when a path is rendered in a diagnostic.
// Runs of separators collapse to one and a trailing separator is dropped.
// "." and ".." elements are kept, since the kernel resolves ".." after
// following any symbolic link before it.
func Display(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && b.Len() > 0 && strings.HasSuffix(b.String(), "/") {
			continue
		}
		b.WriteByte(path[i])
	}
	s := b.String()
	if len(s) > 1 {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}

// SameName reports whether two directory entry names refer to the same name
// once both are in Unicode normalization form C. Some filesystems (HFS+)
// store names decomposed, so a listing may return the NFD spelling of a
// name that was created in NFC.
func SameName(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}
