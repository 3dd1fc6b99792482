//go:build unix

package billy

import (
	"io/fs"
	"syscall"
)

// owner returns the uid and gid recorded by backends that expose the raw
// stat structure. In-memory backends report 0, 0.
func owner(info fs.FileInfo) (uid, gid uint32) {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return st.Uid, st.Gid
	}
	return 0, 0
}
