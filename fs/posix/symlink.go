//go:build unix

package posix

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/native/fs/oserr"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

// maxLinkSize bounds the readlink buffer growth.
const maxLinkSize = 1 << 20

// Symlink creates a symbolic link at linkPath storing target verbatim.
func (f *Files) Symlink(linkPath, target string) error {
	p, err := pathcodec.Encode(linkPath)
	if err == nil {
		var t string
		if t, err = pathcodec.Encode(target); err == nil {
			err = unix.Symlink(t, p)
		}
	}
	if f.logCall(oserr.CallSymlink, linkPath, err) != nil {
		return oserr.Failed(oserr.OpCreateSymlink, linkPath, oserr.CallSymlink, err)
	}
	return nil
}

// ReadLink returns the target stored in the link at linkPath.
//
// The entry is lstat'ed first so that a missing path and a path that is
// not a link fail in distinguishable ways; the lstat size also sizes the
// readlink buffer.
func (f *Files) ReadLink(linkPath string) (string, error) {
	var st unix.Stat_t
	if err := f.rawStat(linkPath, oserr.CallLstat, unix.Lstat, &st); err != nil {
		return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallLstat, err)
	}

	p, _ := pathcodec.Encode(linkPath)
	size := int(st.Size) + 1
	for {
		buf := make([]byte, size)
		n, err := unix.Readlink(p, buf)
		if f.logCall(oserr.CallReadlink, linkPath, err) != nil {
			return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallReadlink, err)
		}
		if n < len(buf) {
			return pathcodec.Decode(buf[:n]), nil
		}
		// The link changed between lstat and readlink and no longer fits.
		size *= 2
		if size > maxLinkSize {
			err := syscall.ENAMETOOLONG
			return "", oserr.Failed(oserr.OpReadLink, linkPath, oserr.CallReadlink, err)
		}
	}
}
