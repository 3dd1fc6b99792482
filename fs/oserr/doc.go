// Package oserr translates operating system error numbers into the
// structured failures returned by the native file facades.
//
// A failure is built from the attempted Operation, the path, the system
// call that failed and its errno:
//
//	err := oserr.Failed(oserr.OpSetMode, "/tmp/x", oserr.CallChmod, syscall.ENOENT)
//	fmt.Println(err)
//	// Could not set UNIX mode on /tmp/x: could not chmod file (ENOENT errno 2).
//
// The errno name table is platform specific and lives behind build tags;
// the message format and the code mapping do not depend on it.
package oserr
