package oserr

import (
	"fmt"
	"io/fs"
	"syscall"

	"github.com/jmgilman/go/native/errors"
	"github.com/jmgilman/go/native/fs/pathcodec"
)

const clauseMissing = "file does not exist"

// Error is the structured failure returned by every facade call.
//
// Error() yields the stable diagnostic text
//
//	Could not <action> <noun> <prep> <path>: <clause>.
//
// and Unwrap() yields an *fs.PathError carrying the errno, so the usual
// errors.Is(err, fs.ErrNotExist) checks work.
type Error struct {
	op             Operation
	path           string
	call           string
	errno          syscall.Errno
	missing        bool
	code           errors.ErrorCode
	classification errors.ErrorClassification
	cause          error
}

// Failed translates err, returned by the system call named call while
// performing op on path, into an *Error.
func Failed(op Operation, path, call string, err error) *Error {
	errno := Errno(err)
	return &Error{
		op:             op,
		path:           path,
		call:           call,
		errno:          errno,
		code:           codeFor(op, call, errno),
		classification: classify(errno),
		cause:          &fs.PathError{Op: call, Path: path, Err: errno},
	}
}

// Missing reports that path does not exist. The clause carries no errno.
// call names the system call that observed the absence; it is kept in the
// error context and the unwrapped *fs.PathError.
func Missing(op Operation, path, call string) *Error {
	return &Error{
		op:             op,
		path:           path,
		call:           call,
		errno:          syscall.ENOENT,
		missing:        true,
		code:           errors.CodeNotFound,
		classification: errors.ClassificationPermanent,
		cause:          &fs.PathError{Op: call, Path: path, Err: syscall.ENOENT},
	}
}

// Error returns the diagnostic message.
func (e *Error) Error() string {
	return fmt.Sprintf("Could not %s %s %s %s: %s.",
		e.op.Action, e.op.Noun, e.op.Preposition, pathcodec.Display(e.path), e.clause())
}

func (e *Error) clause() string {
	if e.missing {
		return clauseMissing
	}
	return fmt.Sprintf("could not %s file (%s errno %d)", e.call, Name(e.errno), int(e.errno))
}

// Code implements errors.PlatformError.
func (e *Error) Code() errors.ErrorCode {
	return e.code
}

// Classification implements errors.PlatformError.
func (e *Error) Classification() errors.ErrorClassification {
	return e.classification
}

// Message implements errors.PlatformError. It is identical to Error().
func (e *Error) Message() string {
	return e.Error()
}

// Context implements errors.PlatformError.
func (e *Error) Context() map[string]interface{} {
	return map[string]interface{}{
		"path":       e.path,
		"operation":  e.op.String(),
		"call":       e.call,
		"errno":      int(e.errno),
		"errno_name": Name(e.errno),
	}
}

// Unwrap returns the *fs.PathError describing the failed call.
func (e *Error) Unwrap() error {
	return e.cause
}

// Operation returns the attempted operation.
func (e *Error) Operation() Operation {
	return e.op
}

// Path returns the path as passed by the caller.
func (e *Error) Path() string {
	return e.path
}

// Call returns the name of the system call that failed.
func (e *Error) Call() string {
	return e.call
}

// Errno returns the OS error number. Missing errors report ENOENT.
func (e *Error) Errno() syscall.Errno {
	return e.errno
}

func codeFor(op Operation, call string, errno syscall.Errno) errors.ErrorCode {
	switch {
	case errno == syscall.ENOENT && !op.Mutating:
		return errors.CodeNotFound
	case errno == syscall.EEXIST:
		return errors.CodeAlreadyExists
	case errno == syscall.EINVAL && call == CallReadlink:
		return errors.CodeNotALink
	default:
		return errors.CodeOSFailure
	}
}

func classify(errno syscall.Errno) errors.ErrorClassification {
	switch errno {
	case syscall.EINTR, syscall.EAGAIN, syscall.EBUSY, syscall.ETIMEDOUT:
		return errors.ClassificationRetryable
	default:
		return errors.ClassificationPermanent
	}
}

var _ errors.PlatformError = (*Error)(nil)
