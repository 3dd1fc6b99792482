package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates a new PlatformError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeUnsupported, "symlinks are not supported")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: DefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err already carries a PlatformError, its classification is preserved.
// Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := DefaultClassification(code)
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
