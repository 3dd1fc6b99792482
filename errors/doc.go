// Package errors provides the structured error type shared by the native
// filesystem facades.
//
// Every failure surfaced by a facade implements PlatformError. Callers can
// branch on the ErrorCode, inspect the attached context (path, attempted
// system call, errno) and still use the standard library's errors.Is and
// errors.As against the wrapped OS error.
//
// # Error Codes
//
// The codes mirror the failure taxonomy of the facades:
//
//   - CodeNotFound: the path does not exist where existence was required
//   - CodeNotALink: the path exists but is not a symbolic link
//   - CodeAlreadyExists: the path exists where absence was required
//   - CodeOSFailure: any other error reported by the operating system
//   - CodeInvalidInput: the input was rejected before reaching the OS
//   - CodeUnsupported: the capability is not available on this platform
//   - CodeInternal, CodeUnknown: everything else
//
// # Classification
//
// Each code has a default ErrorClassification. Classification is purely
// informational: facades never retry on their own, but callers may use
// IsRetryable to decide whether a transient failure (EINTR, EAGAIN) is
// worth another attempt.
//
//	status, err := files.Stat(path)
//	if errors.GetCode(err) == errors.CodeOSFailure && errors.IsRetryable(err) {
//	    // try again later
//	}
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse. The wrapped error chain
// is never serialized.
package errors
