package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// CodeNotFound indicates the path does not exist where existence was required.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeNotALink indicates the path exists but is not a symbolic link.
	CodeNotALink ErrorCode = "NOT_A_LINK"

	// CodeAlreadyExists indicates the path exists where absence was required.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeOSFailure indicates any other failure reported by the operating
	// system. The errno is carried in the error context.
	CodeOSFailure ErrorCode = "OS_FAILURE"

	// CodeInvalidInput indicates the input was rejected before any system call.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeUnsupported indicates the requested capability is not available.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
