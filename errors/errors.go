package errors

import "fmt"

// PlatformError extends the standard error interface with structured information
// for consistent error handling.
//
// Implementations must remain compatible with errors.Is, errors.As and
// errors.Unwrap from the standard library.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil.
func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *platformError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
