package errors

// ErrorClassification indicates whether a failed operation could succeed if
// attempted again.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures (EINTR, EAGAIN).
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry could succeed.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// DefaultClassification returns the classification an error with code
// starts with. Every code is permanent; the OS error translator marks
// individual errnos retryable.
func DefaultClassification(code ErrorCode) ErrorClassification {
	return ClassificationPermanent
}
