package errors

import stderrors "errors"

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContext(err error, key string, value interface{}) PlatformError {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error. New fields
// override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &platformError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// WithClassification overrides the classification of an error.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	return &platformError{
		code:           base.Code(),
		classification: classification,
		message:        base.Message(),
		context:        base.Context(),
		cause:          base.Unwrap(),
	}
}

func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
