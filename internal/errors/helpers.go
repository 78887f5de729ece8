package errors

import (
	"context"
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code. Bare context errors map to Canceled and
// DeadlineExceeded so canceled generations are never reported as Internal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	}

	return CodeInternal
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound reports a missing world, campaign or character
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

// IsInvalidArgument reports a rejected input
func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

// IsAlreadyExists reports a duplicate id
func IsAlreadyExists(err error) bool { return HasCode(err, CodeAlreadyExists) }

// IsInternal reports an unexpected failure
func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

// IsUnavailable reports a backend or provider that could not be reached
func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }

// IsResourceExhausted reports a provider rate limit
func IsResourceExhausted(err error) bool { return HasCode(err, CodeResourceExhausted) }

// IsFailedPrecondition reports an operation the current state does not allow
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }

// IsAborted reports an operation rejected by a concurrent one
func IsAborted(err error) bool { return HasCode(err, CodeAborted) }

// IsDataLoss reports stored or generated data that could not be decoded
func IsDataLoss(err error) bool { return HasCode(err, CodeDataLoss) }

// IsCanceled reports work stopped by its context, including deadlines
func IsCanceled(err error) bool {
	code := GetCode(err)
	return code == CodeCanceled || code == CodeDeadlineExceeded
}
