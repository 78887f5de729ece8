package errors

// Code represents an error code. Codes mirror gRPC status codes.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Kind classifies errors the toolkit surfaces to a DM. A kind is stable across
// transports and travels as the ErrorInfo reason; its Code decides the gRPC
// status.
type Kind string

// Error kinds
const (
	KindMalformedGenerationResult Kind = "MALFORMED_GENERATION_RESULT"
	KindNoSourceText              Kind = "NO_SOURCE_TEXT"
	KindBillingRequired           Kind = "BILLING_REQUIRED"
	KindStorageUnavailable        Kind = "STORAGE_UNAVAILABLE"
	KindPartialTranslationFailure Kind = "PARTIAL_TRANSLATION_FAILURE"
	KindGenerationInProgress      Kind = "GENERATION_IN_PROGRESS"
)

var kindCodes = map[Kind]Code{
	KindMalformedGenerationResult: CodeDataLoss,
	KindNoSourceText:              CodeFailedPrecondition,
	KindBillingRequired:           CodePermissionDenied,
	KindStorageUnavailable:        CodeUnavailable,
	KindPartialTranslationFailure: CodeAborted,
	KindGenerationInProgress:      CodeAborted,
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Code returns the code errors of this kind carry. Unknown kinds are internal.
func (k Kind) Code() Code {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return CodeInternal
}
