package apierror

// Code is a symbolic error code. Each code maps to exactly one client-safe
// detail sentence in safeDetails.
type Code string

const (
	CodeNotFound             Code = "not_found"
	CodeAlreadyExists        Code = "already_exists"
	CodeValidation           Code = "validation_error"
	CodeUnauthorized         Code = "unauthorized"
	CodeForbidden            Code = "forbidden"
	CodePayloadTooLarge      Code = "payload_too_large"
	CodeUnsupportedMediaType Code = "unsupported_media_type"
	CodeRateLimitExceeded    Code = "rate_limit_exceeded"
)

// FallbackDetail is returned for codes missing from the table.
const FallbackDetail = "An error occurred"

var safeDetails = map[Code]string{
	CodeNotFound:             "The requested resource could not be found",
	CodeAlreadyExists:        "A resource with these properties already exists",
	CodeValidation:           "The provided data is invalid",
	CodeUnauthorized:         "Authentication required",
	CodeForbidden:            "Access to this resource is not allowed",
	CodePayloadTooLarge:      "Request payload exceeds maximum allowed size",
	CodeUnsupportedMediaType: "Content-Type header specifies unsupported media type",
	CodeRateLimitExceeded:    "Too many requests - rate limit exceeded",
}

// SafeDetail returns the client-visible sentence for code.
func SafeDetail(code Code) string {
	if detail, ok := safeDetails[code]; ok {
		return detail
	}
	return FallbackDetail
}

// Known reports whether code has an entry in the safe-message table.
func (c Code) Known() bool {
	_, ok := safeDetails[c]
	return ok
}
