package error

import "errors"

// Receipt email errors.
var (
	// ErrTemplateRenderFailed is returned when a receipt template cannot be rendered.
	ErrTemplateRenderFailed = errors.New("failed to render receipt template")

	// ErrPermanentEmailFailure is returned when the provider rejects a receipt for good.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when a receipt may succeed on retry.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// EmailErrorCode defines error codes for receipt delivery.
// Format: MAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Delivery errors (01XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "MAIL-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "MAIL-010002"

	// Template errors (02XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "MAIL-020001"
)

// EmailError is a failed receipt delivery.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
