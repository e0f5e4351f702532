// Package error defines domain-specific errors for the Church Ledger application.
package error

import "errors"

// Custom field domain errors.
var (
	ErrCustomFieldNotFound      = errors.New("custom field not found")
	ErrCustomFieldAlreadyExists = errors.New("custom field already exists for this table")
	ErrInvalidFieldName         = errors.New("invalid field name")
	ErrInvalidFieldType         = errors.New("invalid field type")
	ErrInvalidTableName         = errors.New("invalid table name")
	ErrInvalidFieldValue        = errors.New("invalid field value")
	ErrRequiredFieldMissing     = errors.New("required custom field missing")
	ErrCustomFieldInactive      = errors.New("custom field is inactive")
)

// CustomFieldErrorCode defines error codes for custom field errors.
// Format: CFD-XXYYYY where XX is category and YYYY is specific error.
type CustomFieldErrorCode string

const (
	// Definition errors (01XXXX)
	ErrCodeCustomFieldNotFound      CustomFieldErrorCode = "CFD-010001"
	ErrCodeCustomFieldAlreadyExists CustomFieldErrorCode = "CFD-010002"
	ErrCodeInvalidFieldName         CustomFieldErrorCode = "CFD-010003"
	ErrCodeInvalidFieldType         CustomFieldErrorCode = "CFD-010004"
	ErrCodeInvalidTableName         CustomFieldErrorCode = "CFD-010005"
	ErrCodeMissingCustomFieldFields CustomFieldErrorCode = "CFD-010006"

	// Value errors (02XXXX)
	ErrCodeInvalidFieldValue    CustomFieldErrorCode = "CFD-020001"
	ErrCodeRequiredFieldMissing CustomFieldErrorCode = "CFD-020002"
	ErrCodeCustomFieldInactive  CustomFieldErrorCode = "CFD-020003"
)

// CustomFieldError represents a custom field error with code and message.
type CustomFieldError struct {
	Code    CustomFieldErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CustomFieldError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CustomFieldError) Unwrap() error {
	return e.Err
}

// NewCustomFieldError creates a new CustomFieldError with the given code and message.
func NewCustomFieldError(code CustomFieldErrorCode, message string, err error) *CustomFieldError {
	return &CustomFieldError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
