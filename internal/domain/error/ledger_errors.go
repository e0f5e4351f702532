// Package error defines domain-specific errors for the Church Ledger application.
package error

import (
	"errors"
	"strings"
)

// Ledger domain errors.
var (
	// ErrInvalidAmount is returned when a reconciled total is not positive or an allocation input is negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingRequiredField is returned when a mandatory record field is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrDuplicateControlNumber is returned when a control number is already used by another collection.
	ErrDuplicateControlNumber = errors.New("control number already exists")

	// ErrUnknownCategory marks an expense category that has no budget line.
	// It is informational: budget comparison reports it as a zero-budget line.
	ErrUnknownCategory = errors.New("category not present in budget plan")

	// ErrRecordNotFound is returned when a collection or expense is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidFundSource is returned when an expense fund source is not recognised.
	ErrInvalidFundSource = errors.New("invalid fund source")

	// ErrInvalidPaymentMethod is returned when a collection payment method is not recognised.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPeriod is returned when a reporting period is malformed.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidDate is returned when a record date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount          LedgerErrorCode = "LED-010001"
	ErrCodeMissingRequiredField   LedgerErrorCode = "LED-010002"
	ErrCodeDuplicateControlNumber LedgerErrorCode = "LED-010003"
	ErrCodeUnknownCategory        LedgerErrorCode = "LED-010004"
	ErrCodeInvalidFundSource      LedgerErrorCode = "LED-010005"
	ErrCodeInvalidPaymentMethod   LedgerErrorCode = "LED-010006"
	ErrCodeInvalidPeriod          LedgerErrorCode = "LED-010007"
	ErrCodeInvalidDate            LedgerErrorCode = "LED-010008"
	ErrCodeValidationFailed       LedgerErrorCode = "LED-010009"
	ErrCodeMalformedRequest       LedgerErrorCode = "LED-010010"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound LedgerErrorCode = "LED-020001"

	// Service errors (03XXXX)
	ErrCodeSuggestionUnavailable LedgerErrorCode = "LED-030001"
	ErrCodeExportUnavailable     LedgerErrorCode = "LED-030002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError is a single field-level problem found while validating a record.
type ValidationError struct {
	Field   string
	Code    LedgerErrorCode
	Message string
	Err     error
}

// ValidationErrors collects every field-level problem of one submission.
type ValidationErrors []ValidationError

// Add appends a field error.
func (v *ValidationErrors) Add(field string, code LedgerErrorCode, message string, err error) {
	*v = append(*v, ValidationError{
		Field:   field,
		Code:    code,
		Message: message,
		Err:     err,
	})
}

// HasErrors reports whether any field error was collected.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// HasField reports whether a field error was collected for the given field.
func (v ValidationErrors) HasField(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match any sentinel carried by one of the field errors.
func (v ValidationErrors) Is(target error) bool {
	for _, e := range v {
		if e.Err != nil && errors.Is(e.Err, target) {
			return true
		}
	}
	return false
}
