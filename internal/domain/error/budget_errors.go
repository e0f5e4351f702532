// Package error defines domain-specific errors for the Church Ledger application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetPlanNotFound is returned when no budget plan exists for a year.
	ErrBudgetPlanNotFound = errors.New("budget plan not found")

	// ErrInvalidBudgetYear is returned when the plan year is out of range.
	ErrInvalidBudgetYear = errors.New("invalid budget year")

	// ErrInvalidPercentage is returned when a percentage is negative.
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrInvalidBudgetCategory is returned when a budget line has no category.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetYear     BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidPercentage     BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BUD-010005"

	// Lookup errors (02XXXX)
	ErrCodeBudgetPlanNotFound BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
