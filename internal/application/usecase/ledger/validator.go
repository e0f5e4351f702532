package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// RecordValidator enforces the presence and uniqueness rules of ledger records.
// Every field problem is collected before returning.
type RecordValidator struct {
	collectionRepo adapter.CollectionRepository
}

// NewRecordValidator creates a new RecordValidator instance.
func NewRecordValidator(collectionRepo adapter.CollectionRepository) *RecordValidator {
	return &RecordValidator{
		collectionRepo: collectionRepo,
	}
}

// ValidateCollection checks a reconciled collection.
// It returns domainerror.ValidationErrors for field problems, or a wrapped
// infrastructure error when the control number lookup fails.
func (v *RecordValidator) ValidateCollection(ctx context.Context, collection *entity.Collection) error {
	var errs domainerror.ValidationErrors

	if collection.Date.IsZero() {
		errs.Add("date", domainerror.ErrCodeMissingRequiredField, "date is required", domainerror.ErrMissingRequiredField)
	}

	if strings.TrimSpace(collection.Particular) == "" {
		errs.Add("particular", domainerror.ErrCodeMissingRequiredField, "particular is required", domainerror.ErrMissingRequiredField)
	}

	if !collection.TotalAmount.IsPositive() {
		errs.Add("total_amount", domainerror.ErrCodeInvalidAmount,
			"total amount must be greater than zero; enter a total or at least one category amount",
			domainerror.ErrInvalidAmount)
	}

	if !collection.PaymentMethod.IsValid() {
		errs.Add("payment_method", domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("payment method %q is not supported", collection.PaymentMethod),
			domainerror.ErrInvalidPaymentMethod)
	}

	if collection.ControlNumber != "" {
		existing, err := v.collectionRepo.FindByControlNumber(ctx, collection.ControlNumber)
		if err != nil {
			return fmt.Errorf("failed to check control number: %w", err)
		}
		if existing != nil && existing.ID != collection.ID {
			errs.Add("control_number", domainerror.ErrCodeDuplicateControlNumber,
				fmt.Sprintf("control number %q is already used", collection.ControlNumber),
				domainerror.ErrDuplicateControlNumber)
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidateExpense checks a reconciled expense. A missing particular is
// replaced with entity.DefaultExpenseParticular rather than reported.
func (v *RecordValidator) ValidateExpense(ctx context.Context, expense *entity.Expense) error {
	var errs domainerror.ValidationErrors

	if expense.Date.IsZero() {
		errs.Add("date", domainerror.ErrCodeMissingRequiredField, "date is required", domainerror.ErrMissingRequiredField)
	}

	if strings.TrimSpace(expense.Category) == "" {
		errs.Add("category", domainerror.ErrCodeMissingRequiredField, "category is required", domainerror.ErrMissingRequiredField)
	}

	if strings.TrimSpace(expense.Particular) == "" {
		expense.Particular = entity.DefaultExpenseParticular
	}

	if !expense.TotalAmount.IsPositive() {
		errs.Add("total_amount", domainerror.ErrCodeInvalidAmount,
			"total amount must be greater than zero; enter a total or at least one category amount",
			domainerror.ErrInvalidAmount)
	}

	if !expense.FundSource.IsValid() {
		errs.Add("fund_source", domainerror.ErrCodeInvalidFundSource,
			fmt.Sprintf("fund source %q is not supported", expense.FundSource),
			domainerror.ErrInvalidFundSource)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
