package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// SplitSource resolves the fund split in force for a year.
type SplitSource interface {
	Resolve(ctx context.Context, year int) (valueobject.FundSplit, error)
}

// Processor turns drafts into validated records:
// normalize, reconcile, allocate (collections only), validate.
type Processor struct {
	validator *RecordValidator
}

// NewProcessor creates a new Processor instance.
func NewProcessor(validator *RecordValidator) *Processor {
	return &Processor{
		validator: validator,
	}
}

// PrepareCollection runs the pipeline for a collection draft and writes the
// result into target, which may be a new record or one being updated.
// Nothing is persisted here.
func (p *Processor) PrepareCollection(
	ctx context.Context,
	draft CollectionDraft,
	splits SplitSource,
	target *entity.Collection,
) error {
	var errs domainerror.ValidationErrors

	target.Date = parseDraftDate(draft.Date, &errs)

	target.Particular = trimmed(draft.Particular)
	target.ControlNumber = trimmed(draft.ControlNumber)
	target.PaymentMethod = entity.DefaultPaymentMethod
	if method := trimmed(draft.PaymentMethod); method != "" {
		target.PaymentMethod = entity.PaymentMethod(method)
	}

	target.Amounts = draft.Amounts.Normalize()

	total, err := valueobject.ReconcileTotal(valueobject.NormalizeAmount(draft.TotalAmount), target.Amounts.List())
	if err != nil && !errors.Is(err, domainerror.ErrInvalidAmount) {
		return err
	}
	// A failed reconciliation leaves a zero total for the validator to report.
	target.TotalAmount = total

	// Without a date the record is rejected anyway and no year selects a split.
	target.Allocation = valueobject.FundAllocation{}
	if !target.Date.IsZero() {
		split, err := splits.Resolve(ctx, target.Date.Year())
		if err != nil {
			return fmt.Errorf("failed to resolve fund split: %w", err)
		}

		allocation, err := valueobject.Allocate(target.Amounts.GeneralTithesOffering, split)
		if err != nil {
			return err
		}
		target.Allocation = allocation

		if !split.IsBalanced() {
			slog.Debug("Allocating with unbalanced fund split",
				"year", target.Date.Year(),
				"split_total", split.Total().String(),
				"residual", allocation.Residual(target.Amounts.GeneralTithesOffering).String(),
			)
		}
	}

	if err := mergeValidation(&errs, p.validator.ValidateCollection(ctx, target)); err != nil {
		return err
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// PrepareExpense runs the pipeline for an expense draft and writes the result
// into target. Nothing is persisted here.
func (p *Processor) PrepareExpense(ctx context.Context, draft ExpenseDraft, target *entity.Expense) error {
	var errs domainerror.ValidationErrors

	target.Date = parseDraftDate(draft.Date, &errs)
	target.Particular = trimmed(draft.Particular)
	target.FormsNumber = trimmed(draft.FormsNumber)
	target.ChequeNumber = trimmed(draft.ChequeNumber)
	target.Category = trimmed(draft.Category)
	target.Subcategory = trimmed(draft.Subcategory)
	target.FundSource = entity.FundSourceOperational
	if source := trimmed(draft.FundSource); source != "" {
		target.FundSource = entity.FundSource(source)
	}

	target.Amounts = draft.Amounts.Normalize()
	target.BudgetAmount = valueobject.NormalizeAmount(draft.BudgetAmount)
	target.PercentageAllocation = valueobject.NormalizeAmount(draft.PercentageAllocation)

	total, err := valueobject.ReconcileTotal(valueobject.NormalizeAmount(draft.TotalAmount), target.Amounts.List())
	if err != nil && !errors.Is(err, domainerror.ErrInvalidAmount) {
		return err
	}
	target.TotalAmount = total

	if err := mergeValidation(&errs, p.validator.ValidateExpense(ctx, target)); err != nil {
		return err
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// parseDraftDate parses a submitted date. An unparseable date is reported
// here so the validator's missing-date error is not added on top.
func parseDraftDate(value string, errs *domainerror.ValidationErrors) time.Time {
	if trimmed(value) == "" {
		return time.Time{}
	}
	date, err := ParseRecordDate(value)
	if err != nil {
		errs.Add("date", domainerror.ErrCodeInvalidDate, "date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidDate)
		return time.Time{}
	}
	return date
}

// mergeValidation appends validator field errors for fields not already
// reported. Non-validation errors are returned as is.
func mergeValidation(errs *domainerror.ValidationErrors, err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs domainerror.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if !errs.HasField(fe.Field) {
			*errs = append(*errs, fe)
		}
	}
	return nil
}
