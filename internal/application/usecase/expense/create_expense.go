package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Draft         ledger.ExpenseDraft
	CreatedBy     string
	SubmittedVia  entity.SubmissionChannel
	SourcePayload map[string]string
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	processor   *ledger.Processor
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, processor *ledger.Processor) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		processor:   processor,
	}
}

// Execute validates and stores a new expense.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*ExpenseOutput, error) {
	via := input.SubmittedVia
	if via == "" {
		via = entity.SubmittedViaWeb
	}

	expense := entity.NewExpense(time.Time{}, "", input.CreatedBy, via)
	expense.SourcePayload = input.SourcePayload

	if err := uc.processor.PrepareExpense(ctx, input.Draft, expense); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if !entity.IsKnownExpenseCategory(expense.Category) {
		slog.Debug("Expense recorded under a custom category", "expense_id", expense.ID, "category", expense.Category)
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"submitted_via", expense.SubmittedVia,
		"total_amount", expense.TotalAmount.StringFixed(2),
	)

	return &ExpenseOutput{Expense: expense}, nil
}
