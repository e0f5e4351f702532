package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID    uuid.UUID
	Draft ledger.ExpenseDraft
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	processor   *ledger.Processor
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, processor *ledger.Processor) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		processor:   processor,
	}
}

// Execute replaces the values of an expense. Provenance and creation time are kept.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*ExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if err := uc.processor.PrepareExpense(ctx, input.Draft, expense); err != nil {
		return nil, err
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &ExpenseOutput{Expense: expense}, nil
}
