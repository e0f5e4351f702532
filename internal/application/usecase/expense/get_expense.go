package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
)

// GetExpenseUseCase handles fetching a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the expense with the given ID.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) (*ExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return &ExpenseOutput{Expense: expense}, nil
}
