package budget

import (
	"context"
	"fmt"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// ListBudgetPlansUseCase lists every plan without categories.
type ListBudgetPlansUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
}

// NewListBudgetPlansUseCase creates a new ListBudgetPlansUseCase instance.
func NewListBudgetPlansUseCase(budgetRepo adapter.BudgetPlanRepository) *ListBudgetPlansUseCase {
	return &ListBudgetPlansUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns the plans, newest year first.
func (uc *ListBudgetPlansUseCase) Execute(ctx context.Context) ([]*entity.BudgetPlan, error) {
	plans, err := uc.budgetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget plans: %w", err)
	}
	return plans, nil
}
