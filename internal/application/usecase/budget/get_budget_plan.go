package budget

import (
	"context"
	"fmt"

	"github.com/church-ledger/backend/internal/application/adapter"
)

// GetBudgetPlanUseCase returns the plan of a year.
type GetBudgetPlanUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
}

// NewGetBudgetPlanUseCase creates a new GetBudgetPlanUseCase instance.
func NewGetBudgetPlanUseCase(budgetRepo adapter.BudgetPlanRepository) *GetBudgetPlanUseCase {
	return &GetBudgetPlanUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns the plan with its categories.
func (uc *GetBudgetPlanUseCase) Execute(ctx context.Context, year int) (*BudgetPlanOutput, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	plan, err := uc.budgetRepo.FindByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget plan: %w", err)
	}
	if plan == nil {
		return nil, planNotFound(year)
	}

	return newBudgetPlanOutput(plan), nil
}
