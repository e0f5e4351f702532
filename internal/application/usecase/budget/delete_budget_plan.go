package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// DeleteBudgetPlanUseCase removes the plan of a year.
type DeleteBudgetPlanUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
	splitCache adapter.SplitCache
}

// NewDeleteBudgetPlanUseCase creates a new DeleteBudgetPlanUseCase instance. splitCache may be nil.
func NewDeleteBudgetPlanUseCase(budgetRepo adapter.BudgetPlanRepository, splitCache adapter.SplitCache) *DeleteBudgetPlanUseCase {
	return &DeleteBudgetPlanUseCase{
		budgetRepo: budgetRepo,
		splitCache: splitCache,
	}
}

// Execute deletes the plan. Collections of that year fall back to the default split afterwards.
func (uc *DeleteBudgetPlanUseCase) Execute(ctx context.Context, year int, deletedBy string) error {
	if err := validateYear(year); err != nil {
		return err
	}

	if err := uc.budgetRepo.DeleteByYear(ctx, year); err != nil {
		if errors.Is(err, domainerror.ErrBudgetPlanNotFound) {
			return planNotFound(year)
		}
		return fmt.Errorf("failed to delete budget plan: %w", err)
	}

	invalidateSplit(ctx, uc.splitCache, year)

	slog.Info("Budget plan deleted", "year", year, "deleted_by", deletedBy)
	return nil
}
