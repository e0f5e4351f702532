// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// BudgetPlanRepository defines the interface for budget plan persistence operations.
type BudgetPlanRepository interface {
	// FindByYear retrieves the plan of a year with its categories, or nil when none exists.
	FindByYear(ctx context.Context, year int) (*entity.BudgetPlan, error)

	// Save creates or updates the plan of plan.Year and replaces all of its
	// categories in one transaction.
	Save(ctx context.Context, plan *entity.BudgetPlan) error

	// List returns every plan without categories, newest year first.
	List(ctx context.Context) ([]*entity.BudgetPlan, error)

	// DeleteByYear removes a plan and its categories.
	// Returns domainerror.ErrBudgetPlanNotFound when no plan exists for the year.
	DeleteByYear(ctx context.Context, year int) error
}
