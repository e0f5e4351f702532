// Package budget contains budget plan use cases.
package budget

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

const (
	minYear = 1900
	maxYear = 9999
)

// BudgetPlanOutput wraps a plan with its derived checks. Neither check is enforced.
type BudgetPlanOutput struct {
	Plan                      *entity.BudgetPlan
	SplitBalanced             bool
	CategoriesPercentageTotal decimal.Decimal
	TotalBudget               decimal.Decimal
}

func newBudgetPlanOutput(plan *entity.BudgetPlan) *BudgetPlanOutput {
	return &BudgetPlanOutput{
		Plan:                      plan,
		SplitBalanced:             plan.Split.IsBalanced(),
		CategoriesPercentageTotal: plan.CategoriesPercentageTotal(),
		TotalBudget:               plan.TotalBudget(),
	}
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetYear,
			"year must be between 1900 and 9999",
			domainerror.ErrInvalidBudgetYear,
		)
	}
	return nil
}

func planNotFound(year int) error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetPlanNotFound,
		fmt.Sprintf("no budget plan for %d", year),
		domainerror.ErrBudgetPlanNotFound,
	)
}
