package budget

import (
	"context"
	"fmt"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// CompareBudgetInput selects the plan year and an optional month.
type CompareBudgetInput struct {
	Year  int
	Month int
}

// CompareBudgetOutput holds the actual-vs-budget lines of a period.
type CompareBudgetOutput struct {
	Period valueobject.Period
	Lines  []valueobject.ComparisonLine
	Totals valueobject.ComparisonTotals
}

// CompareBudgetUseCase compares a year's plan with recorded expenses.
type CompareBudgetUseCase struct {
	budgetRepo  adapter.BudgetPlanRepository
	expenseRepo adapter.ExpenseRepository
}

// NewCompareBudgetUseCase creates a new CompareBudgetUseCase instance.
func NewCompareBudgetUseCase(budgetRepo adapter.BudgetPlanRepository, expenseRepo adapter.ExpenseRepository) *CompareBudgetUseCase {
	return &CompareBudgetUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute returns one line per plan category plus unbudgeted spending.
func (uc *CompareBudgetUseCase) Execute(ctx context.Context, input CompareBudgetInput) (*CompareBudgetOutput, error) {
	period, err := valueobject.NewPeriod(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	plan, err := uc.budgetRepo.FindByYear(ctx, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget plan: %w", err)
	}
	if plan == nil {
		return nil, planNotFound(input.Year)
	}

	start, end := period.Bounds()
	expenses, err := uc.expenseRepo.ListByDateRange(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	actual := make([]valueobject.ExpenseLine, 0, len(expenses))
	for _, e := range expenses {
		actual = append(actual, valueobject.ExpenseLine{
			Date:        e.Date,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			TotalAmount: e.TotalAmount,
		})
	}

	lines := valueobject.CompareBudget(plan.Lines(), actual, period)
	return &CompareBudgetOutput{
		Period: period,
		Lines:  lines,
		Totals: valueobject.SummarizeComparison(lines),
	}, nil
}
