package expense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// GetSummaryInput selects the period to total.
type GetSummaryInput struct {
	Year  int
	Month int
}

// GetSummaryOutput holds spending per category in a period.
type GetSummaryOutput struct {
	Period     valueobject.Period
	Categories []valueobject.CategorySum
	Total      decimal.Decimal
}

// GetSummaryUseCase totals expenses per category for a period.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the per-category sums and their grand total.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	period, err := valueobject.NewPeriod(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	sums, err := uc.expenseRepo.SumByCategoryInPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	total := decimal.Zero
	for _, s := range sums {
		total = total.Add(s.Total)
	}

	return &GetSummaryOutput{
		Period:     period,
		Categories: sums,
		Total:      total,
	}, nil
}
