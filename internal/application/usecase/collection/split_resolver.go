// Package collection contains collection-related use cases.
package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// SplitResolver finds the fund split in force for a year: the year's budget
// plan when one exists, otherwise the configured default. Results are cached
// when a cache is configured; cache failures are logged and bypassed.
type SplitResolver struct {
	budgetRepo   adapter.BudgetPlanRepository
	cache        adapter.SplitCache
	defaultSplit valueobject.FundSplit
}

// NewSplitResolver creates a new SplitResolver instance. cache may be nil.
func NewSplitResolver(
	budgetRepo adapter.BudgetPlanRepository,
	cache adapter.SplitCache,
	defaultSplit valueobject.FundSplit,
) *SplitResolver {
	return &SplitResolver{
		budgetRepo:   budgetRepo,
		cache:        cache,
		defaultSplit: defaultSplit,
	}
}

// Resolve returns the split for the year.
func (r *SplitResolver) Resolve(ctx context.Context, year int) (valueobject.FundSplit, error) {
	if r.cache != nil {
		split, ok, err := r.cache.Get(ctx, year)
		if err != nil {
			slog.Warn("Fund split cache read failed", "year", year, "error", err)
		} else if ok {
			return split, nil
		}
	}

	split := r.defaultSplit
	plan, err := r.budgetRepo.FindByYear(ctx, year)
	if err != nil {
		return valueobject.FundSplit{}, fmt.Errorf("failed to load budget plan: %w", err)
	}
	if plan != nil {
		split = plan.Split
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, year, split); err != nil {
			slog.Warn("Fund split cache write failed", "year", year, "error", err)
		}
	}

	return split, nil
}
