package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// BudgetCategoryInput is one submitted plan line. A nil Percentage makes it a
// fixed-amount line.
type BudgetCategoryInput struct {
	Category     string
	Subcategory  string
	Percentage   *decimal.Decimal
	BudgetAmount any
	Description  string
}

// SaveBudgetPlanInput represents the input for saving the plan of a year.
// Nil split percentages fall back to the default split.
type SaveBudgetPlanInput struct {
	Year                int
	TargetOffering      any
	SharedFundPercent   *decimal.Decimal
	PastoralTeamPercent *decimal.Decimal
	OperationalPercent  *decimal.Decimal
	Notes               string
	Categories          []BudgetCategoryInput
	SavedBy             string
}

// SaveBudgetPlanUseCase creates or replaces the plan of a year.
type SaveBudgetPlanUseCase struct {
	budgetRepo adapter.BudgetPlanRepository
	splitCache adapter.SplitCache
}

// NewSaveBudgetPlanUseCase creates a new SaveBudgetPlanUseCase instance. splitCache may be nil.
func NewSaveBudgetPlanUseCase(budgetRepo adapter.BudgetPlanRepository, splitCache adapter.SplitCache) *SaveBudgetPlanUseCase {
	return &SaveBudgetPlanUseCase{
		budgetRepo: budgetRepo,
		splitCache: splitCache,
	}
}

// Execute saves the plan. Existing categories are replaced by the submitted ones.
func (uc *SaveBudgetPlanUseCase) Execute(ctx context.Context, input SaveBudgetPlanInput) (*BudgetPlanOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	split, err := resolveSplit(input)
	if err != nil {
		return nil, err
	}

	target := valueobject.RoundCurrency(valueobject.NormalizeAmount(input.TargetOffering))

	existing, err := uc.budgetRepo.FindByYear(ctx, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget plan: %w", err)
	}

	plan := entity.NewBudgetPlan(input.Year, target)
	if existing != nil {
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
		plan.CreatedBy = existing.CreatedBy
	} else {
		plan.CreatedBy = input.SavedBy
	}
	plan.Split = split
	plan.Notes = strings.TrimSpace(input.Notes)
	plan.UpdatedAt = time.Now().UTC()

	categories, err := buildCategories(plan.ID, target, input.Categories)
	if err != nil {
		return nil, err
	}
	plan.Categories = categories

	if !split.IsBalanced() {
		slog.Warn("Budget plan split does not sum to 100",
			"year", plan.Year,
			"split_total", split.Total().String(),
		)
	}

	if err := uc.budgetRepo.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save budget plan: %w", err)
	}

	invalidateSplit(ctx, uc.splitCache, plan.Year)

	slog.Info("Budget plan saved",
		"year", plan.Year,
		"categories", len(plan.Categories),
		"saved_by", input.SavedBy,
	)

	return newBudgetPlanOutput(plan), nil
}

func resolveSplit(input SaveBudgetPlanInput) (valueobject.FundSplit, error) {
	split := valueobject.DefaultFundSplit()
	if input.SharedFundPercent != nil {
		split.SharedFund = *input.SharedFundPercent
	}
	if input.PastoralTeamPercent != nil {
		split.PastoralTeam = *input.PastoralTeamPercent
	}
	if input.OperationalPercent != nil {
		split.Operational = *input.OperationalPercent
	}
	return valueobject.NewFundSplit(split.SharedFund, split.PastoralTeam, split.Operational)
}

// buildCategories derives the budget amount of percentage lines that carry none.
func buildCategories(planID uuid.UUID, target decimal.Decimal, inputs []BudgetCategoryInput) ([]entity.BudgetCategory, error) {
	categories := make([]entity.BudgetCategory, 0, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Category)
		if name == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				fmt.Sprintf("category %d has no name", i+1),
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		if in.Percentage != nil && in.Percentage.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidPercentage,
				fmt.Sprintf("percentage of %q must not be negative", name),
				domainerror.ErrInvalidPercentage,
			)
		}

		amount := valueobject.RoundCurrency(valueobject.NormalizeAmount(in.BudgetAmount))
		if in.Percentage != nil && amount.IsZero() {
			amount = valueobject.PercentOf(target, *in.Percentage)
		}

		categories = append(categories, entity.BudgetCategory{
			ID:           uuid.New(),
			PlanID:       planID,
			Category:     name,
			Subcategory:  strings.TrimSpace(in.Subcategory),
			Percentage:   in.Percentage,
			BudgetAmount: amount,
			Description:  strings.TrimSpace(in.Description),
			SortOrder:    i,
		})
	}
	return categories, nil
}

func invalidateSplit(ctx context.Context, cache adapter.SplitCache, year int) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, year); err != nil {
		slog.Warn("Fund split cache invalidation failed", "year", year, "error", err)
	}
}
