// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// BudgetPlan is the spending plan of one year. At most one plan exists per year.
type BudgetPlan struct {
	ID             uuid.UUID
	Year           int
	TargetOffering decimal.Decimal
	Split          valueobject.FundSplit
	Notes          string
	Categories     []BudgetCategory
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BudgetCategory is one line of a budget plan. A nil Percentage marks a
// fixed-amount line.
type BudgetCategory struct {
	ID           uuid.UUID
	PlanID       uuid.UUID
	Category     string
	Subcategory  string
	Percentage   *decimal.Decimal
	BudgetAmount decimal.Decimal
	Description  string
	SortOrder    int
}

// NewBudgetPlan creates a plan for a year with the default split.
func NewBudgetPlan(year int, targetOffering decimal.Decimal) *BudgetPlan {
	now := time.Now().UTC()
	return &BudgetPlan{
		ID:             uuid.New(),
		Year:           year,
		TargetOffering: targetOffering,
		Split:          valueobject.DefaultFundSplit(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Lines returns the plan's categories as comparison input.
func (p *BudgetPlan) Lines() []valueobject.BudgetLine {
	lines := make([]valueobject.BudgetLine, 0, len(p.Categories))
	for _, c := range p.Categories {
		lines = append(lines, valueobject.BudgetLine{
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			Percentage:   c.Percentage,
			BudgetAmount: c.BudgetAmount,
		})
	}
	return lines
}

// CategoriesPercentageTotal sums the percentages of percentage-based lines.
func (p *BudgetPlan) CategoriesPercentageTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Categories {
		if c.Percentage != nil {
			total = total.Add(*c.Percentage)
		}
	}
	return total
}

// TotalBudget sums every line's budget amount.
func (p *BudgetPlan) TotalBudget() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Categories {
		total = total.Add(c.BudgetAmount)
	}
	return total
}
