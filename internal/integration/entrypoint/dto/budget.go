package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/usecase/budget"
	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// BudgetCategoryRequest is one line of a budget plan.
type BudgetCategoryRequest struct {
	Category     string           `json:"category" binding:"required,max=100"`
	Subcategory  string           `json:"subcategory" binding:"omitempty,max=100"`
	Percentage   *decimal.Decimal `json:"percentage"`
	BudgetAmount any              `json:"budget_amount"`
	Description  string           `json:"description" binding:"omitempty,max=500"`
}

// SaveBudgetPlanRequest is the body of PUT /budgets/:year.
type SaveBudgetPlanRequest struct {
	TargetOffering      any                     `json:"target_offering"`
	SharedFundPercent   *decimal.Decimal        `json:"shared_fund_percent"`
	PastoralTeamPercent *decimal.Decimal        `json:"pastoral_team_percent"`
	OperationalPercent  *decimal.Decimal        `json:"operational_percent"`
	Notes               string                  `json:"notes" binding:"omitempty,max=2000"`
	Categories          []BudgetCategoryRequest `json:"categories" binding:"dive"`
}

// ToInput converts the request into use case input.
func (r SaveBudgetPlanRequest) ToInput(year int, savedBy string) budget.SaveBudgetPlanInput {
	categories := make([]budget.BudgetCategoryInput, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = budget.BudgetCategoryInput{
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			Percentage:   c.Percentage,
			BudgetAmount: c.BudgetAmount,
			Description:  c.Description,
		}
	}
	return budget.SaveBudgetPlanInput{
		Year:                year,
		TargetOffering:      r.TargetOffering,
		SharedFundPercent:   r.SharedFundPercent,
		PastoralTeamPercent: r.PastoralTeamPercent,
		OperationalPercent:  r.OperationalPercent,
		Notes:               r.Notes,
		Categories:          categories,
		SavedBy:             savedBy,
	}
}

// FundSplitResponse is the percentage split of general tithes across the funds.
type FundSplitResponse struct {
	SharedFund   string `json:"shared_fund"`
	PastoralTeam string `json:"pastoral_team"`
	Operational  string `json:"operational"`
}

// BudgetCategoryResponse is one line of a budget plan.
type BudgetCategoryResponse struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory,omitempty"`
	Percentage   *string `json:"percentage,omitempty"`
	BudgetAmount string  `json:"budget_amount"`
	Description  string  `json:"description,omitempty"`
	SortOrder    int     `json:"sort_order"`
}

// BudgetPlanResponse represents a budget plan in API responses.
type BudgetPlanResponse struct {
	ID                        string                   `json:"id"`
	Year                      int                      `json:"year"`
	TargetOffering            string                   `json:"target_offering"`
	Split                     FundSplitResponse        `json:"split"`
	SplitBalanced             bool                     `json:"split_balanced"`
	Notes                     string                   `json:"notes,omitempty"`
	Categories                []BudgetCategoryResponse `json:"categories"`
	CategoriesPercentageTotal string                   `json:"categories_percentage_total"`
	TotalBudget               string                   `json:"total_budget"`
	CreatedBy                 string                   `json:"created_by,omitempty"`
	CreatedAt                 time.Time                `json:"created_at"`
	UpdatedAt                 time.Time                `json:"updated_at"`
}

// BudgetPlanSummaryResponse is a plan without its lines, used in listings.
type BudgetPlanSummaryResponse struct {
	ID             string            `json:"id"`
	Year           int               `json:"year"`
	TargetOffering string            `json:"target_offering"`
	Split          FundSplitResponse `json:"split"`
	CategoryCount  int               `json:"category_count"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// BudgetComparisonLineResponse is the budget and actual spending of one category.
type BudgetComparisonLineResponse struct {
	Category     string  `json:"category"`
	Subcategory  string  `json:"subcategory,omitempty"`
	Percentage   *string `json:"percentage,omitempty"`
	BudgetAmount string  `json:"budget_amount"`
	ActualAmount string  `json:"actual_amount"`
	Variance     string  `json:"variance"`
	OverBudget   bool    `json:"over_budget"`
	Unbudgeted   bool    `json:"unbudgeted"`
}

// BudgetComparisonResponse is the actual-vs-budget report of a period.
type BudgetComparisonResponse struct {
	Year         int                            `json:"year"`
	Month        int                            `json:"month,omitempty"`
	Period       string                         `json:"period"`
	Lines        []BudgetComparisonLineResponse `json:"lines"`
	BudgetAmount string                         `json:"budget_amount"`
	ActualAmount string                         `json:"actual_amount"`
	Variance     string                         `json:"variance"`
}

func toFundSplitResponse(split valueobject.FundSplit) FundSplitResponse {
	return FundSplitResponse{
		SharedFund:   split.SharedFund.StringFixed(2),
		PastoralTeam: split.PastoralTeam.StringFixed(2),
		Operational:  split.Operational.StringFixed(2),
	}
}

func optionalPercent(p *decimal.Decimal) *string {
	if p == nil {
		return nil
	}
	s := p.StringFixed(2)
	return &s
}

// ToBudgetPlanResponse converts a plan output to its response DTO.
func ToBudgetPlanResponse(output *budget.BudgetPlanOutput) BudgetPlanResponse {
	plan := output.Plan
	categories := make([]BudgetCategoryResponse, len(plan.Categories))
	for i, c := range plan.Categories {
		categories[i] = BudgetCategoryResponse{
			ID:           c.ID.String(),
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			Percentage:   optionalPercent(c.Percentage),
			BudgetAmount: c.BudgetAmount.StringFixed(2),
			Description:  c.Description,
			SortOrder:    c.SortOrder,
		}
	}

	return BudgetPlanResponse{
		ID:                        plan.ID.String(),
		Year:                      plan.Year,
		TargetOffering:            plan.TargetOffering.StringFixed(2),
		Split:                     toFundSplitResponse(plan.Split),
		SplitBalanced:             output.SplitBalanced,
		Notes:                     plan.Notes,
		Categories:                categories,
		CategoriesPercentageTotal: output.CategoriesPercentageTotal.StringFixed(2),
		TotalBudget:               output.TotalBudget.StringFixed(2),
		CreatedBy:                 plan.CreatedBy,
		CreatedAt:                 plan.CreatedAt,
		UpdatedAt:                 plan.UpdatedAt,
	}
}

// ToBudgetPlanSummaries converts plans to listing DTOs.
func ToBudgetPlanSummaries(plans []*entity.BudgetPlan) []BudgetPlanSummaryResponse {
	summaries := make([]BudgetPlanSummaryResponse, len(plans))
	for i, plan := range plans {
		summaries[i] = BudgetPlanSummaryResponse{
			ID:             plan.ID.String(),
			Year:           plan.Year,
			TargetOffering: plan.TargetOffering.StringFixed(2),
			Split:          toFundSplitResponse(plan.Split),
			CategoryCount:  len(plan.Categories),
			UpdatedAt:      plan.UpdatedAt,
		}
	}
	return summaries
}

// ToBudgetComparisonResponse converts a comparison output to its response DTO.
func ToBudgetComparisonResponse(output *budget.CompareBudgetOutput) BudgetComparisonResponse {
	lines := make([]BudgetComparisonLineResponse, len(output.Lines))
	for i, l := range output.Lines {
		lines[i] = BudgetComparisonLineResponse{
			Category:     l.Category,
			Subcategory:  l.Subcategory,
			Percentage:   optionalPercent(l.Percentage),
			BudgetAmount: l.BudgetAmount.StringFixed(2),
			ActualAmount: l.ActualAmount.StringFixed(2),
			Variance:     l.Variance.StringFixed(2),
			OverBudget:   l.IsOverBudget(),
			Unbudgeted:   l.Unbudgeted,
		}
	}

	return BudgetComparisonResponse{
		Year:         output.Period.Year,
		Month:        output.Period.Month,
		Period:       output.Period.String(),
		Lines:        lines,
		BudgetAmount: output.Totals.BudgetAmount.StringFixed(2),
		ActualAmount: output.Totals.ActualAmount.StringFixed(2),
		Variance:     output.Totals.Variance.StringFixed(2),
	}
}
