package dto

import (
	"time"

	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// ExpenseRequest is the body of expense create and update requests.
type ExpenseRequest struct {
	Date                   string `json:"date"`
	Particular             string `json:"particular" binding:"omitempty,max=500"`
	FormsNumber            string `json:"forms_number" binding:"omitempty,max=50"`
	ChequeNumber           string `json:"cheque_number" binding:"omitempty,max=50"`
	Category               string `json:"category" binding:"omitempty,max=100"`
	Subcategory            string `json:"subcategory" binding:"omitempty,max=100"`
	FundSource             string `json:"fund_source"`
	TotalAmount            any    `json:"total_amount"`
	BudgetAmount           any    `json:"budget_amount"`
	PercentageAllocation   any    `json:"percentage_allocation"`
	WorkersSupport         any    `json:"workers_support"`
	AssistancePrograms     any    `json:"assistance_programs"`
	Honorarium             any    `json:"honorarium"`
	Events                 any    `json:"events"`
	Supplies               any    `json:"supplies"`
	Utilities              any    `json:"utilities"`
	Maintenance            any    `json:"maintenance"`
	Transportation         any    `json:"transportation"`
	InterOrganizationShare any    `json:"inter_organization_share"`
	Miscellaneous          any    `json:"miscellaneous"`
}

// ToDraft converts the request into a pipeline draft.
func (r ExpenseRequest) ToDraft() ledger.ExpenseDraft {
	return ledger.ExpenseDraft{
		Date:                 r.Date,
		Particular:           r.Particular,
		FormsNumber:          r.FormsNumber,
		ChequeNumber:         r.ChequeNumber,
		Category:             r.Category,
		Subcategory:          r.Subcategory,
		FundSource:           r.FundSource,
		TotalAmount:          r.TotalAmount,
		BudgetAmount:         r.BudgetAmount,
		PercentageAllocation: r.PercentageAllocation,
		Amounts: ledger.ExpenseAmountsDraft{
			WorkersSupport:         r.WorkersSupport,
			AssistancePrograms:     r.AssistancePrograms,
			Honorarium:             r.Honorarium,
			Events:                 r.Events,
			Supplies:               r.Supplies,
			Utilities:              r.Utilities,
			Maintenance:            r.Maintenance,
			Transportation:         r.Transportation,
			InterOrganizationShare: r.InterOrganizationShare,
			Miscellaneous:          r.Miscellaneous,
		},
	}
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID                     string    `json:"id"`
	Date                   string    `json:"date"`
	Particular             string    `json:"particular"`
	FormsNumber            string    `json:"forms_number,omitempty"`
	ChequeNumber           string    `json:"cheque_number,omitempty"`
	Category               string    `json:"category"`
	Subcategory            string    `json:"subcategory,omitempty"`
	FundSource             string    `json:"fund_source"`
	TotalAmount            string    `json:"total_amount"`
	BudgetAmount           string    `json:"budget_amount"`
	PercentageAllocation   string    `json:"percentage_allocation"`
	WorkersSupport         string    `json:"workers_support"`
	AssistancePrograms     string    `json:"assistance_programs"`
	Honorarium             string    `json:"honorarium"`
	Events                 string    `json:"events"`
	Supplies               string    `json:"supplies"`
	Utilities              string    `json:"utilities"`
	Maintenance            string    `json:"maintenance"`
	Transportation         string    `json:"transportation"`
	InterOrganizationShare string    `json:"inter_organization_share"`
	Miscellaneous          string    `json:"miscellaneous"`
	CreatedBy              string    `json:"created_by"`
	SubmittedVia           string    `json:"submitted_via"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ExpenseListResponse represents a page of expenses.
type ExpenseListResponse struct {
	Expenses    []ExpenseResponse  `json:"expenses"`
	Pagination  PaginationResponse `json:"pagination"`
	TotalAmount string             `json:"total_amount"`
}

// ExpenseCategorySumResponse is the spending of one category in a period.
type ExpenseCategorySumResponse struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Total       string `json:"total"`
	Count       int    `json:"count"`
}

// ExpenseSummaryResponse is the per-category spending of a period.
type ExpenseSummaryResponse struct {
	Year       int                          `json:"year"`
	Month      int                          `json:"month,omitempty"`
	Period     string                       `json:"period"`
	Categories []ExpenseCategorySumResponse `json:"categories"`
	Total      string                       `json:"total"`
}

// SuggestCategoryRequest is the body of a category suggestion request.
type SuggestCategoryRequest struct {
	Particular string `json:"particular" binding:"required,max=500"`
	Amount     any    `json:"amount"`
}

// SuggestCategoryResponse is a suggested expense category.
type SuggestCategoryResponse struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning,omitempty"`
}

// ToExpenseResponse converts an expense entity to its response DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                     e.ID.String(),
		Date:                   e.Date.Format(ledger.DateLayout),
		Particular:             e.Particular,
		FormsNumber:            e.FormsNumber,
		ChequeNumber:           e.ChequeNumber,
		Category:               e.Category,
		Subcategory:            e.Subcategory,
		FundSource:             string(e.FundSource),
		TotalAmount:            e.TotalAmount.StringFixed(2),
		BudgetAmount:           e.BudgetAmount.StringFixed(2),
		PercentageAllocation:   e.PercentageAllocation.StringFixed(2),
		WorkersSupport:         e.Amounts.WorkersSupport.StringFixed(2),
		AssistancePrograms:     e.Amounts.AssistancePrograms.StringFixed(2),
		Honorarium:             e.Amounts.Honorarium.StringFixed(2),
		Events:                 e.Amounts.Events.StringFixed(2),
		Supplies:               e.Amounts.Supplies.StringFixed(2),
		Utilities:              e.Amounts.Utilities.StringFixed(2),
		Maintenance:            e.Amounts.Maintenance.StringFixed(2),
		Transportation:         e.Amounts.Transportation.StringFixed(2),
		InterOrganizationShare: e.Amounts.InterOrganizationShare.StringFixed(2),
		Miscellaneous:          e.Amounts.Miscellaneous.StringFixed(2),
		CreatedBy:              e.CreatedBy,
		SubmittedVia:           string(e.SubmittedVia),
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a list result to its response DTO.
func ToExpenseListResponse(result *entity.ExpenseListResult) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(result.Expenses))
	for i, e := range result.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		TotalAmount: result.TotalAmount.StringFixed(2),
	}
}

// ToExpenseSummaryResponse converts a period summary to its response DTO.
func ToExpenseSummaryResponse(output *expense.GetSummaryOutput) ExpenseSummaryResponse {
	categories := make([]ExpenseCategorySumResponse, len(output.Categories))
	for i, sum := range output.Categories {
		categories[i] = ExpenseCategorySumResponse{
			Category:    sum.Category,
			Subcategory: sum.Subcategory,
			Total:       sum.Total.StringFixed(2),
			Count:       sum.Count,
		}
	}

	return ExpenseSummaryResponse{
		Year:       output.Period.Year,
		Month:      output.Period.Month,
		Period:     output.Period.String(),
		Categories: categories,
		Total:      output.Total.StringFixed(2),
	}
}
