// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultExpenseParticular replaces a missing expense description.
const DefaultExpenseParticular = "Expense"

// FundSource is the fund an expense is paid from.
type FundSource string

const (
	FundSourceOperational  FundSource = "operational"
	FundSourcePastoralTeam FundSource = "pastoral_team"
	FundSourceSharedFund   FundSource = "shared_fund"
)

// IsValid reports whether the fund source is one of the known funds.
func (f FundSource) IsValid() bool {
	switch f {
	case FundSourceOperational, FundSourcePastoralTeam, FundSourceSharedFund:
		return true
	}
	return false
}

// Expense categories known to the ledger. Category is free text; these are
// the values offered by forms and the category suggester.
const (
	ExpenseCategoryOperationalFund = "Operational Fund"
	ExpenseCategoryPastoralTeam    = "Pastoral Team"
	ExpenseCategorySharedFund      = "Shared Fund"
	ExpenseCategoryMinistries      = "Ministries"
	ExpenseCategoryMissions        = "Missions"
	ExpenseCategoryBuilding        = "Building and Maintenance"
	ExpenseCategoryBenevolence     = "Benevolence"
)

// ExpenseCategories lists the known categories in display order.
var ExpenseCategories = []string{
	ExpenseCategoryOperationalFund,
	ExpenseCategoryPastoralTeam,
	ExpenseCategorySharedFund,
	ExpenseCategoryMinistries,
	ExpenseCategoryMissions,
	ExpenseCategoryBuilding,
	ExpenseCategoryBenevolence,
}

// IsKnownExpenseCategory reports whether c is one of ExpenseCategories.
func IsKnownExpenseCategory(c string) bool {
	for _, known := range ExpenseCategories {
		if known == c {
			return true
		}
	}
	return false
}

// ExpenseAmounts holds the category sub-amounts of an expense.
type ExpenseAmounts struct {
	WorkersSupport         decimal.Decimal
	AssistancePrograms     decimal.Decimal
	Honorarium             decimal.Decimal
	Events                 decimal.Decimal
	Supplies               decimal.Decimal
	Utilities              decimal.Decimal
	Maintenance            decimal.Decimal
	Transportation         decimal.Decimal
	InterOrganizationShare decimal.Decimal
	Miscellaneous          decimal.Decimal
}

// List returns every sub-amount in a fixed order.
func (a ExpenseAmounts) List() []decimal.Decimal {
	return []decimal.Decimal{
		a.WorkersSupport,
		a.AssistancePrograms,
		a.Honorarium,
		a.Events,
		a.Supplies,
		a.Utilities,
		a.Maintenance,
		a.Transportation,
		a.InterOrganizationShare,
		a.Miscellaneous,
	}
}

// Expense is an outgoing disbursement record.
type Expense struct {
	ID                   uuid.UUID
	Date                 time.Time
	Particular           string
	FormsNumber          string
	ChequeNumber         string
	Category             string
	Subcategory          string
	TotalAmount          decimal.Decimal
	BudgetAmount         decimal.Decimal
	PercentageAllocation decimal.Decimal
	FundSource           FundSource
	Amounts              ExpenseAmounts
	CreatedBy            string
	SubmittedVia         SubmissionChannel
	SourcePayload        map[string]string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewExpense creates a new Expense with a fresh ID and timestamps.
func NewExpense(date time.Time, category string, createdBy string, via SubmissionChannel) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:           uuid.New(),
		Date:         date,
		Category:     category,
		FundSource:   FundSourceOperational,
		CreatedBy:    createdBy,
		SubmittedVia: via,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Page      int
	Limit     int
}

// ExpenseListResult is a page of expenses plus the total spent over the whole filter.
type ExpenseListResult struct {
	Expenses    []*Expense
	TotalAmount decimal.Decimal
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
}
