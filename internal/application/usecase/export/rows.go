// Package export contains use cases that copy ledger records into spreadsheets.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// Tab names of the exported tables.
const (
	CollectionsTab = "Collections"
	ExpensesTab    = "Expenses"
)

// Kinds that can be exported.
const (
	KindCollections = "collections"
	KindExpenses    = "expenses"
	KindAll         = "all"
)

var collectionHeaders = []string{
	"Date", "Particular", "Control Number", "Payment Method", "Total Amount",
	"General Tithes Offering", "Bank Interest", "Sisterhood", "Brotherhood",
	"Youth", "Couples", "Sunday School", "Special Purpose Pledge",
	"Shared Fund Share", "Pastoral Team Share", "Operational Fund Share",
	"Created By", "Submitted Via",
}

var expenseHeaders = []string{
	"Date", "Particular", "Forms Number", "Cheque Number", "Category", "Subcategory",
	"Fund Source", "Total Amount", "Budget Amount", "Percentage Allocation",
	"Workers Support", "Assistance Programs", "Honorarium", "Events", "Supplies",
	"Utilities", "Maintenance", "Transportation", "Inter Organization Share", "Miscellaneous",
	"Created By", "Submitted Via",
}

// CollectionTable formats collections as a table, one row per record.
func CollectionTable(collections []*entity.Collection) adapter.ExportTable {
	rows := make([][]string, 0, len(collections))
	for _, c := range collections {
		row := []string{
			c.Date.Format(ledger.DateLayout),
			c.Particular,
			c.ControlNumber,
			string(c.PaymentMethod),
			money(c.TotalAmount),
		}
		for _, a := range c.Amounts.List() {
			row = append(row, money(a))
		}
		row = append(row,
			money(c.Allocation.SharedFundShare),
			money(c.Allocation.PastoralTeamShare),
			money(c.Allocation.OperationalFundShare),
			c.CreatedBy,
			string(c.SubmittedVia),
		)
		rows = append(rows, row)
	}
	return adapter.ExportTable{Name: CollectionsTab, Headers: collectionHeaders, Rows: rows}
}

// ExpenseTable formats expenses as a table, one row per record.
func ExpenseTable(expenses []*entity.Expense) adapter.ExportTable {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		row := []string{
			e.Date.Format(ledger.DateLayout),
			e.Particular,
			e.FormsNumber,
			e.ChequeNumber,
			e.Category,
			e.Subcategory,
			string(e.FundSource),
			money(e.TotalAmount),
			money(e.BudgetAmount),
			e.PercentageAllocation.String(),
		}
		for _, a := range e.Amounts.List() {
			row = append(row, money(a))
		}
		row = append(row, e.CreatedBy, string(e.SubmittedVia))
		rows = append(rows, row)
	}
	return adapter.ExportTable{Name: ExpensesTab, Headers: expenseHeaders, Rows: rows}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func parseKind(kind string, allowAll bool) (string, error) {
	k := strings.ToLower(strings.TrimSpace(kind))
	switch k {
	case "collection":
		k = KindCollections
	case "expense":
		k = KindExpenses
	case "":
		if allowAll {
			k = KindAll
		}
	}
	if k == KindCollections || k == KindExpenses || (allowAll && k == KindAll) {
		return k, nil
	}
	return "", domainerror.NewLedgerError(
		domainerror.ErrCodeMalformedRequest,
		"kind must be collections or expenses",
		nil,
	)
}

func checkRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriod,
			"end_date must not be before start_date",
			domainerror.ErrInvalidPeriod,
		)
	}
	return nil
}
