// Package ledger contains the record pipeline shared by collections and expenses:
// amount normalization, total reconciliation, fund allocation and validation.
package ledger

import (
	"strings"
	"time"

	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// DateLayout is the canonical record date format.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order when parsing submitted dates.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseRecordDate parses a submitted calendar date and returns it at UTC midnight.
func ParseRecordDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// CollectionAmountsDraft holds loosely typed collection sub-amounts as submitted.
type CollectionAmountsDraft struct {
	GeneralTithesOffering any
	BankInterest          any
	Sisterhood            any
	Brotherhood           any
	Youth                 any
	Couples               any
	SundaySchool          any
	SpecialPurposePledge  any
}

// Normalize coerces every sub-amount into a non-negative decimal.
func (d CollectionAmountsDraft) Normalize() entity.CollectionAmounts {
	return entity.CollectionAmounts{
		GeneralTithesOffering: valueobject.NormalizeAmount(d.GeneralTithesOffering),
		BankInterest:          valueobject.NormalizeAmount(d.BankInterest),
		Sisterhood:            valueobject.NormalizeAmount(d.Sisterhood),
		Brotherhood:           valueobject.NormalizeAmount(d.Brotherhood),
		Youth:                 valueobject.NormalizeAmount(d.Youth),
		Couples:               valueobject.NormalizeAmount(d.Couples),
		SundaySchool:          valueobject.NormalizeAmount(d.SundaySchool),
		SpecialPurposePledge:  valueobject.NormalizeAmount(d.SpecialPurposePledge),
	}
}

// CollectionDraft is a collection submission before the pipeline has run.
type CollectionDraft struct {
	Date          string
	Particular    string
	ControlNumber string
	PaymentMethod string
	TotalAmount   any
	Amounts       CollectionAmountsDraft
}

// ExpenseAmountsDraft holds loosely typed expense sub-amounts as submitted.
type ExpenseAmountsDraft struct {
	WorkersSupport         any
	AssistancePrograms     any
	Honorarium             any
	Events                 any
	Supplies               any
	Utilities              any
	Maintenance            any
	Transportation         any
	InterOrganizationShare any
	Miscellaneous          any
}

// Normalize coerces every sub-amount into a non-negative decimal.
func (d ExpenseAmountsDraft) Normalize() entity.ExpenseAmounts {
	return entity.ExpenseAmounts{
		WorkersSupport:         valueobject.NormalizeAmount(d.WorkersSupport),
		AssistancePrograms:     valueobject.NormalizeAmount(d.AssistancePrograms),
		Honorarium:             valueobject.NormalizeAmount(d.Honorarium),
		Events:                 valueobject.NormalizeAmount(d.Events),
		Supplies:               valueobject.NormalizeAmount(d.Supplies),
		Utilities:              valueobject.NormalizeAmount(d.Utilities),
		Maintenance:            valueobject.NormalizeAmount(d.Maintenance),
		Transportation:         valueobject.NormalizeAmount(d.Transportation),
		InterOrganizationShare: valueobject.NormalizeAmount(d.InterOrganizationShare),
		Miscellaneous:          valueobject.NormalizeAmount(d.Miscellaneous),
	}
}

// ExpenseDraft is an expense submission before the pipeline has run.
type ExpenseDraft struct {
	Date                 string
	Particular           string
	FormsNumber          string
	ChequeNumber         string
	Category             string
	Subcategory          string
	FundSource           string
	TotalAmount          any
	BudgetAmount         any
	PercentageAllocation any
	Amounts              ExpenseAmountsDraft
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
