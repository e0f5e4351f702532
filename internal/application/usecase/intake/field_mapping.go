// Package intake maps relayed form submissions onto ledger records.
package intake

import (
	"strings"
	"unicode"

	"github.com/church-ledger/backend/internal/application/usecase/ledger"
)

// FieldType is the expected type of a relayed answer.
type FieldType string

const (
	FieldTypeDate   FieldType = "date"
	FieldTypeText   FieldType = "text"
	FieldTypeAmount FieldType = "amount"
)

// FieldMapping binds a form question to a record field.
type FieldMapping struct {
	Source string
	Target string
	Type   FieldType
	apply  func(value string, c *ledger.CollectionDraft, e *ledger.ExpenseDraft)
}

// CollectionFields lists the form questions understood for collections.
var CollectionFields = []FieldMapping{
	{Source: "Date", Target: "date", Type: FieldTypeDate, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Date = v }},
	{Source: "Particular", Target: "particular", Type: FieldTypeText, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Particular = v }},
	{Source: "Control Number", Target: "control_number", Type: FieldTypeText, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.ControlNumber = v }},
	{Source: "Payment Method", Target: "payment_method", Type: FieldTypeText, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.PaymentMethod = v }},
	{Source: "Total Amount", Target: "total_amount", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.TotalAmount = v }},
	{Source: "General Tithes Offering", Target: "general_tithes_offering", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.GeneralTithesOffering = v }},
	{Source: "Bank Interest", Target: "bank_interest", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.BankInterest = v }},
	{Source: "Sisterhood", Target: "sisterhood", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.Sisterhood = v }},
	{Source: "Brotherhood", Target: "brotherhood", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.Brotherhood = v }},
	{Source: "Youth", Target: "youth", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.Youth = v }},
	{Source: "Couples", Target: "couples", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.Couples = v }},
	{Source: "Sunday School", Target: "sunday_school", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.SundaySchool = v }},
	{Source: "Special Purpose Pledge", Target: "special_purpose_pledge", Type: FieldTypeAmount, apply: func(v string, c *ledger.CollectionDraft, _ *ledger.ExpenseDraft) { c.Amounts.SpecialPurposePledge = v }},
}

// ExpenseFields lists the form questions understood for expenses.
var ExpenseFields = []FieldMapping{
	{Source: "Date", Target: "date", Type: FieldTypeDate, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Date = v }},
	{Source: "Particular", Target: "particular", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Particular = v }},
	{Source: "Forms Number", Target: "forms_number", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.FormsNumber = v }},
	{Source: "Cheque Number", Target: "cheque_number", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.ChequeNumber = v }},
	{Source: "Category", Target: "category", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Category = v }},
	{Source: "Subcategory", Target: "subcategory", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Subcategory = v }},
	{Source: "Fund Source", Target: "fund_source", Type: FieldTypeText, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.FundSource = v }},
	{Source: "Total Amount", Target: "total_amount", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.TotalAmount = v }},
	{Source: "Budget Amount", Target: "budget_amount", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.BudgetAmount = v }},
	{Source: "Percentage Allocation", Target: "percentage_allocation", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.PercentageAllocation = v }},
	{Source: "Workers Support", Target: "workers_support", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.WorkersSupport = v }},
	{Source: "Assistance Programs", Target: "assistance_programs", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.AssistancePrograms = v }},
	{Source: "Honorarium", Target: "honorarium", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Honorarium = v }},
	{Source: "Events", Target: "events", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Events = v }},
	{Source: "Supplies", Target: "supplies", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Supplies = v }},
	{Source: "Utilities", Target: "utilities", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Utilities = v }},
	{Source: "Maintenance", Target: "maintenance", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Maintenance = v }},
	{Source: "Transportation", Target: "transportation", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Transportation = v }},
	{Source: "Inter Organization Share", Target: "inter_organization_share", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.InterOrganizationShare = v }},
	{Source: "Miscellaneous", Target: "miscellaneous", Type: FieldTypeAmount, apply: func(v string, _ *ledger.CollectionDraft, e *ledger.ExpenseDraft) { e.Amounts.Miscellaneous = v }},
}

// MappingTable indexes mappings by normalized question key.
type MappingTable map[string]FieldMapping

// NewMappingTable indexes the mappings by both their question and target names.
func NewMappingTable(mappings []FieldMapping) MappingTable {
	table := make(MappingTable, len(mappings)*2)
	for _, m := range mappings {
		table[NormalizeKey(m.Source)] = m
		table[NormalizeKey(m.Target)] = m
	}
	return table
}

// Lookup finds the mapping of a question key.
func (t MappingTable) Lookup(key string) (FieldMapping, bool) {
	m, ok := t[NormalizeKey(key)]
	return m, ok
}

// NormalizeKey lowercases a question and joins its words with underscores,
// so "General Tithes & Offering" and "general_tithes_offering" match.
func NormalizeKey(key string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.TrimSpace(key) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}
