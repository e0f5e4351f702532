package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date                   time.Time       `gorm:"type:date;not null;index"`
	Particular             string          `gorm:"type:varchar(255);not null"`
	FormsNumber            string          `gorm:"type:varchar(100)"`
	ChequeNumber           string          `gorm:"type:varchar(100)"`
	Category               string          `gorm:"type:varchar(100);not null;index"`
	Subcategory            string          `gorm:"type:varchar(100)"`
	TotalAmount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BudgetAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PercentageAllocation   decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	FundSource             string          `gorm:"type:varchar(20);not null;default:'operational'"`
	WorkersSupport         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	AssistancePrograms     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Honorarium             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Events                 decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Supplies               decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Utilities              decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Maintenance            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Transportation         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InterOrganizationShare decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Miscellaneous          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedBy              string          `gorm:"type:varchar(255)"`
	SubmittedVia           string          `gorm:"type:varchar(20);not null;default:'web'"`
	SourcePayload          datatypes.JSON
	CreatedAt              time.Time `gorm:"not null"`
	UpdatedAt              time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                   m.ID,
		Date:                 m.Date.UTC(),
		Particular:           m.Particular,
		FormsNumber:          m.FormsNumber,
		ChequeNumber:         m.ChequeNumber,
		Category:             m.Category,
		Subcategory:          m.Subcategory,
		TotalAmount:          m.TotalAmount,
		BudgetAmount:         m.BudgetAmount,
		PercentageAllocation: m.PercentageAllocation,
		FundSource:           entity.FundSource(m.FundSource),
		Amounts: entity.ExpenseAmounts{
			WorkersSupport:         m.WorkersSupport,
			AssistancePrograms:     m.AssistancePrograms,
			Honorarium:             m.Honorarium,
			Events:                 m.Events,
			Supplies:               m.Supplies,
			Utilities:              m.Utilities,
			Maintenance:            m.Maintenance,
			Transportation:         m.Transportation,
			InterOrganizationShare: m.InterOrganizationShare,
			Miscellaneous:          m.Miscellaneous,
		},
		CreatedBy:     m.CreatedBy,
		SubmittedVia:  entity.SubmissionChannel(m.SubmittedVia),
		SourcePayload: decodePayload(m.SourcePayload),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                     e.ID,
		Date:                   e.Date,
		Particular:             e.Particular,
		FormsNumber:            e.FormsNumber,
		ChequeNumber:           e.ChequeNumber,
		Category:               e.Category,
		Subcategory:            e.Subcategory,
		TotalAmount:            e.TotalAmount,
		BudgetAmount:           e.BudgetAmount,
		PercentageAllocation:   e.PercentageAllocation,
		FundSource:             string(e.FundSource),
		WorkersSupport:         e.Amounts.WorkersSupport,
		AssistancePrograms:     e.Amounts.AssistancePrograms,
		Honorarium:             e.Amounts.Honorarium,
		Events:                 e.Amounts.Events,
		Supplies:               e.Amounts.Supplies,
		Utilities:              e.Amounts.Utilities,
		Maintenance:            e.Amounts.Maintenance,
		Transportation:         e.Amounts.Transportation,
		InterOrganizationShare: e.Amounts.InterOrganizationShare,
		Miscellaneous:          e.Amounts.Miscellaneous,
		CreatedBy:              e.CreatedBy,
		SubmittedVia:           string(e.SubmittedVia),
		SourcePayload:          encodePayload(e.SourcePayload),
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}
