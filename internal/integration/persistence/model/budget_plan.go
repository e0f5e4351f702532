package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// BudgetPlanModel represents the budget_plans table in the database.
type BudgetPlanModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Year                int             `gorm:"uniqueIndex;not null"`
	TargetOffering      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SharedFundPercent   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	PastoralTeamPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	OperationalPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:80"`
	Notes               string          `gorm:"type:text"`
	CreatedBy           string          `gorm:"type:varchar(255)"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	Categories []BudgetCategoryModel `gorm:"foreignKey:PlanID;references:ID"`
}

// TableName returns the table name for the BudgetPlanModel.
func (BudgetPlanModel) TableName() string {
	return "budget_plans"
}

// BudgetCategoryModel represents the budget_categories table in the database.
type BudgetCategoryModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PlanID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	Category     string           `gorm:"type:varchar(100);not null"`
	Subcategory  string           `gorm:"type:varchar(100)"`
	Percentage   *decimal.Decimal `gorm:"type:decimal(7,2)"`
	BudgetAmount decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	Description  string           `gorm:"type:text"`
	SortOrder    int              `gorm:"not null;default:0"`
}

// TableName returns the table name for the BudgetCategoryModel.
func (BudgetCategoryModel) TableName() string {
	return "budget_categories"
}

// ToEntity converts a BudgetPlanModel and any loaded categories to a domain BudgetPlan.
func (m *BudgetPlanModel) ToEntity() *entity.BudgetPlan {
	plan := &entity.BudgetPlan{
		ID:             m.ID,
		Year:           m.Year,
		TargetOffering: m.TargetOffering,
		Split: valueobject.FundSplit{
			SharedFund:   m.SharedFundPercent,
			PastoralTeam: m.PastoralTeamPercent,
			Operational:  m.OperationalPercent,
		},
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, c := range m.Categories {
		plan.Categories = append(plan.Categories, entity.BudgetCategory{
			ID:           c.ID,
			PlanID:       c.PlanID,
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			Percentage:   c.Percentage,
			BudgetAmount: c.BudgetAmount,
			Description:  c.Description,
			SortOrder:    c.SortOrder,
		})
	}
	return plan
}

// BudgetPlanFromEntity creates a BudgetPlanModel from a domain BudgetPlan.
// Categories are returned separately so they can be replaced explicitly.
func BudgetPlanFromEntity(plan *entity.BudgetPlan) (*BudgetPlanModel, []BudgetCategoryModel) {
	m := &BudgetPlanModel{
		ID:                  plan.ID,
		Year:                plan.Year,
		TargetOffering:      plan.TargetOffering,
		SharedFundPercent:   plan.Split.SharedFund,
		PastoralTeamPercent: plan.Split.PastoralTeam,
		OperationalPercent:  plan.Split.Operational,
		Notes:               plan.Notes,
		CreatedBy:           plan.CreatedBy,
		CreatedAt:           plan.CreatedAt,
		UpdatedAt:           plan.UpdatedAt,
	}

	categories := make([]BudgetCategoryModel, 0, len(plan.Categories))
	for _, c := range plan.Categories {
		categories = append(categories, BudgetCategoryModel{
			ID:           c.ID,
			PlanID:       plan.ID,
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			Percentage:   c.Percentage,
			BudgetAmount: c.BudgetAmount,
			Description:  c.Description,
			SortOrder:    c.SortOrder,
		})
	}
	return m, categories
}
