package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/persistence/model"
)

// budgetPlanRepository implements the adapter.BudgetPlanRepository interface.
type budgetPlanRepository struct {
	db *gorm.DB
}

// NewBudgetPlanRepository creates a new budget plan repository instance.
func NewBudgetPlanRepository(db *gorm.DB) adapter.BudgetPlanRepository {
	return &budgetPlanRepository{
		db: db,
	}
}

// FindByYear retrieves the plan of a year with its categories, or nil when none exists.
func (r *budgetPlanRepository) FindByYear(ctx context.Context, year int) (*entity.BudgetPlan, error) {
	var planModel model.BudgetPlanModel
	result := r.db.WithContext(ctx).
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("year = ?", year).
		First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// Save creates or updates the plan of plan.Year and replaces its categories.
func (r *budgetPlanRepository) Save(ctx context.Context, plan *entity.BudgetPlan) error {
	planModel, categories := model.BudgetPlanFromEntity(plan)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(planModel).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", planModel.ID).Delete(&model.BudgetCategoryModel{}).Error; err != nil {
			return err
		}
		if len(categories) == 0 {
			return nil
		}
		return tx.Create(&categories).Error
	})
}

// List returns every plan without categories, newest year first.
func (r *budgetPlanRepository) List(ctx context.Context) ([]*entity.BudgetPlan, error) {
	var planModels []model.BudgetPlanModel
	if err := r.db.WithContext(ctx).Order("year DESC").Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]*entity.BudgetPlan, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToEntity()
	}
	return plans, nil
}

// DeleteByYear removes a plan and its categories.
func (r *budgetPlanRepository) DeleteByYear(ctx context.Context, year int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var planModel model.BudgetPlanModel
		if err := tx.Where("year = ?", year).First(&planModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrBudgetPlanNotFound
			}
			return err
		}
		if err := tx.Where("plan_id = ?", planModel.ID).Delete(&model.BudgetCategoryModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&planModel).Error
	})
}
