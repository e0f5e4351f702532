package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
	"github.com/church-ledger/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a new expense.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// Update replaces a stored expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense)).Error
}

// FindByID retrieves an expense by ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// List returns a page of expenses matching the filter, newest first.
func (r *expenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error) {
	query := applyDateRange(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), filter.StartDate, filter.EndDate)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var sum struct {
		Total decimal.Decimal
	}
	if err := query.Session(&gorm.Session{}).Select("COALESCE(SUM(total_amount), 0) as total").Scan(&sum).Error; err != nil {
		return nil, err
	}

	page, limit, offset, totalPages := paginate(filter.Page, filter.Limit, total)

	var expenseModels []model.ExpenseModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}

	return &entity.ExpenseListResult{
		Expenses:    expenses,
		TotalAmount: sum.Total,
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
	}, nil
}

// ListByDateRange returns every expense dated between start and end inclusive, oldest first.
func (r *expenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := applyDateRange(r.db.WithContext(ctx), start, end).
		Order("date ASC, created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}

// SumByCategoryInPeriod totals expenses per (category, subcategory) in a period.
func (r *expenseRepository) SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error) {
	start, end := period.Bounds()

	var rows []struct {
		Category    string
		Subcategory string
		Total       decimal.Decimal
		Count       int
	}
	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("category, subcategory, COALESCE(SUM(total_amount), 0) as total, COUNT(*) as count").
		Where("date >= ? AND date < ?", start, end).
		Group("category, subcategory").
		Order("category, subcategory").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sums := make([]valueobject.CategorySum, len(rows))
	for i, row := range rows {
		sums[i] = valueobject.CategorySum{
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Total:       row.Total,
			Count:       row.Count,
		}
	}
	return sums, nil
}

// Delete removes an expense.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
