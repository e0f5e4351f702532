// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create inserts a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update replaces a stored expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID.
	// Returns domainerror.ErrRecordNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// List returns a page of expenses matching the filter, newest first.
	List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error)

	// ListByDateRange returns every expense dated between start and end
	// inclusive, oldest first. A nil bound is open.
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error)

	// SumByCategoryInPeriod totals expenses per (category, subcategory) in a period.
	SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error)

	// Delete removes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}
