package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

type fakeExpenseRepository struct {
	byID     map[uuid.UUID]*entity.Expense
	lastList entity.ExpenseFilter
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{byID: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error) {
	r.lastList = filter
	return &entity.ExpenseListResult{Page: filter.Page, Limit: filter.Limit}, nil
}

func (r *fakeExpenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepository) SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error) {
	lines := make([]valueobject.ExpenseLine, 0, len(r.byID))
	for _, e := range r.byID {
		lines = append(lines, valueobject.ExpenseLine{
			Date:        e.Date,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			TotalAmount: e.TotalAmount,
		})
	}
	return valueobject.SumByCategory(lines, period), nil
}

func (r *fakeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeSuggester struct {
	available  bool
	suggestion *adapter.CategorySuggestion
	err        error
	lastReq    adapter.CategorySuggestionRequest
}

func (s *fakeSuggester) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	s.lastReq = request
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestion, nil
}

func (s *fakeSuggester) IsAvailable() bool {
	return s.available
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
