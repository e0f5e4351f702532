package budget

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

type fakeBudgetRepository struct {
	plans map[int]*entity.BudgetPlan
	saves int
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{plans: make(map[int]*entity.BudgetPlan)}
}

func (r *fakeBudgetRepository) FindByYear(ctx context.Context, year int) (*entity.BudgetPlan, error) {
	return r.plans[year], nil
}

func (r *fakeBudgetRepository) Save(ctx context.Context, plan *entity.BudgetPlan) error {
	r.saves++
	r.plans[plan.Year] = plan
	return nil
}

func (r *fakeBudgetRepository) List(ctx context.Context) ([]*entity.BudgetPlan, error) {
	plans := make([]*entity.BudgetPlan, 0, len(r.plans))
	for _, p := range r.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Year > plans[j].Year })
	return plans, nil
}

func (r *fakeBudgetRepository) DeleteByYear(ctx context.Context, year int) error {
	if _, ok := r.plans[year]; !ok {
		return domainerror.ErrBudgetPlanNotFound
	}
	delete(r.plans, year)
	return nil
}

type fakeSplitCache struct {
	invalidated []int
}

func (c *fakeSplitCache) Get(ctx context.Context, year int) (valueobject.FundSplit, bool, error) {
	return valueobject.FundSplit{}, false, nil
}

func (c *fakeSplitCache) Set(ctx context.Context, year int, split valueobject.FundSplit) error {
	return nil
}

func (c *fakeSplitCache) Invalidate(ctx context.Context, year int) error {
	c.invalidated = append(c.invalidated, year)
	return nil
}

type fakeExpenseRepository struct {
	expenses  []*entity.Expense
	rangeArgs [2]*time.Time
}

func (r *fakeExpenseRepository) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (r *fakeExpenseRepository) Update(ctx context.Context, e *entity.Expense) error { return nil }

func (r *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeExpenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (r *fakeExpenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	r.rangeArgs = [2]*time.Time{start, end}
	return r.expenses, nil
}

func (r *fakeExpenseRepository) SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error) {
	return nil, nil
}

func (r *fakeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func expense(date, category, subcategory, total string) *entity.Expense {
	d, _ := time.Parse("2006-01-02", date)
	e := entity.NewExpense(d, category, "treasurer@church.org", entity.SubmittedViaWeb)
	e.Subcategory = subcategory
	e.TotalAmount = decimal.RequireFromString(total)
	return e
}

func pct(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
