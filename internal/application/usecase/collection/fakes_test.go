package collection

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

type fakeCollectionRepository struct {
	byID      map[uuid.UUID]*entity.Collection
	createErr error
	lastList  entity.CollectionFilter
}

func newFakeCollectionRepository() *fakeCollectionRepository {
	return &fakeCollectionRepository{byID: make(map[uuid.UUID]*entity.Collection)}
}

func (r *fakeCollectionRepository) Create(ctx context.Context, c *entity.Collection) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCollectionRepository) Update(ctx context.Context, c *entity.Collection) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCollectionRepository) FindByControlNumber(ctx context.Context, controlNumber string) (*entity.Collection, error) {
	for _, c := range r.byID {
		if c.ControlNumber == controlNumber {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollectionRepository) List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error) {
	r.lastList = filter
	return &entity.CollectionListResult{Page: filter.Page, Limit: filter.Limit}, nil
}

func (r *fakeCollectionRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error) {
	return nil, nil
}

func (r *fakeCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeBudgetPlanRepository struct {
	plans   map[int]*entity.BudgetPlan
	lookups int
	err     error
}

func (r *fakeBudgetPlanRepository) FindByYear(ctx context.Context, year int) (*entity.BudgetPlan, error) {
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	return r.plans[year], nil
}

func (r *fakeBudgetPlanRepository) Save(ctx context.Context, plan *entity.BudgetPlan) error {
	if r.plans == nil {
		r.plans = make(map[int]*entity.BudgetPlan)
	}
	r.plans[plan.Year] = plan
	return nil
}

func (r *fakeBudgetPlanRepository) List(ctx context.Context) ([]*entity.BudgetPlan, error) {
	return nil, nil
}

func (r *fakeBudgetPlanRepository) DeleteByYear(ctx context.Context, year int) error {
	delete(r.plans, year)
	return nil
}

type fakeSplitCache struct {
	entries map[int]valueobject.FundSplit
	failAll bool
	sets    int
}

func newFakeSplitCache() *fakeSplitCache {
	return &fakeSplitCache{entries: make(map[int]valueobject.FundSplit)}
}

func (c *fakeSplitCache) Get(ctx context.Context, year int) (valueobject.FundSplit, bool, error) {
	if c.failAll {
		return valueobject.FundSplit{}, false, errors.New("redis: connection refused")
	}
	split, ok := c.entries[year]
	return split, ok, nil
}

func (c *fakeSplitCache) Set(ctx context.Context, year int, split valueobject.FundSplit) error {
	if c.failAll {
		return errors.New("redis: connection refused")
	}
	c.sets++
	c.entries[year] = split
	return nil
}

func (c *fakeSplitCache) Invalidate(ctx context.Context, year int) error {
	delete(c.entries, year)
	return nil
}
