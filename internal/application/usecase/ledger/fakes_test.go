package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// StaticSplit is a SplitSource that always returns the same split.
type StaticSplit valueobject.FundSplit

func (s StaticSplit) Resolve(ctx context.Context, year int) (valueobject.FundSplit, error) {
	return valueobject.FundSplit(s), nil
}

// fakeCollectionRepository is an in-memory CollectionRepository.
type fakeCollectionRepository struct {
	byID      map[uuid.UUID]*entity.Collection
	lookupErr error
}

func newFakeCollectionRepository(existing ...*entity.Collection) *fakeCollectionRepository {
	repo := &fakeCollectionRepository{byID: make(map[uuid.UUID]*entity.Collection)}
	for _, c := range existing {
		repo.byID[c.ID] = c
	}
	return repo
}

func (r *fakeCollectionRepository) Create(ctx context.Context, c *entity.Collection) error {
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
	return c, nil
}

func (r *fakeCollectionRepository) FindByControlNumber(ctx context.Context, controlNumber string) (*entity.Collection, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, c := range r.byID {
		if c.ControlNumber == controlNumber {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollectionRepository) List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error) {
	return &entity.CollectionListResult{}, nil
}

func (r *fakeCollectionRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error) {
	return nil, nil
}

func (r *fakeCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}
