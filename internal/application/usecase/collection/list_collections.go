package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

const (
	// DefaultPageLimit is used when no limit is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size.
	MaxPageLimit = 100
)

// ListCollectionsInput represents the input for listing collections.
type ListCollectionsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListCollectionsUseCase handles collection listing.
type ListCollectionsUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewListCollectionsUseCase creates a new ListCollectionsUseCase instance.
func NewListCollectionsUseCase(collectionRepo adapter.CollectionRepository) *ListCollectionsUseCase {
	return &ListCollectionsUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute returns a page of collections, newest first, with totals over the whole range.
func (uc *ListCollectionsUseCase) Execute(ctx context.Context, input ListCollectionsInput) (*entity.CollectionListResult, error) {
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPeriod,
			"end_date must not be before start_date",
			domainerror.ErrInvalidPeriod,
		)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.collectionRepo.List(ctx, entity.CollectionFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return result, nil
}
