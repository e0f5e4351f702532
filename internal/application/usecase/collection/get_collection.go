package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
)

// GetCollectionUseCase handles fetching a single collection.
type GetCollectionUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewGetCollectionUseCase creates a new GetCollectionUseCase instance.
func NewGetCollectionUseCase(collectionRepo adapter.CollectionRepository) *GetCollectionUseCase {
	return &GetCollectionUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute returns the collection with the given ID.
func (uc *GetCollectionUseCase) Execute(ctx context.Context, id uuid.UUID) (*CollectionOutput, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to find collection: %w", err)
	}
	return &CollectionOutput{Collection: collection}, nil
}
