package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
)

// UpdateCollectionInput represents the input for collection update.
type UpdateCollectionInput struct {
	ID    uuid.UUID
	Draft ledger.CollectionDraft
}

// UpdateCollectionUseCase handles collection update logic.
type UpdateCollectionUseCase struct {
	collectionRepo adapter.CollectionRepository
	processor      *ledger.Processor
	splits         ledger.SplitSource
}

// NewUpdateCollectionUseCase creates a new UpdateCollectionUseCase instance.
func NewUpdateCollectionUseCase(
	collectionRepo adapter.CollectionRepository,
	processor *ledger.Processor,
	splits ledger.SplitSource,
) *UpdateCollectionUseCase {
	return &UpdateCollectionUseCase{
		collectionRepo: collectionRepo,
		processor:      processor,
		splits:         splits,
	}
}

// Execute replaces the values of a collection, re-running the whole pipeline.
// Provenance and creation time are kept.
func (uc *UpdateCollectionUseCase) Execute(ctx context.Context, input UpdateCollectionInput) (*CollectionOutput, error) {
	collection, err := uc.collectionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(err)
		}
		return nil, fmt.Errorf("failed to find collection: %w", err)
	}

	if err := uc.processor.PrepareCollection(ctx, input.Draft, uc.splits, collection); err != nil {
		return nil, err
	}
	collection.UpdatedAt = time.Now().UTC()

	if err := uc.collectionRepo.Update(ctx, collection); err != nil {
		if dupErr := duplicateControlNumber(err, collection.ControlNumber); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return &CollectionOutput{Collection: collection}, nil
}
