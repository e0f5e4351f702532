package collection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
)

// DeleteCollectionInput represents the input for collection deletion.
type DeleteCollectionInput struct {
	ID        uuid.UUID
	DeletedBy string
}

// DeleteCollectionUseCase handles explicit collection deletion.
type DeleteCollectionUseCase struct {
	collectionRepo adapter.CollectionRepository
}

// NewDeleteCollectionUseCase creates a new DeleteCollectionUseCase instance.
func NewDeleteCollectionUseCase(collectionRepo adapter.CollectionRepository) *DeleteCollectionUseCase {
	return &DeleteCollectionUseCase{
		collectionRepo: collectionRepo,
	}
}

// Execute removes the collection.
func (uc *DeleteCollectionUseCase) Execute(ctx context.Context, input DeleteCollectionInput) error {
	if _, err := uc.collectionRepo.FindByID(ctx, input.ID); err != nil {
		if isNotFound(err) {
			return notFound(err)
		}
		return fmt.Errorf("failed to find collection: %w", err)
	}

	if err := uc.collectionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	slog.Info("Collection deleted", "collection_id", input.ID, "deleted_by", input.DeletedBy)
	return nil
}
