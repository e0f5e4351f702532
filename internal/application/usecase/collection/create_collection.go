package collection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// CreateCollectionInput represents the input for collection creation.
type CreateCollectionInput struct {
	Draft         ledger.CollectionDraft
	CreatedBy     string
	SubmittedVia  entity.SubmissionChannel
	SourcePayload map[string]string
}

// CreateCollectionUseCase handles collection creation logic.
type CreateCollectionUseCase struct {
	collectionRepo adapter.CollectionRepository
	processor      *ledger.Processor
	splits         ledger.SplitSource
}

// NewCreateCollectionUseCase creates a new CreateCollectionUseCase instance.
func NewCreateCollectionUseCase(
	collectionRepo adapter.CollectionRepository,
	processor *ledger.Processor,
	splits ledger.SplitSource,
) *CreateCollectionUseCase {
	return &CreateCollectionUseCase{
		collectionRepo: collectionRepo,
		processor:      processor,
		splits:         splits,
	}
}

// Execute validates and stores a new collection.
func (uc *CreateCollectionUseCase) Execute(ctx context.Context, input CreateCollectionInput) (*CollectionOutput, error) {
	via := input.SubmittedVia
	if via == "" {
		via = entity.SubmittedViaWeb
	}

	collection := entity.NewCollection(time.Time{}, "", input.CreatedBy, via)
	collection.SourcePayload = input.SourcePayload

	if err := uc.processor.PrepareCollection(ctx, input.Draft, uc.splits, collection); err != nil {
		return nil, err
	}

	if err := uc.collectionRepo.Create(ctx, collection); err != nil {
		if dupErr := duplicateControlNumber(err, collection.ControlNumber); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	slog.Info("Collection recorded",
		"collection_id", collection.ID,
		"submitted_via", collection.SubmittedVia,
		"total_amount", collection.TotalAmount.StringFixed(2),
	)

	return &CollectionOutput{Collection: collection}, nil
}
