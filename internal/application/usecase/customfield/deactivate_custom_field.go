package customfield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// DeactivateCustomFieldUseCase soft-deletes a field. Stored values are kept.
type DeactivateCustomFieldUseCase struct {
	fieldRepo adapter.CustomFieldRepository
}

// NewDeactivateCustomFieldUseCase creates a new DeactivateCustomFieldUseCase instance.
func NewDeactivateCustomFieldUseCase(fieldRepo adapter.CustomFieldRepository) *DeactivateCustomFieldUseCase {
	return &DeactivateCustomFieldUseCase{
		fieldRepo: fieldRepo,
	}
}

// Execute marks the field inactive.
func (uc *DeactivateCustomFieldUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	field, err := uc.fieldRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomFieldNotFound) {
			return fieldNotFound(err)
		}
		return fmt.Errorf("failed to find custom field: %w", err)
	}
	if !field.IsActive {
		return nil
	}

	field.IsActive = false
	field.UpdatedAt = time.Now().UTC()
	if err := uc.fieldRepo.Update(ctx, field); err != nil {
		return fmt.Errorf("failed to deactivate custom field: %w", err)
	}

	slog.Info("Custom field deactivated", "custom_field_id", field.ID)
	return nil
}
