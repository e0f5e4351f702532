package customfield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// UpdateCustomFieldInput carries the fields to change. Nil fields are left alone.
// Table, name and type cannot change once values may exist.
type UpdateCustomFieldInput struct {
	ID           uuid.UUID
	DisplayName  *string
	DefaultValue *string
	IsRequired   *bool
	DisplayOrder *int
	IsActive     *bool
}

// UpdateCustomFieldUseCase handles partial updates of a field definition.
type UpdateCustomFieldUseCase struct {
	fieldRepo adapter.CustomFieldRepository
}

// NewUpdateCustomFieldUseCase creates a new UpdateCustomFieldUseCase instance.
func NewUpdateCustomFieldUseCase(fieldRepo adapter.CustomFieldRepository) *UpdateCustomFieldUseCase {
	return &UpdateCustomFieldUseCase{
		fieldRepo: fieldRepo,
	}
}

// Execute applies the changes.
func (uc *UpdateCustomFieldUseCase) Execute(ctx context.Context, input UpdateCustomFieldInput) (*CustomFieldOutput, error) {
	field, err := uc.fieldRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCustomFieldNotFound) {
			return nil, fieldNotFound(err)
		}
		return nil, fmt.Errorf("failed to find custom field: %w", err)
	}

	if input.DisplayName != nil {
		if name := strings.TrimSpace(*input.DisplayName); name != "" {
			field.DisplayName = name
		}
	}
	if input.DefaultValue != nil {
		value, err := NormalizeValue(field.FieldType, *input.DefaultValue)
		if err != nil {
			return nil, err
		}
		if value == "" {
			field.DefaultValue = nil
		} else {
			field.DefaultValue = &value
		}
	}
	if input.IsRequired != nil {
		field.IsRequired = *input.IsRequired
	}
	if input.DisplayOrder != nil {
		field.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		field.IsActive = *input.IsActive
	}
	field.UpdatedAt = time.Now().UTC()

	if err := uc.fieldRepo.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("failed to update custom field: %w", err)
	}

	slog.Info("Custom field updated", "custom_field_id", field.ID, "is_active", field.IsActive)
	return &CustomFieldOutput{Field: field}, nil
}
