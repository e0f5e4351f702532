package customfield

import (
	"context"
	"fmt"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// ListCustomFieldsInput selects the fields of one table.
type ListCustomFieldsInput struct {
	TableName       string
	IncludeInactive bool
}

// ListCustomFieldsUseCase lists field definitions.
type ListCustomFieldsUseCase struct {
	fieldRepo adapter.CustomFieldRepository
}

// NewListCustomFieldsUseCase creates a new ListCustomFieldsUseCase instance.
func NewListCustomFieldsUseCase(fieldRepo adapter.CustomFieldRepository) *ListCustomFieldsUseCase {
	return &ListCustomFieldsUseCase{
		fieldRepo: fieldRepo,
	}
}

// Execute returns the fields ordered by display order.
func (uc *ListCustomFieldsUseCase) Execute(ctx context.Context, input ListCustomFieldsInput) ([]*entity.CustomField, error) {
	table := entity.CustomFieldTable(input.TableName)
	if !table.IsValid() {
		return nil, domainerror.NewCustomFieldError(
			domainerror.ErrCodeInvalidTableName,
			"table must be collections or expenses",
			domainerror.ErrInvalidTableName,
		)
	}

	fields, err := uc.fieldRepo.ListByTable(ctx, table, input.IncludeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}
	return fields, nil
}
