package customfield

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// GetValuesInput selects one record.
type GetValuesInput struct {
	TableName string
	RecordID  uuid.UUID
}

// GetValuesUseCase returns the custom values of a record paired with their fields.
type GetValuesUseCase struct {
	fieldRepo      adapter.CustomFieldRepository
	collectionRepo adapter.CollectionRepository
	expenseRepo    adapter.ExpenseRepository
}

// NewGetValuesUseCase creates a new GetValuesUseCase instance.
func NewGetValuesUseCase(
	fieldRepo adapter.CustomFieldRepository,
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetValuesUseCase {
	return &GetValuesUseCase{
		fieldRepo:      fieldRepo,
		collectionRepo: collectionRepo,
		expenseRepo:    expenseRepo,
	}
}

// Execute lists every active field, with its value when one is stored, and
// inactive fields that still hold a value.
func (uc *GetValuesUseCase) Execute(ctx context.Context, input GetValuesInput) ([]entity.CustomFieldValueWithField, error) {
	table := entity.CustomFieldTable(input.TableName)
	if !table.IsValid() {
		return nil, domainerror.NewCustomFieldError(
			domainerror.ErrCodeInvalidTableName,
			"table must be collections or expenses",
			domainerror.ErrInvalidTableName,
		)
	}

	if err := recordExists(ctx, uc.collectionRepo, uc.expenseRepo, table, input.RecordID); err != nil {
		return nil, err
	}

	fields, err := uc.fieldRepo.ListByTable(ctx, table, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom fields: %w", err)
	}

	values, err := uc.fieldRepo.ListValues(ctx, table, input.RecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom values: %w", err)
	}
	byField := make(map[uuid.UUID]*entity.CustomFieldValue, len(values))
	for _, v := range values {
		byField[v.CustomFieldID] = v
	}

	result := make([]entity.CustomFieldValueWithField, 0, len(fields))
	for _, f := range fields {
		v := byField[f.ID]
		if !f.IsActive && v == nil {
			continue
		}
		result = append(result, entity.CustomFieldValueWithField{Field: f, Value: v})
	}
	return result, nil
}
