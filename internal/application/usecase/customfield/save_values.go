package customfield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// SaveValuesInput carries the values of one record keyed by field name.
type SaveValuesInput struct {
	TableName string
	RecordID  uuid.UUID
	Values    map[string]string
}

// SaveValuesUseCase type-checks and upserts the custom values of a record as one batch.
type SaveValuesUseCase struct {
	fieldRepo      adapter.CustomFieldRepository
	collectionRepo adapter.CollectionRepository
	expenseRepo    adapter.ExpenseRepository
}

// NewSaveValuesUseCase creates a new SaveValuesUseCase instance.
func NewSaveValuesUseCase(
	fieldRepo adapter.CustomFieldRepository,
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
) *SaveValuesUseCase {
	return &SaveValuesUseCase{
		fieldRepo:      fieldRepo,
		collectionRepo: collectionRepo,
		expenseRepo:    expenseRepo,
	}
}

// Execute saves every value or none. Required active fields missing from both
// the submission and storage take their default or fail the batch.
func (uc *SaveValuesUseCase) Execute(ctx context.Context, input SaveValuesInput) ([]entity.CustomFieldValueWithField, error) {
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
	byName := make(map[string]*entity.CustomField, len(fields))
	for _, f := range fields {
		byName[f.FieldName] = f
	}

	stored, err := uc.fieldRepo.ListValues(ctx, table, input.RecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom values: %w", err)
	}
	storedByField := make(map[uuid.UUID]*entity.CustomFieldValue, len(stored))
	for _, v := range stored {
		storedByField[v.CustomFieldID] = v
	}

	names := make([]string, 0, len(input.Values))
	for name := range input.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now().UTC()
	batch := make([]*entity.CustomFieldValue, 0, len(names))
	saved := make([]entity.CustomFieldValueWithField, 0, len(names))
	submitted := make(map[uuid.UUID]bool, len(names))

	for _, name := range names {
		field, ok := byName[name]
		if !ok {
			return nil, domainerror.NewCustomFieldError(
				domainerror.ErrCodeCustomFieldNotFound,
				fmt.Sprintf("%s has no field named %s", table, name),
				domainerror.ErrCustomFieldNotFound,
			)
		}
		if !field.IsActive {
			return nil, domainerror.NewCustomFieldError(
				domainerror.ErrCodeCustomFieldInactive,
				fmt.Sprintf("field %s is inactive", name),
				domainerror.ErrCustomFieldInactive,
			)
		}

		value, err := NormalizeValue(field.FieldType, input.Values[name])
		if err != nil {
			return nil, err
		}
		if value == "" && field.DefaultValue != nil {
			value = *field.DefaultValue
		}
		if value == "" && field.IsRequired {
			return nil, requiredMissing(field)
		}

		v := newValue(field, input.RecordID, value, storedByField[field.ID], now)
		batch = append(batch, v)
		saved = append(saved, entity.CustomFieldValueWithField{Field: field, Value: v})
		submitted[field.ID] = true
	}

	for _, field := range fields {
		if !field.IsActive || !field.IsRequired || submitted[field.ID] {
			continue
		}
		if existing, ok := storedByField[field.ID]; ok && existing.Value != "" {
			continue
		}
		if field.DefaultValue == nil || *field.DefaultValue == "" {
			return nil, requiredMissing(field)
		}
		v := newValue(field, input.RecordID, *field.DefaultValue, storedByField[field.ID], now)
		batch = append(batch, v)
		saved = append(saved, entity.CustomFieldValueWithField{Field: field, Value: v})
	}

	if len(batch) == 0 {
		return saved, nil
	}

	if err := uc.fieldRepo.UpsertValues(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to save custom values: %w", err)
	}

	slog.Info("Custom values saved",
		"table_name", table,
		"record_id", input.RecordID,
		"count", len(batch),
	)

	return saved, nil
}

func newValue(field *entity.CustomField, recordID uuid.UUID, value string, existing *entity.CustomFieldValue, now time.Time) *entity.CustomFieldValue {
	v := &entity.CustomFieldValue{
		ID:            uuid.New(),
		CustomFieldID: field.ID,
		RecordID:      recordID,
		TableName:     field.TableName,
		Value:         value,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if existing != nil {
		v.ID = existing.ID
		v.CreatedAt = existing.CreatedAt
	}
	return v
}

func requiredMissing(field *entity.CustomField) error {
	return domainerror.NewCustomFieldError(
		domainerror.ErrCodeRequiredFieldMissing,
		fmt.Sprintf("field %s is required", field.FieldName),
		domainerror.ErrRequiredFieldMissing,
	)
}

func recordExists(
	ctx context.Context,
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
	table entity.CustomFieldTable,
	recordID uuid.UUID,
) error {
	var err error
	switch table {
	case entity.CustomFieldTableCollections:
		_, err = collectionRepo.FindByID(ctx, recordID)
	case entity.CustomFieldTableExpenses:
		_, err = expenseRepo.FindByID(ctx, recordID)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return domainerror.NewLedgerError(domainerror.ErrCodeRecordNotFound, "record not found", err)
	}
	return fmt.Errorf("failed to find record: %w", err)
}
