package customfield

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// CreateCustomFieldInput represents the input for defining a custom field.
type CreateCustomFieldInput struct {
	TableName    string
	FieldName    string
	DisplayName  string
	FieldType    string
	DefaultValue *string
	IsRequired   bool
	DisplayOrder int
}

// CustomFieldOutput wraps a custom field definition.
type CustomFieldOutput struct {
	Field *entity.CustomField
}

// CreateCustomFieldUseCase handles custom field definition.
type CreateCustomFieldUseCase struct {
	fieldRepo adapter.CustomFieldRepository
}

// NewCreateCustomFieldUseCase creates a new CreateCustomFieldUseCase instance.
func NewCreateCustomFieldUseCase(fieldRepo adapter.CustomFieldRepository) *CreateCustomFieldUseCase {
	return &CreateCustomFieldUseCase{
		fieldRepo: fieldRepo,
	}
}

// Execute validates and stores a field definition.
func (uc *CreateCustomFieldUseCase) Execute(ctx context.Context, input CreateCustomFieldInput) (*CustomFieldOutput, error) {
	table := entity.CustomFieldTable(strings.TrimSpace(input.TableName))
	if !table.IsValid() {
		return nil, domainerror.NewCustomFieldError(
			domainerror.ErrCodeInvalidTableName,
			"table must be collections or expenses",
			domainerror.ErrInvalidTableName,
		)
	}

	name := strings.TrimSpace(input.FieldName)
	if !valueobject.IsValidFieldName(name) {
		return nil, domainerror.NewCustomFieldError(
			domainerror.ErrCodeInvalidFieldName,
			"field name must start with a lowercase letter and contain only lowercase letters, digits and underscores",
			domainerror.ErrInvalidFieldName,
		)
	}

	fieldType := entity.CustomFieldType(strings.TrimSpace(input.FieldType))
	if !fieldType.IsValid() {
		return nil, domainerror.NewCustomFieldError(
			domainerror.ErrCodeInvalidFieldType,
			"field type must be one of decimal, text, date, integer, boolean",
			domainerror.ErrInvalidFieldType,
		)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = name
	}

	field := entity.NewCustomField(table, name, displayName, fieldType)
	field.IsRequired = input.IsRequired
	field.DisplayOrder = input.DisplayOrder

	if input.DefaultValue != nil {
		value, err := NormalizeValue(fieldType, *input.DefaultValue)
		if err != nil {
			return nil, err
		}
		field.DefaultValue = &value
	}

	if err := uc.fieldRepo.Create(ctx, field); err != nil {
		if errors.Is(err, domainerror.ErrCustomFieldAlreadyExists) {
			return nil, domainerror.NewCustomFieldError(
				domainerror.ErrCodeCustomFieldAlreadyExists,
				fmt.Sprintf("%s already has a field named %s", table, name),
				err,
			)
		}
		return nil, fmt.Errorf("failed to create custom field: %w", err)
	}

	slog.Info("Custom field created",
		"custom_field_id", field.ID,
		"table_name", field.TableName,
		"field_name", field.FieldName,
	)

	return &CustomFieldOutput{Field: field}, nil
}
