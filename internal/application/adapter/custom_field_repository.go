// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// CustomFieldRepository defines the interface for custom field persistence operations.
type CustomFieldRepository interface {
	// Create inserts a field definition.
	// Returns domainerror.ErrCustomFieldAlreadyExists when (table, name) is taken.
	Create(ctx context.Context, field *entity.CustomField) error

	// Update saves changes to a field definition.
	Update(ctx context.Context, field *entity.CustomField) error

	// FindByID retrieves a field definition.
	// Returns domainerror.ErrCustomFieldNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomField, error)

	// ListByTable returns the fields of a table ordered by display order.
	ListByTable(ctx context.Context, table entity.CustomFieldTable, includeInactive bool) ([]*entity.CustomField, error)

	// UpsertValues inserts or updates a batch of values keyed by
	// (custom field, record, table). Either every value is saved or none.
	UpsertValues(ctx context.Context, values []*entity.CustomFieldValue) error

	// ListValues returns the stored values of one record.
	ListValues(ctx context.Context, table entity.CustomFieldTable, recordID uuid.UUID) ([]*entity.CustomFieldValue, error)
}
