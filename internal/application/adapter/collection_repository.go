// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// CollectionRepository defines the interface for collection persistence operations.
type CollectionRepository interface {
	// Create inserts a new collection.
	// Returns domainerror.ErrDuplicateControlNumber when the control number is taken.
	Create(ctx context.Context, collection *entity.Collection) error

	// Update replaces a stored collection.
	Update(ctx context.Context, collection *entity.Collection) error

	// FindByID retrieves a collection by ID.
	// Returns domainerror.ErrRecordNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	// FindByControlNumber retrieves the collection holding a control number, or nil.
	FindByControlNumber(ctx context.Context, controlNumber string) (*entity.Collection, error)

	// List returns a page of collections matching the filter, newest first.
	List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error)

	// ListByDateRange returns every collection dated between start and end
	// inclusive, oldest first. A nil bound is open.
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error)

	// Delete removes a collection.
	Delete(ctx context.Context, id uuid.UUID) error
}
