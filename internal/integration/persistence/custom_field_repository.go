package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/persistence/model"
)

// customFieldRepository implements the adapter.CustomFieldRepository interface.
type customFieldRepository struct {
	db *gorm.DB
}

// NewCustomFieldRepository creates a new custom field repository instance.
func NewCustomFieldRepository(db *gorm.DB) adapter.CustomFieldRepository {
	return &customFieldRepository{
		db: db,
	}
}

// Create inserts a field definition.
func (r *customFieldRepository) Create(ctx context.Context, field *entity.CustomField) error {
	result := r.db.WithContext(ctx).Create(model.CustomFieldFromEntity(field))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCustomFieldAlreadyExists
		}
		return result.Error
	}
	return nil
}

// Update saves changes to a field definition.
func (r *customFieldRepository) Update(ctx context.Context, field *entity.CustomField) error {
	return r.db.WithContext(ctx).Save(model.CustomFieldFromEntity(field)).Error
}

// FindByID retrieves a field definition.
func (r *customFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomField, error) {
	var fieldModel model.CustomFieldModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&fieldModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCustomFieldNotFound
		}
		return nil, result.Error
	}
	return fieldModel.ToEntity(), nil
}

// ListByTable returns the fields of a table ordered by display order.
func (r *customFieldRepository) ListByTable(ctx context.Context, table entity.CustomFieldTable, includeInactive bool) ([]*entity.CustomField, error) {
	query := r.db.WithContext(ctx).Where("table_name = ?", string(table))
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var fieldModels []model.CustomFieldModel
	if err := query.Order("display_order ASC, field_name ASC").Find(&fieldModels).Error; err != nil {
		return nil, err
	}

	fields := make([]*entity.CustomField, len(fieldModels))
	for i := range fieldModels {
		fields[i] = fieldModels[i].ToEntity()
	}
	return fields, nil
}

// UpsertValues inserts or updates a batch of values in one transaction.
func (r *customFieldRepository) UpsertValues(ctx context.Context, values []*entity.CustomFieldValue) error {
	if len(values) == 0 {
		return nil
	}

	valueModels := make([]*model.CustomFieldValueModel, len(values))
	for i, v := range values {
		valueModels[i] = model.CustomFieldValueFromEntity(v)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "custom_field_id"},
				{Name: "record_id"},
				{Name: "table_name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&valueModels).Error
	})
}

// ListValues returns the stored values of one record.
func (r *customFieldRepository) ListValues(ctx context.Context, table entity.CustomFieldTable, recordID uuid.UUID) ([]*entity.CustomFieldValue, error) {
	var valueModels []model.CustomFieldValueModel
	result := r.db.WithContext(ctx).
		Where("table_name = ? AND record_id = ?", string(table), recordID).
		Find(&valueModels)
	if result.Error != nil {
		return nil, result.Error
	}

	values := make([]*entity.CustomFieldValue, len(valueModels))
	for i := range valueModels {
		values[i] = valueModels[i].ToEntity()
	}
	return values, nil
}
