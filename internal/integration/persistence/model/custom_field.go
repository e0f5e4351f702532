package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// CustomFieldModel represents the custom_fields table in the database.
type CustomFieldModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordTable  string    `gorm:"column:table_name;type:varchar(20);not null;uniqueIndex:idx_custom_fields_table_field"`
	FieldName    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_custom_fields_table_field"`
	DisplayName  string    `gorm:"type:varchar(100);not null"`
	FieldType    string    `gorm:"type:varchar(20);not null"`
	DefaultValue *string   `gorm:"type:text"`
	IsRequired   bool      `gorm:"default:false"`
	DisplayOrder int       `gorm:"not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the CustomFieldModel.
func (CustomFieldModel) TableName() string {
	return "custom_fields"
}

// ToEntity converts a CustomFieldModel to a domain CustomField.
func (m *CustomFieldModel) ToEntity() *entity.CustomField {
	return &entity.CustomField{
		ID:           m.ID,
		TableName:    entity.CustomFieldTable(m.RecordTable),
		FieldName:    m.FieldName,
		DisplayName:  m.DisplayName,
		FieldType:    entity.CustomFieldType(m.FieldType),
		DefaultValue: m.DefaultValue,
		IsRequired:   m.IsRequired,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CustomFieldFromEntity creates a CustomFieldModel from a domain CustomField.
func CustomFieldFromEntity(f *entity.CustomField) *CustomFieldModel {
	return &CustomFieldModel{
		ID:           f.ID,
		RecordTable:  string(f.TableName),
		FieldName:    f.FieldName,
		DisplayName:  f.DisplayName,
		FieldType:    string(f.FieldType),
		DefaultValue: f.DefaultValue,
		IsRequired:   f.IsRequired,
		DisplayOrder: f.DisplayOrder,
		IsActive:     f.IsActive,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// CustomFieldValueModel represents the custom_field_values table in the database.
// One value exists per (custom field, record, table).
type CustomFieldValueModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomFieldID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_custom_field_values_key"`
	RecordID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_custom_field_values_key;index"`
	RecordTable   string    `gorm:"column:table_name;type:varchar(20);not null;uniqueIndex:idx_custom_field_values_key"`
	Value         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the CustomFieldValueModel.
func (CustomFieldValueModel) TableName() string {
	return "custom_field_values"
}

// ToEntity converts a CustomFieldValueModel to a domain CustomFieldValue.
func (m *CustomFieldValueModel) ToEntity() *entity.CustomFieldValue {
	return &entity.CustomFieldValue{
		ID:            m.ID,
		CustomFieldID: m.CustomFieldID,
		RecordID:      m.RecordID,
		TableName:     entity.CustomFieldTable(m.RecordTable),
		Value:         m.Value,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CustomFieldValueFromEntity creates a CustomFieldValueModel from a domain CustomFieldValue.
func CustomFieldValueFromEntity(v *entity.CustomFieldValue) *CustomFieldValueModel {
	return &CustomFieldValueModel{
		ID:            v.ID,
		CustomFieldID: v.CustomFieldID,
		RecordID:      v.RecordID,
		RecordTable:   string(v.TableName),
		Value:         v.Value,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// All lists every model migrated by the application.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&CollectionModel{},
		&ExpenseModel{},
		&BudgetPlanModel{},
		&BudgetCategoryModel{},
		&CustomFieldModel{},
		&CustomFieldValueModel{},
	}
}
