// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomFieldTable names the record table a custom field extends.
type CustomFieldTable string

const (
	CustomFieldTableCollections CustomFieldTable = "collections"
	CustomFieldTableExpenses    CustomFieldTable = "expenses"
)

// IsValid reports whether the table can carry custom fields.
func (t CustomFieldTable) IsValid() bool {
	return t == CustomFieldTableCollections || t == CustomFieldTableExpenses
}

// CustomFieldType is the value type of a custom field.
type CustomFieldType string

const (
	CustomFieldTypeDecimal CustomFieldType = "decimal"
	CustomFieldTypeText    CustomFieldType = "text"
	CustomFieldTypeDate    CustomFieldType = "date"
	CustomFieldTypeInteger CustomFieldType = "integer"
	CustomFieldTypeBoolean CustomFieldType = "boolean"
)

// IsValid reports whether the field type is supported.
func (t CustomFieldType) IsValid() bool {
	switch t {
	case CustomFieldTypeDecimal, CustomFieldTypeText, CustomFieldTypeDate, CustomFieldTypeInteger, CustomFieldTypeBoolean:
		return true
	}
	return false
}

// CustomField is an admin-defined extra column on collections or expenses.
// (TableName, FieldName) is unique. Deactivated fields keep their values.
type CustomField struct {
	ID           uuid.UUID
	TableName    CustomFieldTable
	FieldName    string
	DisplayName  string
	FieldType    CustomFieldType
	DefaultValue *string
	IsRequired   bool
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCustomField creates an active custom field.
func NewCustomField(table CustomFieldTable, fieldName, displayName string, fieldType CustomFieldType) *CustomField {
	now := time.Now().UTC()
	return &CustomField{
		ID:          uuid.New(),
		TableName:   table,
		FieldName:   fieldName,
		DisplayName: displayName,
		FieldType:   fieldType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CustomFieldValue is the value of one custom field on one record.
// (CustomFieldID, RecordID, TableName) is unique.
type CustomFieldValue struct {
	ID            uuid.UUID
	CustomFieldID uuid.UUID
	RecordID      uuid.UUID
	TableName     CustomFieldTable
	Value         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CustomFieldValueWithField pairs a stored value with its definition.
type CustomFieldValueWithField struct {
	Field *CustomField
	Value *CustomFieldValue
}
