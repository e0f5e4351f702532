package dto

import (
	"time"

	"github.com/church-ledger/backend/internal/domain/entity"
)

// CreateCustomFieldRequest is the body of a custom field definition request.
type CreateCustomFieldRequest struct {
	TableName    string  `json:"table_name" binding:"required,oneof=collections expenses"`
	FieldName    string  `json:"field_name" binding:"required,fieldname"`
	DisplayName  string  `json:"display_name" binding:"required,max=255"`
	FieldType    string  `json:"field_type" binding:"required,oneof=decimal text date integer boolean"`
	DefaultValue *string `json:"default_value"`
	IsRequired   bool    `json:"is_required"`
	DisplayOrder int     `json:"display_order" binding:"gte=0"`
}

// UpdateCustomFieldRequest is a partial update of a field definition.
type UpdateCustomFieldRequest struct {
	DisplayName  *string `json:"display_name" binding:"omitempty,min=1,max=255"`
	DefaultValue *string `json:"default_value"`
	IsRequired   *bool   `json:"is_required"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}

// SaveCustomValuesRequest maps field names to raw values for one record.
type SaveCustomValuesRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// CustomFieldResponse represents a field definition in API responses.
type CustomFieldResponse struct {
	ID           string    `json:"id"`
	TableName    string    `json:"table_name"`
	FieldName    string    `json:"field_name"`
	DisplayName  string    `json:"display_name"`
	FieldType    string    `json:"field_type"`
	DefaultValue *string   `json:"default_value,omitempty"`
	IsRequired   bool      `json:"is_required"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomValueResponse is a field paired with its stored value for one record.
type CustomValueResponse struct {
	FieldID     string  `json:"field_id"`
	FieldName   string  `json:"field_name"`
	DisplayName string  `json:"display_name"`
	FieldType   string  `json:"field_type"`
	Value       *string `json:"value"`
}

// CustomValuesResponse lists the custom values of a record.
type CustomValuesResponse struct {
	TableName string                `json:"table_name"`
	RecordID  string                `json:"record_id"`
	Values    []CustomValueResponse `json:"values"`
}

// ToCustomFieldResponse converts a field definition to its response DTO.
func ToCustomFieldResponse(f *entity.CustomField) CustomFieldResponse {
	return CustomFieldResponse{
		ID:           f.ID.String(),
		TableName:    string(f.TableName),
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

// ToCustomFieldListResponse converts field definitions to response DTOs.
func ToCustomFieldListResponse(fields []*entity.CustomField) []CustomFieldResponse {
	out := make([]CustomFieldResponse, len(fields))
	for i, f := range fields {
		out[i] = ToCustomFieldResponse(f)
	}
	return out
}

// ToCustomValuesResponse converts the values of a record to its response DTO.
func ToCustomValuesResponse(tableName, recordID string, values []entity.CustomFieldValueWithField) CustomValuesResponse {
	out := make([]CustomValueResponse, len(values))
	for i, v := range values {
		item := CustomValueResponse{
			FieldID:     v.Field.ID.String(),
			FieldName:   v.Field.FieldName,
			DisplayName: v.Field.DisplayName,
			FieldType:   string(v.Field.FieldType),
		}
		if v.Value != nil {
			value := v.Value.Value
			item.Value = &value
		}
		out[i] = item
	}
	return CustomValuesResponse{
		TableName: tableName,
		RecordID:  recordID,
		Values:    out,
	}
}
