package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/customfield"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// CustomFieldController handles custom field definitions and values.
type CustomFieldController struct {
	createUseCase     *customfield.CreateCustomFieldUseCase
	listUseCase       *customfield.ListCustomFieldsUseCase
	updateUseCase     *customfield.UpdateCustomFieldUseCase
	deactivateUseCase *customfield.DeactivateCustomFieldUseCase
	saveValuesUseCase *customfield.SaveValuesUseCase
	getValuesUseCase  *customfield.GetValuesUseCase
}

// NewCustomFieldController creates a new custom field controller instance.
func NewCustomFieldController(
	createUseCase *customfield.CreateCustomFieldUseCase,
	listUseCase *customfield.ListCustomFieldsUseCase,
	updateUseCase *customfield.UpdateCustomFieldUseCase,
	deactivateUseCase *customfield.DeactivateCustomFieldUseCase,
	saveValuesUseCase *customfield.SaveValuesUseCase,
	getValuesUseCase *customfield.GetValuesUseCase,
) *CustomFieldController {
	return &CustomFieldController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deactivateUseCase: deactivateUseCase,
		saveValuesUseCase: saveValuesUseCase,
		getValuesUseCase:  getValuesUseCase,
	}
}

// Create handles POST /custom-fields requests.
func (c *CustomFieldController) Create(ctx *gin.Context) {
	var req dto.CreateCustomFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), customfield.CreateCustomFieldInput{
		TableName:    req.TableName,
		FieldName:    req.FieldName,
		DisplayName:  req.DisplayName,
		FieldType:    req.FieldType,
		DefaultValue: req.DefaultValue,
		IsRequired:   req.IsRequired,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomFieldResponse(output.Field))
}

// List handles GET /custom-fields?table=&include_inactive= requests.
func (c *CustomFieldController) List(ctx *gin.Context) {
	fields, err := c.listUseCase.Execute(ctx.Request.Context(), customfield.ListCustomFieldsInput{
		TableName:       ctx.Query("table"),
		IncludeInactive: ctx.Query("include_inactive") == "true",
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"custom_fields": dto.ToCustomFieldListResponse(fields)})
}

// Update handles PATCH /custom-fields/:id requests.
func (c *CustomFieldController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), customfield.UpdateCustomFieldInput{
		ID:           id,
		DisplayName:  req.DisplayName,
		DefaultValue: req.DefaultValue,
		IsRequired:   req.IsRequired,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomFieldResponse(output.Field))
}

// Deactivate handles DELETE /custom-fields/:id requests. Stored values are kept.
func (c *CustomFieldController) Deactivate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deactivateUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SaveValues handles PUT /custom-fields/values/:table/:record_id requests.
func (c *CustomFieldController) SaveValues(ctx *gin.Context) {
	recordID, ok := parseIDParam(ctx, "record_id")
	if !ok {
		return
	}

	var req dto.SaveCustomValuesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	table := ctx.Param("table")
	values, err := c.saveValuesUseCase.Execute(ctx.Request.Context(), customfield.SaveValuesInput{
		TableName: table,
		RecordID:  recordID,
		Values:    req.Values,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomValuesResponse(table, recordID.String(), values))
}

// GetValues handles GET /custom-fields/values/:table/:record_id requests.
func (c *CustomFieldController) GetValues(ctx *gin.Context) {
	recordID, ok := parseIDParam(ctx, "record_id")
	if !ok {
		return
	}

	table := ctx.Param("table")
	values, err := c.getValuesUseCase.Execute(ctx.Request.Context(), customfield.GetValuesInput{
		TableName: table,
		RecordID:  recordID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomValuesResponse(table, recordID.String(), values))
}
