package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/collection"
	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// CollectionController handles collection endpoints.
type CollectionController struct {
	createUseCase *collection.CreateCollectionUseCase
	updateUseCase *collection.UpdateCollectionUseCase
	getUseCase    *collection.GetCollectionUseCase
	listUseCase   *collection.ListCollectionsUseCase
	deleteUseCase *collection.DeleteCollectionUseCase
	submissions   SubmissionRecorder
}

// NewCollectionController creates a new collection controller instance.
func NewCollectionController(
	createUseCase *collection.CreateCollectionUseCase,
	updateUseCase *collection.UpdateCollectionUseCase,
	getUseCase *collection.GetCollectionUseCase,
	listUseCase *collection.ListCollectionsUseCase,
	deleteUseCase *collection.DeleteCollectionUseCase,
	submissions SubmissionRecorder,
) *CollectionController {
	return &CollectionController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		submissions:   submissions,
	}
}

// Create handles POST /collections requests.
func (c *CollectionController) Create(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var req dto.CollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), collection.CreateCollectionInput{
		Draft:        req.ToDraft(),
		CreatedBy:    email,
		SubmittedVia: entity.SubmittedViaWeb,
	})
	recordSubmission(c.submissions, "collection", string(entity.SubmittedViaWeb), err)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCollectionResponse(output.Collection))
}

// Update handles PUT /collections/:id requests.
func (c *CollectionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), collection.UpdateCollectionInput{
		ID:    id,
		Draft: req.ToDraft(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollectionResponse(output.Collection))
}

// Get handles GET /collections/:id requests.
func (c *CollectionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollectionResponse(output.Collection))
}

// List handles GET /collections requests.
func (c *CollectionController) List(ctx *gin.Context) {
	startDate, ok := parseOptionalDate(ctx, "start_date", ctx.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(ctx, "end_date", ctx.Query("end_date"))
	if !ok {
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), collection.ListCollectionsInput{
		StartDate: startDate,
		EndDate:   endDate,
		Page:      queryInt(ctx, "page", 1),
		Limit:     queryInt(ctx, "limit", 0),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCollectionListResponse(result))
}

// Delete handles DELETE /collections/:id requests.
func (c *CollectionController) Delete(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), collection.DeleteCollectionInput{
		ID:        id,
		DeletedBy: email,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
