package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	getUseCase     *expense.GetExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	summaryUseCase *expense.GetSummaryUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
	submissions    SubmissionRecorder
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	summaryUseCase *expense.GetSummaryUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
	submissions SubmissionRecorder,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		suggestUseCase: suggestUseCase,
		submissions:    submissions,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Draft:        req.ToDraft(),
		CreatedBy:    email,
		SubmittedVia: entity.SubmittedViaWeb,
	})
	recordSubmission(c.submissions, "expense", string(entity.SubmittedViaWeb), err)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ID:    id,
		Draft: req.ToDraft(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	startDate, ok := parseOptionalDate(ctx, "start_date", ctx.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(ctx, "end_date", ctx.Query("end_date"))
	if !ok {
		return
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		StartDate: startDate,
		EndDate:   endDate,
		Category:  ctx.Query("category"),
		Page:      queryInt(ctx, "page", 1),
		Limit:     queryInt(ctx, "limit", 0),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(result))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ID:        id,
		DeletedBy: email,
	}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /expenses/summary?year=&month= requests.
// The year defaults to the current one; month 0 or absent means the whole year.
func (c *ExpenseController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), expense.GetSummaryInput{
		Year:  queryInt(ctx, "year", time.Now().UTC().Year()),
		Month: queryInt(ctx, "month", 0),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(output))
}

// SuggestCategory handles POST /expenses/category-suggestion requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		Particular: req.Particular,
		Amount:     req.Amount,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:    output.Category,
		Subcategory: output.Subcategory,
		Confidence:  output.Confidence,
		Reasoning:   output.Reasoning,
	})
}
