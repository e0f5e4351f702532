package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/budget"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget plan endpoints.
type BudgetController struct {
	saveUseCase    *budget.SaveBudgetPlanUseCase
	getUseCase     *budget.GetBudgetPlanUseCase
	listUseCase    *budget.ListBudgetPlansUseCase
	deleteUseCase  *budget.DeleteBudgetPlanUseCase
	compareUseCase *budget.CompareBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	saveUseCase *budget.SaveBudgetPlanUseCase,
	getUseCase *budget.GetBudgetPlanUseCase,
	listUseCase *budget.ListBudgetPlansUseCase,
	deleteUseCase *budget.DeleteBudgetPlanUseCase,
	compareUseCase *budget.CompareBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		saveUseCase:    saveUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		compareUseCase: compareUseCase,
	}
}

// Save handles PUT /budgets/:year requests. Categories are replaced as a whole.
func (c *BudgetController) Save(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	var req dto.SaveBudgetPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), req.ToInput(year, email))
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanResponse(output))
}

// Get handles GET /budgets/:year requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), year)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanResponse(output))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	plans, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"budget_plans": dto.ToBudgetPlanSummaries(plans)})
}

// Delete handles DELETE /budgets/:year requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	email, ok := requireEmail(ctx)
	if !ok {
		return
	}
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), year, email); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Compare handles GET /budgets/:year/comparison?month= requests.
func (c *BudgetController) Compare(ctx *gin.Context) {
	year, ok := parseYearParam(ctx)
	if !ok {
		return
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), budget.CompareBudgetInput{
		Year:  year,
		Month: queryInt(ctx, "month", 0),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetComparisonResponse(output))
}
