package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/export"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// xlsxContentType is the media type of Office Open XML workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles spreadsheet exports.
type ExportController struct {
	sheetsUseCase   *export.ExportToSheetsUseCase
	workbookUseCase *export.BuildWorkbookUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(
	sheetsUseCase *export.ExportToSheetsUseCase,
	workbookUseCase *export.BuildWorkbookUseCase,
) *ExportController {
	return &ExportController{
		sheetsUseCase:   sheetsUseCase,
		workbookUseCase: workbookUseCase,
	}
}

// ExportToSheets handles POST /exports/sheets requests.
func (c *ExportController) ExportToSheets(ctx *gin.Context) {
	var req dto.ExportToSheetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	startDate, ok := parseOptionalDate(ctx, "start_date", req.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(ctx, "end_date", req.EndDate)
	if !ok {
		return
	}

	output, err := c.sheetsUseCase.Execute(ctx.Request.Context(), export.ExportToSheetsInput{
		Kind:      req.Kind,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExportToSheetsResponse{
		Tab:          output.Tab,
		UpdatedRange: output.UpdatedRange,
		Rows:         output.Rows,
	})
}

// DownloadWorkbook handles GET /exports/workbook?kind=&start_date=&end_date= requests.
func (c *ExportController) DownloadWorkbook(ctx *gin.Context) {
	startDate, ok := parseOptionalDate(ctx, "start_date", ctx.Query("start_date"))
	if !ok {
		return
	}
	endDate, ok := parseOptionalDate(ctx, "end_date", ctx.Query("end_date"))
	if !ok {
		return
	}

	output, err := c.workbookUseCase.Execute(ctx.Request.Context(), export.BuildWorkbookInput{
		Kind:      ctx.Query("kind"),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, output.Content)
}
