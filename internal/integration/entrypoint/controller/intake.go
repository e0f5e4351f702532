package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/intake"
	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

// IntakeController handles relayed form submissions.
type IntakeController struct {
	submitUseCase *intake.SubmitFormUseCase
	submissions   SubmissionRecorder
}

// NewIntakeController creates a new intake controller instance.
func NewIntakeController(submitUseCase *intake.SubmitFormUseCase, submissions SubmissionRecorder) *IntakeController {
	return &IntakeController{
		submitUseCase: submitUseCase,
		submissions:   submissions,
	}
}

// SubmitGoogleForm handles POST /intake/google-form requests.
// The relay token middleware has already authenticated the caller.
func (c *IntakeController) SubmitGoogleForm(ctx *gin.Context) {
	var req dto.FormSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}

	output, err := c.submitUseCase.Execute(ctx.Request.Context(), intake.SubmitFormInput{
		Kind:           req.Kind,
		SubmitterEmail: req.SubmitterEmail,
		Payload:        req.Payload,
	})
	recordSubmission(c.submissions, req.Kind, string(entity.SubmittedViaGoogleForm), err)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFormSubmissionResponse(output))
}
