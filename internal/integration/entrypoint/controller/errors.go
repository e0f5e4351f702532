package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/church-ledger/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the HTTP response for a use case error.
func handleError(ctx *gin.Context, err error) {
	var validationErrs domainerror.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]dto.FieldErrorResponse, len(validationErrs))
		for i, fe := range validationErrs {
			fields[i] = dto.FieldErrorResponse{
				Field:   fe.Field,
				Code:    string(fe.Code),
				Message: fe.Message,
			}
		}
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  "Validation failed",
			Code:   string(domainerror.ErrCodeValidationFailed),
			Fields: fields,
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		status := http.StatusBadRequest
		if budgetErr.Code == domainerror.ErrCodeBudgetPlanNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var fieldErr *domainerror.CustomFieldError
	if errors.As(err, &fieldErr) {
		ctx.JSON(statusForCustomFieldError(fieldErr.Code), dto.ErrorResponse{
			Error: fieldErr.Message,
			Code:  string(fieldErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var suggestionErr *expense.SuggestionError
	if errors.As(err, &suggestionErr) {
		retryable := suggestionErr.Retryable
		ctx.JSON(statusForSuggestionError(suggestionErr.Code), dto.ErrorResponse{
			Error:     suggestionErr.Message,
			Code:      suggestionErr.Code,
			Retryable: &retryable,
		})
		return
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateControlNumber:
		return http.StatusConflict
	case domainerror.ErrCodeSuggestionUnavailable,
		domainerror.ErrCodeExportUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeMissingRequiredField,
		domainerror.ErrCodeInvalidFundSource,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeMalformedRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForCustomFieldError maps custom field error codes to HTTP status codes.
func statusForCustomFieldError(code domainerror.CustomFieldErrorCode) int {
	switch code {
	case domainerror.ErrCodeCustomFieldNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCustomFieldAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFieldValue,
		domainerror.ErrCodeRequiredFieldMissing,
		domainerror.ErrCodeCustomFieldInactive:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// statusForAuthError maps auth error codes to HTTP status codes.
func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidRelayToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeForbidden:
		return http.StatusForbidden
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// statusForSuggestionError maps suggestion failures to HTTP status codes.
func statusForSuggestionError(code string) int {
	switch code {
	case expense.ErrCodeAIRateLimited:
		return http.StatusTooManyRequests
	case expense.ErrCodeAITimeout:
		return http.StatusGatewayTimeout
	case expense.ErrCodeAIServiceUnavailable,
		expense.ErrCodeAIAuthError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// badRequest writes a 400 for an unreadable body or parameter.
func badRequest(ctx *gin.Context, message string, err error) {
	resp := dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeMalformedRequest),
	}
	if err != nil {
		resp.Details = err.Error()
	}

	var bindErrs validator.ValidationErrors
	if errors.As(err, &bindErrs) {
		for _, fe := range bindErrs {
			resp.Fields = append(resp.Fields, dto.FieldErrorResponse{
				Field:   fe.Field(),
				Code:    string(domainerror.ErrCodeMalformedRequest),
				Message: middleware.ValidationMessage(fe),
			})
		}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// requireEmail returns the authenticated user's email or writes a 401.
func requireEmail(ctx *gin.Context) (string, bool) {
	email, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", false
	}
	return email, true
}

// parseIDParam reads a UUID path parameter or writes a 400.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// parseYearParam reads the :year path parameter or writes a 400.
func parseYearParam(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		badRequest(ctx, "Invalid year", nil)
		return 0, false
	}
	return year, true
}

// parseOptionalDate reads a YYYY-MM-DD value; an empty value yields nil.
func parseOptionalDate(ctx *gin.Context, name, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(ledger.DateLayout, value)
	if err != nil {
		badRequest(ctx, "Invalid "+name+", expected YYYY-MM-DD", nil)
		return nil, false
	}
	return &t, true
}

// queryInt reads an integer query parameter, falling back when absent or malformed.
func queryInt(ctx *gin.Context, name string, fallback int) int {
	if v := ctx.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
