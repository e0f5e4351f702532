package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/church-ledger/backend/internal/application/usecase/expense"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()

	engine := gin.New()
	engine.GET("/fail", func(c *gin.Context) { handleError(c, err) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body dto.ErrorResponse
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &body); decodeErr != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), decodeErr)
	}
	return rec, body
}

func TestHandleError(t *testing.T) {
	var fieldErrs domainerror.ValidationErrors
	fieldErrs.Add("date", domainerror.ErrCodeInvalidDate, "date must be YYYY-MM-DD", nil)
	fieldErrs.Add("amount", domainerror.ErrCodeInvalidAmount, "total must be greater than zero", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation errors",
			err:        fieldErrs,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   string(domainerror.ErrCodeValidationFailed),
		},
		{
			name:       "record not found",
			err:        domainerror.NewLedgerError(domainerror.ErrCodeRecordNotFound, "Collection not found", domainerror.ErrRecordNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   string(domainerror.ErrCodeRecordNotFound),
		},
		{
			name:       "wrapped duplicate control number",
			err:        fmt.Errorf("create: %w", domainerror.NewLedgerError(domainerror.ErrCodeDuplicateControlNumber, "Control number already used", nil)),
			wantStatus: http.StatusConflict,
			wantCode:   string(domainerror.ErrCodeDuplicateControlNumber),
		},
		{
			name:       "export unavailable",
			err:        domainerror.NewLedgerError(domainerror.ErrCodeExportUnavailable, "Sheets export is not configured", nil),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   string(domainerror.ErrCodeExportUnavailable),
		},
		{
			name:       "invalid period",
			err:        domainerror.NewLedgerError(domainerror.ErrCodeInvalidPeriod, "month must be between 1 and 12", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domainerror.ErrCodeInvalidPeriod),
		},
		{
			name:       "budget plan not found",
			err:        domainerror.NewBudgetError(domainerror.ErrCodeBudgetPlanNotFound, "No budget plan for 2026", nil),
			wantStatus: http.StatusNotFound,
			wantCode:   string(domainerror.ErrCodeBudgetPlanNotFound),
		},
		{
			name:       "invalid budget year",
			err:        domainerror.NewBudgetError(domainerror.ErrCodeInvalidBudgetYear, "Invalid year", nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   string(domainerror.ErrCodeInvalidBudgetYear),
		},
		{
			name:       "custom field exists",
			err:        domainerror.NewCustomFieldError(domainerror.ErrCodeCustomFieldAlreadyExists, "Field exists", nil),
			wantStatus: http.StatusConflict,
			wantCode:   string(domainerror.ErrCodeCustomFieldAlreadyExists),
		},
		{
			name:       "custom field value invalid",
			err:        domainerror.NewCustomFieldError(domainerror.ErrCodeInvalidFieldValue, "Not a number", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   string(domainerror.ErrCodeInvalidFieldValue),
		},
		{
			name:       "invalid credentials",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "Invalid email or password", nil),
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(domainerror.ErrCodeInvalidCredentials),
		},
		{
			name:       "forbidden",
			err:        domainerror.NewAuthError(domainerror.ErrCodeForbidden, "Submitter may not record entries", nil),
			wantStatus: http.StatusForbidden,
			wantCode:   string(domainerror.ErrCodeForbidden),
		},
		{
			name:       "email exists",
			err:        domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "Email already registered", nil),
			wantStatus: http.StatusConflict,
			wantCode:   string(domainerror.ErrCodeEmailExists),
		},
		{
			name:       "suggestion timeout",
			err:        &expense.SuggestionError{Code: expense.ErrCodeAITimeout, Message: "too slow", Retryable: true},
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   expense.ErrCodeAITimeout,
		},
		{
			name:       "suggestion parse error",
			err:        &expense.SuggestionError{Code: expense.ErrCodeAIParseError, Message: "unreadable", Retryable: true},
			wantStatus: http.StatusBadGateway,
			wantCode:   expense.ErrCodeAIParseError,
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleErrorValidationFields(t *testing.T) {
	var fieldErrs domainerror.ValidationErrors
	fieldErrs.Add("date", domainerror.ErrCodeInvalidDate, "date must be YYYY-MM-DD", nil)
	fieldErrs.Add("payment_method", domainerror.ErrCodeInvalidPaymentMethod, "unknown payment method", nil)

	_, body := serveError(t, fieldErrs)

	if len(body.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(body.Fields))
	}
	if body.Fields[0].Field != "date" || body.Fields[1].Field != "payment_method" {
		t.Errorf("fields = %+v, want date then payment_method", body.Fields)
	}
	if body.Fields[1].Code != string(domainerror.ErrCodeInvalidPaymentMethod) {
		t.Errorf("second code = %q", body.Fields[1].Code)
	}
}

func TestHandleErrorSuggestionRetryable(t *testing.T) {
	_, body := serveError(t, &expense.SuggestionError{
		Code:      expense.ErrCodeAIAuthError,
		Message:   "misconfigured",
		Retryable: false,
	})

	if body.Retryable == nil {
		t.Fatal("retryable missing from response")
	}
	if *body.Retryable {
		t.Error("retryable = true, want false")
	}
}

type fakeRecorder struct {
	calls []string
}

func (f *fakeRecorder) RecordSubmission(kind, channel, outcome string) {
	f.calls = append(f.calls, kind+"/"+channel+"/"+outcome)
}

func TestRecordSubmission(t *testing.T) {
	var fieldErrs domainerror.ValidationErrors
	fieldErrs.Add("particular", domainerror.ErrCodeMissingRequiredField, "particular is required", nil)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "accepted", err: nil, want: "collection/web/accepted"},
		{name: "validation rejected", err: fieldErrs, want: "collection/web/rejected"},
		{name: "ledger rejected", err: domainerror.NewLedgerError(domainerror.ErrCodeDuplicateControlNumber, "dup", nil), want: "collection/web/rejected"},
		{name: "auth rejected", err: domainerror.NewAuthError(domainerror.ErrCodeForbidden, "no", nil), want: "collection/web/rejected"},
		{name: "storage failure", err: errors.New("disk full"), want: "collection/web/failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			recordSubmission(recorder, "collection", "web", tt.err)
			if len(recorder.calls) != 1 || recorder.calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", recorder.calls, tt.want)
			}
		})
	}

	t.Run("nil recorder is ignored", func(t *testing.T) {
		recordSubmission(nil, "expense", "web", nil)
	})
}

func TestHealthCheck(t *testing.T) {
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name       string
		database   HealthChecker
		cache      HealthChecker
		wantStatus int
		want       HealthResponse
	}{
		{
			name:       "all connected",
			database:   up,
			cache:      up,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "connected", Cache: "connected"},
		},
		{
			name:       "cache disabled",
			database:   up,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "ok", Database: "connected", Cache: "disabled"},
		},
		{
			name:       "cache down degrades",
			database:   up,
			cache:      down,
			wantStatus: http.StatusOK,
			want:       HealthResponse{Status: "degraded", Database: "connected", Cache: "disconnected"},
		},
		{
			name:       "database down",
			database:   down,
			cache:      up,
			wantStatus: http.StatusServiceUnavailable,
			want:       HealthResponse{Status: "unavailable", Database: "disconnected", Cache: "connected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.database, tt.cache).Check)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var got HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Status != tt.want.Status || got.Database != tt.want.Database || got.Cache != tt.want.Cache {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Timestamp == "" {
				t.Error("timestamp is empty")
			}
		})
	}
}

func TestRequestParameterParsing(t *testing.T) {
	engine := gin.New()
	engine.GET("/budgets/:year", func(c *gin.Context) {
		year, ok := parseYearParam(c)
		if !ok {
			return
		}
		start, ok := parseOptionalDate(c, "start_date", c.Query("start_date"))
		if !ok {
			return
		}
		body := gin.H{"year": year, "page": queryInt(c, "page", 1), "has_start": start != nil}
		c.JSON(http.StatusOK, body)
	})
	engine.GET("/collections/:id", func(c *gin.Context) {
		if _, ok := parseIDParam(c, "id"); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "year only", path: "/budgets/2026", wantStatus: http.StatusOK, wantBody: `{"has_start":false,"page":1,"year":2026}`},
		{name: "malformed page falls back", path: "/budgets/2026?page=abc", wantStatus: http.StatusOK, wantBody: `{"has_start":false,"page":1,"year":2026}`},
		{name: "valid start date", path: "/budgets/2026?start_date=2026-03-01&page=3", wantStatus: http.StatusOK, wantBody: `{"has_start":true,"page":3,"year":2026}`},
		{name: "invalid year", path: "/budgets/twenty", wantStatus: http.StatusBadRequest},
		{name: "invalid start date", path: "/budgets/2026?start_date=03/01/2026", wantStatus: http.StatusBadRequest},
		{name: "invalid uuid", path: "/collections/not-a-uuid", wantStatus: http.StatusBadRequest},
		{name: "valid uuid", path: "/collections/7f0c3c5e-2a7b-4e0a-9a43-5f3f8f0f6c11", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %s, want %s", rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusBadRequest {
				var body dto.ErrorResponse
				_ = json.Unmarshal(rec.Body.Bytes(), &body)
				if body.Code != string(domainerror.ErrCodeMalformedRequest) {
					t.Errorf("code = %q, want malformed request", body.Code)
				}
			}
		})
	}
}
