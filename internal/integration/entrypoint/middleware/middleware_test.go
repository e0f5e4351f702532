package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokenService struct {
	claims map[string]*adapter.TokenClaims
}

func (f *fakeTokenService) GenerateTokenPair(_ context.Context, _ *entity.User) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := f.claims[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (f *fakeTokenService) ValidateRefreshToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) InvalidateRefreshToken(_ context.Context, _ string) error {
	return nil
}

func (f *fakeTokenService) IsRefreshTokenValid(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	tokens := &fakeTokenService{claims: map[string]*adapter.TokenClaims{
		"admin-token":     {UserID: uuid.New(), Email: "admin@church.test", Role: entity.RoleAdmin},
		"treasurer-token": {UserID: uuid.New(), Email: "treasurer@church.test", Role: entity.RoleTreasurer},
		"viewer-token":    {UserID: uuid.New(), Email: "viewer@church.test", Role: entity.RoleViewer},
	}}
	auth := NewAuthMiddleware(tokens)

	engine := gin.New()
	engine.POST("/collections", auth.Authenticate(), RequireRole(entity.RoleTreasurer), func(c *gin.Context) {
		email, _ := GetUserEmailFromContext(c)
		c.String(http.StatusOK, email)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "viewer is forbidden", header: "Bearer viewer-token", wantStatus: http.StatusForbidden},
		{name: "treasurer allowed", header: "Bearer treasurer-token", wantStatus: http.StatusOK, wantBody: "treasurer@church.test"},
		{name: "admin allowed", header: "Bearer admin-token", wantStatus: http.StatusOK, wantBody: "admin@church.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/collections", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRelayToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantStatus int
	}{
		{name: "matching token", configured: "s3cret", sent: "s3cret", wantStatus: http.StatusNoContent},
		{name: "wrong token", configured: "s3cret", sent: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing token", configured: "s3cret", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "relay disabled", configured: "", sent: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.POST("/intake", RelayToken(tt.configured), func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodPost, "/intake", nil)
			if tt.sent != "" {
				req.Header.Set(RelayTokenHeader, tt.sent)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiterWithConfig(2, time.Minute)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := hit(); got != http.StatusOK {
		t.Fatalf("first attempt = %d", got)
	}
	if got := hit(); got != http.StatusOK {
		t.Fatalf("second attempt = %d", got)
	}
	if got := hit(); got != http.StatusTooManyRequests {
		t.Fatalf("third attempt = %d, want 429", got)
	}

	now = now.Add(2 * time.Minute)
	if got := hit(); got != http.StatusOK {
		t.Fatalf("attempt after window = %d, want 200", got)
	}

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	if len(rl.entries) != 0 {
		t.Errorf("entries after cleanup = %d, want 0", len(rl.entries))
	}
}

type recordingObserver struct {
	routes   []string
	statuses []int
}

func (r *recordingObserver) ObserveRequest(_ string, route string, status int, _ time.Duration) {
	r.routes = append(r.routes, route)
	r.statuses = append(r.statuses, status)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	observer := &recordingObserver{}
	engine := gin.New()
	engine.Use(Metrics(observer))
	engine.GET("/collections/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/collections/a", "/collections/b", "/missing"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []string{"/collections/:id", "/collections/:id", ""}
	if len(observer.routes) != len(want) {
		t.Fatalf("observed %d requests, want %d", len(observer.routes), len(want))
	}
	for i := range want {
		if observer.routes[i] != want[i] {
			t.Errorf("route[%d] = %q, want %q", i, observer.routes[i], want[i])
		}
	}
	if observer.statuses[2] != http.StatusNotFound {
		t.Errorf("unmatched status = %d, want 404", observer.statuses[2])
	}
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	if err := registerValidators(v); err != nil {
		t.Fatalf("registerValidators() = %v", err)
	}

	tests := []struct {
		value string
		valid bool
	}{
		{"usher_count", true},
		{"Usher Count", false},
		{"9lives", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := v.Var(tt.value, "fieldname")
			if (err == nil) != tt.valid {
				t.Errorf("fieldname(%q) error = %v, want valid=%v", tt.value, err, tt.valid)
			}
		})
	}
}

func TestSetupValidator(t *testing.T) {
	if err := SetupValidator(); err != nil {
		t.Fatalf("SetupValidator() = %v", err)
	}

	type request struct {
		SubmitterEmail string `json:"submitter_email" binding:"required,email"`
		Kind           string `json:"kind" binding:"required,oneof=collection expense"`
		FieldName      string `json:"field_name" binding:"omitempty,fieldname"`
	}

	tests := []struct {
		name        string
		req         request
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing email",
			req:         request{Kind: "collection"},
			wantField:   "submitter_email",
			wantMessage: "submitter_email is required",
		},
		{
			name:        "unknown kind",
			req:         request{SubmitterEmail: "treasurer@church.test", Kind: "budget"},
			wantField:   "kind",
			wantMessage: "kind must be one of: collection expense",
		},
		{
			name:        "field name with spaces",
			req:         request{SubmitterEmail: "treasurer@church.test", Kind: "expense", FieldName: "Usher Count"},
			wantField:   "field_name",
			wantMessage: "field_name must start with a lowercase letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.req)
			var errs validator.ValidationErrors
			if !errors.As(err, &errs) || len(errs) != 1 {
				t.Fatalf("ValidateStruct() = %v, want one field error", err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("field = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if got := ValidationMessage(errs[0]); !strings.HasPrefix(got, tt.wantMessage) {
				t.Errorf("message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}
