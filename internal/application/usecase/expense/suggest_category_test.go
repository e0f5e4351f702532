package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		name         string
		suggester    *fakeSuggester
		particular   string
		expectedCat  string
		expectedCode string
		ledgerCode   domainerror.LedgerErrorCode
	}{
		{
			name: "known category",
			suggester: &fakeSuggester{
				available:  true,
				suggestion: &adapter.CategorySuggestion{Category: "Benevolence", Confidence: 0.9},
			},
			particular:  "Hospital bill assistance for member",
			expectedCat: "Benevolence",
		},
		{
			name:       "not configured",
			suggester:  &fakeSuggester{available: false},
			particular: "Electric bill",
			ledgerCode: domainerror.ErrCodeSuggestionUnavailable,
		},
		{
			name: "unknown category from model",
			suggester: &fakeSuggester{
				available:  true,
				suggestion: &adapter.CategorySuggestion{Category: "Groceries"},
			},
			particular:   "Snacks",
			expectedCode: ErrCodeAIParseError,
		},
		{
			name:         "rate limited",
			suggester:    &fakeSuggester{available: true, err: errors.New("googleapi: Error 429: Resource exhausted")},
			particular:   "Snacks",
			expectedCode: ErrCodeAIRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSuggestCategoryUseCase(tt.suggester)
			out, err := uc.Execute(context.Background(), SuggestCategoryInput{Particular: tt.particular, Amount: "1500"})

			switch {
			case tt.expectedCat != "":
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Category != tt.expectedCat {
					t.Errorf("category = %q, want %q", out.Category, tt.expectedCat)
				}
				if tt.suggester.lastReq.Amount != "1500.00" || len(tt.suggester.lastReq.Categories) == 0 {
					t.Errorf("request = %+v", tt.suggester.lastReq)
				}
			case tt.ledgerCode != "":
				var ledgerErr *domainerror.LedgerError
				if !errors.As(err, &ledgerErr) || ledgerErr.Code != tt.ledgerCode {
					t.Errorf("expected ledger code %s, got %v", tt.ledgerCode, err)
				}
			default:
				var sugErr *SuggestionError
				if !errors.As(err, &sugErr) || sugErr.Code != tt.expectedCode {
					t.Errorf("expected suggestion code %s, got %v", tt.expectedCode, err)
				}
			}
		})
	}
}

func TestSuggestCategory_MissingParticular(t *testing.T) {
	uc := NewSuggestCategoryUseCase(&fakeSuggester{available: true})
	_, err := uc.Execute(context.Background(), SuggestCategoryInput{Particular: "  "})
	if !errors.Is(err, domainerror.ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		{name: "context deadline exceeded", err: context.DeadlineExceeded, expectedCode: ErrCodeAITimeout, expectRetry: true},
		{name: "context canceled", err: context.Canceled, expectedCode: ErrCodeAITimeout, expectRetry: true},
		{name: "quota error", err: errors.New("quota exceeded"), expectedCode: ErrCodeAIRateLimited, expectRetry: true},
		{name: "403 forbidden", err: errors.New("403 forbidden"), expectedCode: ErrCodeAIAuthError, expectRetry: false},
		{name: "invalid api key", err: errors.New("invalid api key"), expectedCode: ErrCodeAIAuthError, expectRetry: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), expectedCode: ErrCodeAIServiceUnavailable, expectRetry: true},
		{name: "json error", err: errors.New("invalid character in json"), expectedCode: ErrCodeAIParseError, expectRetry: true},
		{name: "anything else", err: errors.New("boom"), expectedCode: ErrCodeAIUnknownError, expectRetry: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if got.Code != tt.expectedCode {
				t.Errorf("code = %s, want %s", got.Code, tt.expectedCode)
			}
			if got.Retryable != tt.expectRetry {
				t.Errorf("retryable = %v, want %v", got.Retryable, tt.expectRetry)
			}
			if got.Message == "" {
				t.Error("message should not be empty")
			}
			if !errors.Is(got, tt.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}
