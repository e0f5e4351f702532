package expense

import (
	"context"
	"log/slog"
	"strings"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// SuggestCategoryInput represents the expense text to classify.
type SuggestCategoryInput struct {
	Particular string
	Amount     any
}

// SuggestCategoryOutput is the suggested category.
type SuggestCategoryOutput struct {
	Category    string
	Subcategory string
	Confidence  float64
	Reasoning   string
}

// SuggestCategoryUseCase asks the language model for an expense category.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggester: suggester,
	}
}

// Execute returns one of entity.ExpenseCategories for the particular.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	particular := strings.TrimSpace(input.Particular)
	if particular == "" {
		var errs domainerror.ValidationErrors
		errs.Add("particular", domainerror.ErrCodeMissingRequiredField, "particular is required", domainerror.ErrMissingRequiredField)
		return nil, errs
	}

	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestions are not configured",
			nil,
		)
	}

	suggestion, err := uc.suggester.Suggest(ctx, adapter.CategorySuggestionRequest{
		Particular: particular,
		Amount:     valueobject.NormalizeAmount(input.Amount).StringFixed(2),
		Categories: entity.ExpenseCategories,
	})
	if err != nil {
		classified := classifyError(err)
		slog.Warn("Category suggestion failed",
			"code", classified.Code,
			"retryable", classified.Retryable,
			"error", err,
		)
		return nil, classified
	}

	if !entity.IsKnownExpenseCategory(suggestion.Category) {
		slog.Warn("Model suggested an unknown category", "category", suggestion.Category)
		return nil, &SuggestionError{
			Code:      ErrCodeAIParseError,
			Message:   errorMessages[ErrCodeAIParseError],
			Retryable: true,
			Err:       domainerror.ErrUnknownCategory,
		}
	}

	return &SuggestCategoryOutput{
		Category:    suggestion.Category,
		Subcategory: suggestion.Subcategory,
		Confidence:  suggestion.Confidence,
		Reasoning:   suggestion.Reasoning,
	}, nil
}
