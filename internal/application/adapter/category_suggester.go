// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest carries the expense text to classify.
type CategorySuggestionRequest struct {
	Particular string
	Amount     string
	Categories []string
}

// CategorySuggestion is the model's pick.
type CategorySuggestion struct {
	Category    string
	Subcategory string
	Confidence  float64
	Reasoning   string
}

// CategorySuggester suggests an expense category for a description.
type CategorySuggester interface {
	// Suggest returns a category chosen from request.Categories.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the service is available and properly configured.
	IsAvailable() bool
}
