// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// SplitCache caches the resolved fund split of a year.
type SplitCache interface {
	// Get returns the cached split and true, or false on a miss.
	Get(ctx context.Context, year int) (valueobject.FundSplit, bool, error)

	// Set stores the split of a year.
	Set(ctx context.Context, year int, split valueobject.FundSplit) error

	// Invalidate drops the cached split of a year.
	Invalidate(ctx context.Context, year int) error
}
