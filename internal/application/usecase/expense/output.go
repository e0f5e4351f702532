// Package expense contains expense-related use cases.
package expense

import (
	"errors"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

const (
	// DefaultPageLimit is used when no limit is requested.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size.
	MaxPageLimit = 100
)

// ExpenseOutput wraps an expense returned by a use case.
type ExpenseOutput struct {
	Expense *entity.Expense
}

func notFound(err error) error {
	return domainerror.NewLedgerError(domainerror.ErrCodeRecordNotFound, "expense not found", err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrRecordNotFound)
}
