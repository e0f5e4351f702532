package collection

import (
	"errors"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// duplicateControlNumber turns a unique index violation caught at insert time
// into the same field error the validator reports.
func duplicateControlNumber(err error, controlNumber string) error {
	if !errors.Is(err, domainerror.ErrDuplicateControlNumber) {
		return nil
	}
	var errs domainerror.ValidationErrors
	errs.Add("control_number", domainerror.ErrCodeDuplicateControlNumber,
		"control number \""+controlNumber+"\" is already used",
		domainerror.ErrDuplicateControlNumber)
	return errs
}

// notFound builds the error returned for a missing collection.
func notFound(err error) error {
	return domainerror.NewLedgerError(domainerror.ErrCodeRecordNotFound, "collection not found", err)
}

// isNotFound reports whether err means the collection does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrRecordNotFound)
}

// CollectionOutput wraps a collection returned by a use case.
type CollectionOutput struct {
	Collection *entity.Collection
}
