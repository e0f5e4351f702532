// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// PaymentMethod is how a collection was received.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodGCash        PaymentMethod = "GCash"
	PaymentMethodOnline       PaymentMethod = "Online"
)

// DefaultPaymentMethod is used when a submission names none.
const DefaultPaymentMethod = PaymentMethodCash

// IsValid reports whether the payment method is one of the known methods.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodGCash, PaymentMethodOnline:
		return true
	}
	return false
}

// SubmissionChannel records where a record was submitted from.
type SubmissionChannel string

const (
	SubmittedViaWeb        SubmissionChannel = "web"
	SubmittedViaGoogleForm SubmissionChannel = "google_form"
)

// CollectionAmounts holds the category sub-amounts of a collection.
// Everything except GeneralTithesOffering is pass-through money and is never
// redistributed across the funds.
type CollectionAmounts struct {
	GeneralTithesOffering decimal.Decimal
	BankInterest          decimal.Decimal
	Sisterhood            decimal.Decimal
	Brotherhood           decimal.Decimal
	Youth                 decimal.Decimal
	Couples               decimal.Decimal
	SundaySchool          decimal.Decimal
	SpecialPurposePledge  decimal.Decimal
}

// List returns every sub-amount in a fixed order.
func (a CollectionAmounts) List() []decimal.Decimal {
	return []decimal.Decimal{
		a.GeneralTithesOffering,
		a.BankInterest,
		a.Sisterhood,
		a.Brotherhood,
		a.Youth,
		a.Couples,
		a.SundaySchool,
		a.SpecialPurposePledge,
	}
}

// Collection is an income record.
type Collection struct {
	ID            uuid.UUID
	Date          time.Time
	Particular    string
	ControlNumber string
	PaymentMethod PaymentMethod
	TotalAmount   decimal.Decimal
	Amounts       CollectionAmounts
	Allocation    valueobject.FundAllocation
	CreatedBy     string
	SubmittedVia  SubmissionChannel
	SourcePayload map[string]string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCollection creates a new Collection with a fresh ID and timestamps.
func NewCollection(date time.Time, particular string, createdBy string, via SubmissionChannel) *Collection {
	now := time.Now().UTC()
	return &Collection{
		ID:            uuid.New(),
		Date:          date,
		Particular:    particular,
		PaymentMethod: DefaultPaymentMethod,
		CreatedBy:     createdBy,
		SubmittedVia:  via,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CollectionFilter narrows collection listings.
type CollectionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// CollectionTotals aggregates a filtered set of collections.
type CollectionTotals struct {
	TotalAmount          decimal.Decimal
	GeneralTithes        decimal.Decimal
	SharedFundShare      decimal.Decimal
	PastoralTeamShare    decimal.Decimal
	OperationalFundShare decimal.Decimal
}

// CollectionListResult is a page of collections plus totals over the whole filter.
type CollectionListResult struct {
	Collections []*Collection
	Totals      CollectionTotals
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
}
