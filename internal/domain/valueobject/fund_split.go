package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// FundSplit holds the percentages of general tithes sent to each fund.
type FundSplit struct {
	SharedFund   decimal.Decimal `json:"shared_fund"`
	PastoralTeam decimal.Decimal `json:"pastoral_team"`
	Operational  decimal.Decimal `json:"operational"`
}

// DefaultFundSplit returns the 10/10/80 split.
func DefaultFundSplit() FundSplit {
	return FundSplit{
		SharedFund:   decimal.NewFromInt(10),
		PastoralTeam: decimal.NewFromInt(10),
		Operational:  decimal.NewFromInt(80),
	}
}

// NewFundSplit builds a split, rejecting negative percentages.
// Splits that do not add up to 100 are accepted.
func NewFundSplit(shared, pastoral, operational decimal.Decimal) (FundSplit, error) {
	if shared.IsNegative() || pastoral.IsNegative() || operational.IsNegative() {
		return FundSplit{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPercentage,
			"fund split percentages cannot be negative",
			domainerror.ErrInvalidPercentage,
		)
	}
	return FundSplit{SharedFund: shared, PastoralTeam: pastoral, Operational: operational}, nil
}

// Total returns the sum of the three percentages.
func (s FundSplit) Total() decimal.Decimal {
	return s.SharedFund.Add(s.PastoralTeam).Add(s.Operational)
}

// IsBalanced reports whether the percentages add up to exactly 100.
func (s FundSplit) IsBalanced() bool {
	return s.Total().Equal(hundred)
}

// FundAllocation is the result of splitting general tithes across the funds.
type FundAllocation struct {
	SharedFundShare      decimal.Decimal
	PastoralTeamShare    decimal.Decimal
	OperationalFundShare decimal.Decimal
}

// Total returns the sum of the three shares.
func (a FundAllocation) Total() decimal.Decimal {
	return a.SharedFundShare.Add(a.PastoralTeamShare).Add(a.OperationalFundShare)
}

// Residual returns what rounding left unallocated (negative when over-allocated).
func (a FundAllocation) Residual(generalTithes decimal.Decimal) decimal.Decimal {
	return generalTithes.Sub(a.Total())
}

// Allocate computes each share as round2(generalTithes * percent / 100).
// Shares are rounded independently and never adjusted to absorb the residual.
func Allocate(generalTithes decimal.Decimal, split FundSplit) (FundAllocation, error) {
	if generalTithes.IsNegative() {
		return FundAllocation{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"general tithes cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	return FundAllocation{
		SharedFundShare:      PercentOf(generalTithes, split.SharedFund),
		PastoralTeamShare:    PercentOf(generalTithes, split.PastoralTeam),
		OperationalFundShare: PercentOf(generalTithes, split.Operational),
	}, nil
}
