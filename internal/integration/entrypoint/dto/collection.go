package dto

import (
	"time"

	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// CollectionRequest is the body of collection create and update requests.
// Amounts accept numbers or numeric strings; blank or malformed amounts count as zero.
type CollectionRequest struct {
	Date                  string `json:"date"`
	Particular            string `json:"particular" binding:"omitempty,max=500"`
	ControlNumber         string `json:"control_number" binding:"omitempty,max=50"`
	PaymentMethod         string `json:"payment_method"`
	TotalAmount           any    `json:"total_amount"`
	GeneralTithesOffering any    `json:"general_tithes_offering"`
	BankInterest          any    `json:"bank_interest"`
	Sisterhood            any    `json:"sisterhood"`
	Brotherhood           any    `json:"brotherhood"`
	Youth                 any    `json:"youth"`
	Couples               any    `json:"couples"`
	SundaySchool          any    `json:"sunday_school"`
	SpecialPurposePledge  any    `json:"special_purpose_pledge"`
}

// ToDraft converts the request into a pipeline draft.
func (r CollectionRequest) ToDraft() ledger.CollectionDraft {
	return ledger.CollectionDraft{
		Date:          r.Date,
		Particular:    r.Particular,
		ControlNumber: r.ControlNumber,
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   r.TotalAmount,
		Amounts: ledger.CollectionAmountsDraft{
			GeneralTithesOffering: r.GeneralTithesOffering,
			BankInterest:          r.BankInterest,
			Sisterhood:            r.Sisterhood,
			Brotherhood:           r.Brotherhood,
			Youth:                 r.Youth,
			Couples:               r.Couples,
			SundaySchool:          r.SundaySchool,
			SpecialPurposePledge:  r.SpecialPurposePledge,
		},
	}
}

// CollectionResponse represents a collection in API responses.
type CollectionResponse struct {
	ID                    string    `json:"id"`
	Date                  string    `json:"date"`
	Particular            string    `json:"particular"`
	ControlNumber         string    `json:"control_number,omitempty"`
	PaymentMethod         string    `json:"payment_method"`
	TotalAmount           string    `json:"total_amount"`
	GeneralTithesOffering string    `json:"general_tithes_offering"`
	BankInterest          string    `json:"bank_interest"`
	Sisterhood            string    `json:"sisterhood"`
	Brotherhood           string    `json:"brotherhood"`
	Youth                 string    `json:"youth"`
	Couples               string    `json:"couples"`
	SundaySchool          string    `json:"sunday_school"`
	SpecialPurposePledge  string    `json:"special_purpose_pledge"`
	SharedFundShare       string    `json:"shared_fund_share"`
	PastoralTeamShare     string    `json:"pastoral_team_share"`
	OperationalFundShare  string    `json:"operational_fund_share"`
	CreatedBy             string    `json:"created_by"`
	SubmittedVia          string    `json:"submitted_via"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// CollectionTotalsResponse holds the sums of every collection matching a filter.
type CollectionTotalsResponse struct {
	TotalAmount          string `json:"total_amount"`
	GeneralTithes        string `json:"general_tithes_offering"`
	SharedFundShare      string `json:"shared_fund_share"`
	PastoralTeamShare    string `json:"pastoral_team_share"`
	OperationalFundShare string `json:"operational_fund_share"`
}

// CollectionListResponse represents a page of collections.
type CollectionListResponse struct {
	Collections []CollectionResponse     `json:"collections"`
	Pagination  PaginationResponse       `json:"pagination"`
	Totals      CollectionTotalsResponse `json:"totals"`
}

// ToCollectionResponse converts a collection entity to its response DTO.
func ToCollectionResponse(c *entity.Collection) CollectionResponse {
	return CollectionResponse{
		ID:                    c.ID.String(),
		Date:                  c.Date.Format(ledger.DateLayout),
		Particular:            c.Particular,
		ControlNumber:         c.ControlNumber,
		PaymentMethod:         string(c.PaymentMethod),
		TotalAmount:           c.TotalAmount.StringFixed(2),
		GeneralTithesOffering: c.Amounts.GeneralTithesOffering.StringFixed(2),
		BankInterest:          c.Amounts.BankInterest.StringFixed(2),
		Sisterhood:            c.Amounts.Sisterhood.StringFixed(2),
		Brotherhood:           c.Amounts.Brotherhood.StringFixed(2),
		Youth:                 c.Amounts.Youth.StringFixed(2),
		Couples:               c.Amounts.Couples.StringFixed(2),
		SundaySchool:          c.Amounts.SundaySchool.StringFixed(2),
		SpecialPurposePledge:  c.Amounts.SpecialPurposePledge.StringFixed(2),
		SharedFundShare:       c.Allocation.SharedFundShare.StringFixed(2),
		PastoralTeamShare:     c.Allocation.PastoralTeamShare.StringFixed(2),
		OperationalFundShare:  c.Allocation.OperationalFundShare.StringFixed(2),
		CreatedBy:             c.CreatedBy,
		SubmittedVia:          string(c.SubmittedVia),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

// ToCollectionListResponse converts a list result to its response DTO.
func ToCollectionListResponse(result *entity.CollectionListResult) CollectionListResponse {
	collections := make([]CollectionResponse, len(result.Collections))
	for i, c := range result.Collections {
		collections[i] = ToCollectionResponse(c)
	}

	return CollectionListResponse{
		Collections: collections,
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Totals: CollectionTotalsResponse{
			TotalAmount:          result.Totals.TotalAmount.StringFixed(2),
			GeneralTithes:        result.Totals.GeneralTithes.StringFixed(2),
			SharedFundShare:      result.Totals.SharedFundShare.StringFixed(2),
			PastoralTeamShare:    result.Totals.PastoralTeamShare.StringFixed(2),
			OperationalFundShare: result.Totals.OperationalFundShare.StringFixed(2),
		},
	}
}
