package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// CollectionModel represents the collections table in the database.
// An empty control number is stored as NULL so it never collides.
type CollectionModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date                  time.Time       `gorm:"type:date;not null;index"`
	Particular            string          `gorm:"type:varchar(255)"`
	ControlNumber         *string         `gorm:"type:varchar(100);uniqueIndex"`
	PaymentMethod         string          `gorm:"type:varchar(30);not null;default:'Cash'"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	GeneralTithesOffering decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BankInterest          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Sisterhood            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Brotherhood           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Youth                 decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Couples               decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SundaySchool          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SpecialPurposePledge  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SharedFundShare       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PastoralTeamShare     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	OperationalFundShare  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedBy             string          `gorm:"type:varchar(255)"`
	SubmittedVia          string          `gorm:"type:varchar(20);not null;default:'web'"`
	SourcePayload         datatypes.JSON
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName returns the table name for the CollectionModel.
func (CollectionModel) TableName() string {
	return "collections"
}

// ToEntity converts a CollectionModel to a domain Collection entity.
func (m *CollectionModel) ToEntity() *entity.Collection {
	return &entity.Collection{
		ID:            m.ID,
		Date:          m.Date.UTC(),
		Particular:    m.Particular,
		ControlNumber: derefString(m.ControlNumber),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		TotalAmount:   m.TotalAmount,
		Amounts: entity.CollectionAmounts{
			GeneralTithesOffering: m.GeneralTithesOffering,
			BankInterest:          m.BankInterest,
			Sisterhood:            m.Sisterhood,
			Brotherhood:           m.Brotherhood,
			Youth:                 m.Youth,
			Couples:               m.Couples,
			SundaySchool:          m.SundaySchool,
			SpecialPurposePledge:  m.SpecialPurposePledge,
		},
		Allocation: valueobject.FundAllocation{
			SharedFundShare:      m.SharedFundShare,
			PastoralTeamShare:    m.PastoralTeamShare,
			OperationalFundShare: m.OperationalFundShare,
		},
		CreatedBy:     m.CreatedBy,
		SubmittedVia:  entity.SubmissionChannel(m.SubmittedVia),
		SourcePayload: decodePayload(m.SourcePayload),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CollectionFromEntity creates a CollectionModel from a domain Collection entity.
func CollectionFromEntity(c *entity.Collection) *CollectionModel {
	return &CollectionModel{
		ID:                    c.ID,
		Date:                  c.Date,
		Particular:            c.Particular,
		ControlNumber:         nullableString(c.ControlNumber),
		PaymentMethod:         string(c.PaymentMethod),
		TotalAmount:           c.TotalAmount,
		GeneralTithesOffering: c.Amounts.GeneralTithesOffering,
		BankInterest:          c.Amounts.BankInterest,
		Sisterhood:            c.Amounts.Sisterhood,
		Brotherhood:           c.Amounts.Brotherhood,
		Youth:                 c.Amounts.Youth,
		Couples:               c.Amounts.Couples,
		SundaySchool:          c.Amounts.SundaySchool,
		SpecialPurposePledge:  c.Amounts.SpecialPurposePledge,
		SharedFundShare:       c.Allocation.SharedFundShare,
		PastoralTeamShare:     c.Allocation.PastoralTeamShare,
		OperationalFundShare:  c.Allocation.OperationalFundShare,
		CreatedBy:             c.CreatedBy,
		SubmittedVia:          string(c.SubmittedVia),
		SourcePayload:         encodePayload(c.SourcePayload),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}
