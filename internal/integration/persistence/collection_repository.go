package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/persistence/model"
)

// collectionRepository implements the adapter.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository instance.
func NewCollectionRepository(db *gorm.DB) adapter.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// Create inserts a new collection.
func (r *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	result := r.db.WithContext(ctx).Create(model.CollectionFromEntity(collection))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateControlNumber
		}
		return result.Error
	}
	return nil
}

// Update replaces a stored collection.
func (r *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	result := r.db.WithContext(ctx).Save(model.CollectionFromEntity(collection))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateControlNumber
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a collection by ID.
func (r *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	var collectionModel model.CollectionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&collectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return collectionModel.ToEntity(), nil
}

// FindByControlNumber retrieves the collection holding a control number, or nil.
func (r *collectionRepository) FindByControlNumber(ctx context.Context, controlNumber string) (*entity.Collection, error) {
	controlNumber = strings.TrimSpace(controlNumber)
	if controlNumber == "" {
		return nil, nil
	}

	var collectionModel model.CollectionModel
	result := r.db.WithContext(ctx).Where("control_number = ?", controlNumber).First(&collectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return collectionModel.ToEntity(), nil
}

// List returns a page of collections matching the filter, newest first,
// together with the totals of every matching collection.
func (r *collectionRepository) List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error) {
	query := applyDateRange(r.db.WithContext(ctx).Model(&model.CollectionModel{}), filter.StartDate, filter.EndDate)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var totals struct {
		TotalAmount          decimal.Decimal
		GeneralTithes        decimal.Decimal
		SharedFundShare      decimal.Decimal
		PastoralTeamShare    decimal.Decimal
		OperationalFundShare decimal.Decimal
	}
	err := query.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total_amount), 0) as total_amount, " +
			"COALESCE(SUM(general_tithes_offering), 0) as general_tithes, " +
			"COALESCE(SUM(shared_fund_share), 0) as shared_fund_share, " +
			"COALESCE(SUM(pastoral_team_share), 0) as pastoral_team_share, " +
			"COALESCE(SUM(operational_fund_share), 0) as operational_fund_share").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	page, limit, offset, totalPages := paginate(filter.Page, filter.Limit, total)

	var collectionModels []model.CollectionModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&collectionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	collections := make([]*entity.Collection, len(collectionModels))
	for i := range collectionModels {
		collections[i] = collectionModels[i].ToEntity()
	}

	return &entity.CollectionListResult{
		Collections: collections,
		Totals: entity.CollectionTotals{
			TotalAmount:          totals.TotalAmount,
			GeneralTithes:        totals.GeneralTithes,
			SharedFundShare:      totals.SharedFundShare,
			PastoralTeamShare:    totals.PastoralTeamShare,
			OperationalFundShare: totals.OperationalFundShare,
		},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ListByDateRange returns every collection dated between start and end inclusive, oldest first.
func (r *collectionRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error) {
	var collectionModels []model.CollectionModel
	result := applyDateRange(r.db.WithContext(ctx), start, end).
		Order("date ASC, created_at ASC").
		Find(&collectionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	collections := make([]*entity.Collection, len(collectionModels))
	for i := range collectionModels {
		collections[i] = collectionModels[i].ToEntity()
	}
	return collections, nil
}

// Delete removes a collection.
func (r *collectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CollectionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
