package customfield

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

type fakeFieldRepository struct {
	fields  map[uuid.UUID]*entity.CustomField
	values  map[uuid.UUID]*entity.CustomFieldValue
	upserts int
}

func newFakeFieldRepository() *fakeFieldRepository {
	return &fakeFieldRepository{
		fields: make(map[uuid.UUID]*entity.CustomField),
		values: make(map[uuid.UUID]*entity.CustomFieldValue),
	}
}

func (r *fakeFieldRepository) Create(ctx context.Context, field *entity.CustomField) error {
	for _, f := range r.fields {
		if f.TableName == field.TableName && f.FieldName == field.FieldName {
			return domainerror.ErrCustomFieldAlreadyExists
		}
	}
	r.fields[field.ID] = field
	return nil
}

func (r *fakeFieldRepository) Update(ctx context.Context, field *entity.CustomField) error {
	r.fields[field.ID] = field
	return nil
}

func (r *fakeFieldRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CustomField, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, domainerror.ErrCustomFieldNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFieldRepository) ListByTable(ctx context.Context, table entity.CustomFieldTable, includeInactive bool) ([]*entity.CustomField, error) {
	var fields []*entity.CustomField
	for _, f := range r.fields {
		if f.TableName == table && (includeInactive || f.IsActive) {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].DisplayOrder < fields[j].DisplayOrder })
	return fields, nil
}

func (r *fakeFieldRepository) UpsertValues(ctx context.Context, values []*entity.CustomFieldValue) error {
	r.upserts++
	for _, v := range values {
		r.values[v.ID] = v
	}
	return nil
}

func (r *fakeFieldRepository) ListValues(ctx context.Context, table entity.CustomFieldTable, recordID uuid.UUID) ([]*entity.CustomFieldValue, error) {
	var values []*entity.CustomFieldValue
	for _, v := range r.values {
		if v.TableName == table && v.RecordID == recordID {
			values = append(values, v)
		}
	}
	return values, nil
}

func (r *fakeFieldRepository) addField(table entity.CustomFieldTable, name string, fieldType entity.CustomFieldType, order int) *entity.CustomField {
	f := entity.NewCustomField(table, name, name, fieldType)
	f.DisplayOrder = order
	r.fields[f.ID] = f
	return f
}

// fakeRecords answers FindByID for both record tables.
type fakeRecords struct {
	ids map[uuid.UUID]bool
}

func (r *fakeRecords) Create(ctx context.Context, c *entity.Collection) error { return nil }
func (r *fakeRecords) Update(ctx context.Context, c *entity.Collection) error { return nil }

func (r *fakeRecords) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	if !r.ids[id] {
		return nil, domainerror.ErrRecordNotFound
	}
	return &entity.Collection{ID: id}, nil
}

func (r *fakeRecords) FindByControlNumber(ctx context.Context, cn string) (*entity.Collection, error) {
	return nil, nil
}

func (r *fakeRecords) List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error) {
	return &entity.CollectionListResult{}, nil
}

func (r *fakeRecords) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error) {
	return nil, nil
}

func (r *fakeRecords) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeExpenseRecords struct {
	ids map[uuid.UUID]bool
}

func (r *fakeExpenseRecords) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (r *fakeExpenseRecords) Update(ctx context.Context, e *entity.Expense) error { return nil }

func (r *fakeExpenseRecords) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	if !r.ids[id] {
		return nil, domainerror.ErrRecordNotFound
	}
	return &entity.Expense{ID: id}, nil
}

func (r *fakeExpenseRecords) List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (r *fakeExpenseRecords) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRecords) SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error) {
	return nil, nil
}

func (r *fakeExpenseRecords) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func strPtr(s string) *string {
	return &s
}
