package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

type fakeCollectionRepository struct {
	collections []*entity.Collection
	start, end  *time.Time
}

func (r *fakeCollectionRepository) Create(ctx context.Context, c *entity.Collection) error { return nil }
func (r *fakeCollectionRepository) Update(ctx context.Context, c *entity.Collection) error { return nil }

func (r *fakeCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeCollectionRepository) FindByControlNumber(ctx context.Context, cn string) (*entity.Collection, error) {
	return nil, nil
}

func (r *fakeCollectionRepository) List(ctx context.Context, filter entity.CollectionFilter) (*entity.CollectionListResult, error) {
	return &entity.CollectionListResult{}, nil
}

func (r *fakeCollectionRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Collection, error) {
	r.start, r.end = start, end
	return r.collections, nil
}

func (r *fakeCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeExpenseRepository struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepository) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (r *fakeExpenseRepository) Update(ctx context.Context, e *entity.Expense) error { return nil }

func (r *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (r *fakeExpenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (r *fakeExpenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}

func (r *fakeExpenseRepository) SumByCategoryInPeriod(ctx context.Context, period valueobject.Period) ([]valueobject.CategorySum, error) {
	return nil, nil
}

func (r *fakeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeExporter struct {
	configured bool
	written    []adapter.ExportTable
}

func (e *fakeExporter) WriteTable(ctx context.Context, table adapter.ExportTable) (string, error) {
	e.written = append(e.written, table)
	return table.Name + "!A1:R2", nil
}

func (e *fakeExporter) IsConfigured() bool {
	return e.configured
}

type fakeBuilder struct {
	tables []adapter.ExportTable
}

func (b *fakeBuilder) Build(tables ...adapter.ExportTable) ([]byte, error) {
	b.tables = tables
	return []byte("PK"), nil
}

func sampleCollection() *entity.Collection {
	c := entity.NewCollection(time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC), "Sunday service", "treasurer@church.org", entity.SubmittedViaWeb)
	c.TotalAmount = decimal.NewFromInt(9755)
	c.Amounts.GeneralTithesOffering = decimal.NewFromInt(9755)
	c.Allocation = valueobject.FundAllocation{
		SharedFundShare:      decimal.RequireFromString("975.5"),
		PastoralTeamShare:    decimal.RequireFromString("975.5"),
		OperationalFundShare: decimal.NewFromInt(7804),
	}
	return c
}

func sampleExpense() *entity.Expense {
	e := entity.NewExpense(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), "Operational Fund", "treasurer@church.org", entity.SubmittedViaGoogleForm)
	e.Particular = "Speaker"
	e.TotalAmount = decimal.NewFromInt(3000)
	e.Amounts.Honorarium = decimal.NewFromInt(3000)
	return e
}

func TestCollectionTable(t *testing.T) {
	table := CollectionTable([]*entity.Collection{sampleCollection()})
	if table.Name != CollectionsTab || len(table.Rows) != 1 {
		t.Fatalf("table = %+v", table)
	}
	row := table.Rows[0]
	if len(row) != len(table.Headers) {
		t.Fatalf("row has %d cells, headers %d", len(row), len(table.Headers))
	}
	want := map[string]string{
		"Date":                   "2023-01-08",
		"Total Amount":           "9755.00",
		"Shared Fund Share":      "975.50",
		"Operational Fund Share": "7804.00",
		"Payment Method":         "Cash",
		"Submitted Via":          "web",
	}
	for i, h := range table.Headers {
		if v, ok := want[h]; ok && row[i] != v {
			t.Errorf("%s = %q, want %q", h, row[i], v)
		}
	}
}

func TestExpenseTable(t *testing.T) {
	table := ExpenseTable([]*entity.Expense{sampleExpense()})
	row := table.Rows[0]
	if len(row) != len(table.Headers) {
		t.Fatalf("row has %d cells, headers %d", len(row), len(table.Headers))
	}
	want := map[string]string{
		"Category":     "Operational Fund",
		"Fund Source":  "operational",
		"Honorarium":   "3000.00",
		"Total Amount": "3000.00",
	}
	for i, h := range table.Headers {
		if v, ok := want[h]; ok && row[i] != v {
			t.Errorf("%s = %q, want %q", h, row[i], v)
		}
	}
}

func TestExportToSheets(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("writes collections", func(t *testing.T) {
		collections := &fakeCollectionRepository{collections: []*entity.Collection{sampleCollection()}}
		exporter := &fakeExporter{configured: true}
		uc := NewExportToSheetsUseCase(collections, &fakeExpenseRepository{}, exporter)

		out, err := uc.Execute(context.Background(), ExportToSheetsInput{Kind: "collection", StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tab != CollectionsTab || out.Rows != 1 || len(exporter.written) != 1 {
			t.Errorf("output = %+v", out)
		}
		if collections.start != &start || collections.end != &end {
			t.Error("date range should reach the repository")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewExportToSheetsUseCase(&fakeCollectionRepository{}, &fakeExpenseRepository{}, &fakeExporter{})
		_, err := uc.Execute(context.Background(), ExportToSheetsInput{Kind: "expenses"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeExportUnavailable {
			t.Fatalf("expected export unavailable, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := NewExportToSheetsUseCase(&fakeCollectionRepository{}, &fakeExpenseRepository{}, &fakeExporter{configured: true})
		_, err := uc.Execute(context.Background(), ExportToSheetsInput{Kind: "expenses", StartDate: &end, EndDate: &start})
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		uc := NewExportToSheetsUseCase(&fakeCollectionRepository{}, &fakeExpenseRepository{}, &fakeExporter{configured: true})
		if _, err := uc.Execute(context.Background(), ExportToSheetsInput{}); err == nil {
			t.Fatal("sheets export needs an explicit kind")
		}
	})
}

func TestBuildWorkbook(t *testing.T) {
	builder := &fakeBuilder{}
	uc := NewBuildWorkbookUseCase(
		&fakeCollectionRepository{collections: []*entity.Collection{sampleCollection()}},
		&fakeExpenseRepository{expenses: []*entity.Expense{sampleExpense()}},
		builder,
	)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	out, err := uc.Execute(context.Background(), BuildWorkbookInput{StartDate: &start})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(builder.tables) != 2 || builder.tables[0].Name != CollectionsTab || builder.tables[1].Name != ExpensesTab {
		t.Errorf("tables = %d", len(builder.tables))
	}
	if out.Filename != "ledger-all-from-2023-01-01.xlsx" {
		t.Errorf("filename = %q", out.Filename)
	}
}
