package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// ExportToSheetsInput selects the records to write.
type ExportToSheetsInput struct {
	Kind      string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExportToSheetsOutput describes what was written.
type ExportToSheetsOutput struct {
	Tab          string
	UpdatedRange string
	Rows         int
}

// ExportToSheetsUseCase replaces a spreadsheet tab with date-filtered records.
type ExportToSheetsUseCase struct {
	collectionRepo adapter.CollectionRepository
	expenseRepo    adapter.ExpenseRepository
	exporter       adapter.SpreadsheetExporter
}

// NewExportToSheetsUseCase creates a new ExportToSheetsUseCase instance.
func NewExportToSheetsUseCase(
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
	exporter adapter.SpreadsheetExporter,
) *ExportToSheetsUseCase {
	return &ExportToSheetsUseCase{
		collectionRepo: collectionRepo,
		expenseRepo:    expenseRepo,
		exporter:       exporter,
	}
}

// Execute writes the header row and one row per record into the kind's tab.
func (uc *ExportToSheetsUseCase) Execute(ctx context.Context, input ExportToSheetsInput) (*ExportToSheetsOutput, error) {
	kind, err := parseKind(input.Kind, false)
	if err != nil {
		return nil, err
	}
	if err := checkRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	if uc.exporter == nil || !uc.exporter.IsConfigured() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeExportUnavailable,
			"spreadsheet export is not configured",
			nil,
		)
	}

	table, err := loadTable(ctx, uc.collectionRepo, uc.expenseRepo, kind, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	updated, err := uc.exporter.WriteTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	slog.Info("Records exported to spreadsheet",
		"tab", table.Name,
		"rows", len(table.Rows),
		"updated_range", updated,
	)

	return &ExportToSheetsOutput{
		Tab:          table.Name,
		UpdatedRange: updated,
		Rows:         len(table.Rows),
	}, nil
}

func loadTable(
	ctx context.Context,
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
	kind string,
	start, end *time.Time,
) (adapter.ExportTable, error) {
	if kind == KindCollections {
		collections, err := collectionRepo.ListByDateRange(ctx, start, end)
		if err != nil {
			return adapter.ExportTable{}, fmt.Errorf("failed to load collections: %w", err)
		}
		return CollectionTable(collections), nil
	}

	expenses, err := expenseRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return adapter.ExportTable{}, fmt.Errorf("failed to load expenses: %w", err)
	}
	return ExpenseTable(expenses), nil
}
