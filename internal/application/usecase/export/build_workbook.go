package export

import (
	"context"
	"fmt"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
)

// BuildWorkbookInput selects the records to include. An empty kind includes both tables.
type BuildWorkbookInput struct {
	Kind      string
	StartDate *time.Time
	EndDate   *time.Time
}

// BuildWorkbookOutput is a downloadable workbook.
type BuildWorkbookOutput struct {
	Filename string
	Content  []byte
}

// BuildWorkbookUseCase renders records as an xlsx workbook.
type BuildWorkbookUseCase struct {
	collectionRepo adapter.CollectionRepository
	expenseRepo    adapter.ExpenseRepository
	builder        adapter.WorkbookBuilder
}

// NewBuildWorkbookUseCase creates a new BuildWorkbookUseCase instance.
func NewBuildWorkbookUseCase(
	collectionRepo adapter.CollectionRepository,
	expenseRepo adapter.ExpenseRepository,
	builder adapter.WorkbookBuilder,
) *BuildWorkbookUseCase {
	return &BuildWorkbookUseCase{
		collectionRepo: collectionRepo,
		expenseRepo:    expenseRepo,
		builder:        builder,
	}
}

// Execute returns the workbook with one sheet per selected kind.
func (uc *BuildWorkbookUseCase) Execute(ctx context.Context, input BuildWorkbookInput) (*BuildWorkbookOutput, error) {
	kind, err := parseKind(input.Kind, true)
	if err != nil {
		return nil, err
	}
	if err := checkRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	kinds := []string{kind}
	if kind == KindAll {
		kinds = []string{KindCollections, KindExpenses}
	}

	tables := make([]adapter.ExportTable, 0, len(kinds))
	for _, k := range kinds {
		table, err := loadTable(ctx, uc.collectionRepo, uc.expenseRepo, k, input.StartDate, input.EndDate)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	content, err := uc.builder.Build(tables...)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	return &BuildWorkbookOutput{
		Filename: workbookName(kind, input.StartDate, input.EndDate),
		Content:  content,
	}, nil
}

func workbookName(kind string, start, end *time.Time) string {
	name := "ledger-" + kind
	if start != nil {
		name += "-from-" + start.Format(ledger.DateLayout)
	}
	if end != nil {
		name += "-to-" + end.Format(ledger.DateLayout)
	}
	return name + ".xlsx"
}
