package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/church-ledger/backend/internal/application/adapter"
)

const defaultSheetName = "Sheet1"

// ExcelWorkbookBuilder implements adapter.WorkbookBuilder with excelize.
type ExcelWorkbookBuilder struct{}

// NewExcelWorkbookBuilder creates a new workbook builder.
func NewExcelWorkbookBuilder() *ExcelWorkbookBuilder {
	return &ExcelWorkbookBuilder{}
}

// Build renders one sheet per table, header row in bold.
func (b *ExcelWorkbookBuilder) Build(tables ...adapter.ExportTable) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("workbook needs at least one table")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, table.Name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", table.Name, err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", table.Name, err)
		}

		if err := writeRow(f, table.Name, 1, table.Headers); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(table.Name, 1, 1, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header of %s: %w", table.Name, err)
		}
		for r, row := range table.Rows {
			if err := writeRow(f, table.Name, r+2, row); err != nil {
				return nil, err
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	row := toCells(values)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNo, sheet, err)
	}
	return nil
}

var _ adapter.WorkbookBuilder = (*ExcelWorkbookBuilder)(nil)
