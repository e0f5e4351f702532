package adapters

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/church-ledger/backend/internal/application/adapter"
)

func TestExcelWorkbookBuilder_Build(t *testing.T) {
	collections := adapter.ExportTable{
		Name:    "Collections",
		Headers: []string{"Date", "Particular", "Total"},
		Rows: [][]string{
			{"2024-01-07", "Sunday service", "9755.00"},
		},
	}
	expenses := adapter.ExportTable{
		Name:    "Expenses",
		Headers: []string{"Date", "Category", "Total"},
		Rows: [][]string{
			{"2024-01-08", "Pastoral Team", "3000.00"},
			{"2024-01-09", "Ministries", "2400.00"},
		},
	}

	content, err := NewExcelWorkbookBuilder().Build(collections, expenses)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Collections" || sheets[1] != "Expenses" {
		t.Fatalf("sheets = %v", sheets)
	}

	tests := []struct {
		sheet string
		cell  string
		want  string
	}{
		{"Collections", "A1", "Date"},
		{"Collections", "C2", "9755.00"},
		{"Expenses", "B3", "Ministries"},
		{"Expenses", "C2", "3000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.sheet+"!"+tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(tt.sheet, tt.cell)
			if err != nil {
				t.Fatalf("GetCellValue: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expense rows = %d, want 3", len(rows))
	}
}

func TestExcelWorkbookBuilder_NoTables(t *testing.T) {
	if _, err := NewExcelWorkbookBuilder().Build(); err == nil {
		t.Fatal("expected error for empty workbook")
	}
}
