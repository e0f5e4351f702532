// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// ExportTable is a header row plus data rows, already formatted as text.
type ExportTable struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// SpreadsheetExporter writes tables into an external spreadsheet document.
type SpreadsheetExporter interface {
	// WriteTable replaces the contents of the tab named table.Name,
	// creating the tab when it does not exist. Returns the updated range.
	WriteTable(ctx context.Context, table ExportTable) (string, error)

	// IsConfigured reports whether a spreadsheet and credentials are set.
	IsConfigured() bool
}

// WorkbookBuilder renders tables as a downloadable workbook, one sheet per table.
type WorkbookBuilder interface {
	// Build returns the encoded workbook.
	Build(tables ...ExportTable) ([]byte, error)
}
