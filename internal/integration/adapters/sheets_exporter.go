package adapters

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/church-ledger/backend/internal/application/adapter"
)

// SheetsConfig configures the Google Sheets exporter.
// Endpoint overrides the API base URL and disables authentication.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsJSON string
	Endpoint        string
}

// SheetsExporter implements adapter.SpreadsheetExporter on the Google Sheets API.
type SheetsExporter struct {
	spreadsheetID string
	service       *sheets.Service
}

// NewSheetsExporter creates a new exporter. Without a spreadsheet ID, or
// without credentials and endpoint, the exporter reports itself unconfigured.
func NewSheetsExporter(ctx context.Context, cfg SheetsConfig) (*SheetsExporter, error) {
	exporter := &SheetsExporter{spreadsheetID: cfg.SpreadsheetID}
	if cfg.SpreadsheetID == "" {
		return exporter, nil
	}

	var opts []option.ClientOption
	switch {
	case cfg.Endpoint != "":
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	case cfg.CredentialsJSON != "":
		opts = append(opts,
			option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
	default:
		return exporter, nil
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	exporter.service = service
	return exporter, nil
}

// IsConfigured reports whether a spreadsheet and credentials are set.
func (e *SheetsExporter) IsConfigured() bool {
	return e.spreadsheetID != "" && e.service != nil
}

// WriteTable replaces the contents of the tab named table.Name.
func (e *SheetsExporter) WriteTable(ctx context.Context, table adapter.ExportTable) (string, error) {
	if !e.IsConfigured() {
		return "", fmt.Errorf("sheets exporter is not configured")
	}

	if err := e.ensureTab(ctx, table.Name); err != nil {
		return "", err
	}

	tabRange := quoteTab(table.Name)
	_, err := e.service.Spreadsheets.Values.
		Clear(e.spreadsheetID, tabRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to clear tab %s: %w", table.Name, err)
	}

	values := make([][]interface{}, 0, len(table.Rows)+1)
	values = append(values, toCells(table.Headers))
	for _, row := range table.Rows {
		values = append(values, toCells(row))
	}

	resp, err := e.service.Spreadsheets.Values.
		Update(e.spreadsheetID, tabRange+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to write tab %s: %w", table.Name, err)
	}
	return resp.UpdatedRange, nil
}

// ensureTab adds the tab when the spreadsheet does not have it yet.
func (e *SheetsExporter) ensureTab(ctx context.Context, name string) error {
	spreadsheet, err := e.service.Spreadsheets.
		Get(e.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == name {
			return nil
		}
	}

	_, err = e.service.Spreadsheets.BatchUpdate(e.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: name}}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to add tab %s: %w", name, err)
	}
	return nil
}

func quoteTab(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

var _ adapter.SpreadsheetExporter = (*SheetsExporter)(nil)
