package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/church-ledger/backend/internal/application/adapter"
)

type sheetsStub struct {
	mu       sync.Mutex
	tabs     []string
	calls    []string
	lastBody map[string]any
}

func (s *sheetsStub) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		body, _ := io.ReadAll(r.Body)
		path := r.URL.Path
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(path, "/spreadsheets/sheet-1"):
			s.calls = append(s.calls, "get")
			sheetList := make([]map[string]any, 0, len(s.tabs))
			for _, tab := range s.tabs {
				sheetList = append(sheetList, map[string]any{"properties": map[string]any{"title": tab}})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"sheets": sheetList})
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchUpdate"):
			s.calls = append(s.calls, "addSheet")
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":clear"):
			s.calls = append(s.calls, "clear")
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
			s.calls = append(s.calls, "update")
			s.lastBody = map[string]any{}
			_ = json.Unmarshal(body, &s.lastBody)
			if got := r.URL.Query().Get("valueInputOption"); got != "RAW" {
				t.Errorf("valueInputOption = %q, want RAW", got)
			}
			_, _ = w.Write([]byte(`{"updatedRange":"Collections!A1:C3","updatedRows":3}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestSheetsExporter_WriteTable(t *testing.T) {
	tests := []struct {
		name      string
		tabs      []string
		wantCalls []string
	}{
		{name: "existing tab", tabs: []string{"Collections"}, wantCalls: []string{"get", "clear", "update"}},
		{name: "missing tab is added", tabs: []string{"Sheet1"}, wantCalls: []string{"get", "addSheet", "clear", "update"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &sheetsStub{tabs: tt.tabs}
			server := httptest.NewServer(stub.handler(t))
			defer server.Close()

			exporter, err := NewSheetsExporter(context.Background(), SheetsConfig{
				SpreadsheetID: "sheet-1",
				Endpoint:      server.URL + "/",
			})
			if err != nil {
				t.Fatalf("NewSheetsExporter: %v", err)
			}
			if !exporter.IsConfigured() {
				t.Fatal("exporter should be configured")
			}

			updated, err := exporter.WriteTable(context.Background(), adapter.ExportTable{
				Name:    "Collections",
				Headers: []string{"Date", "Particular", "Total"},
				Rows: [][]string{
					{"2024-01-07", "Sunday service", "9755.00"},
					{"2024-01-14", "Sunday service", "8000.00"},
				},
			})
			if err != nil {
				t.Fatalf("WriteTable: %v", err)
			}
			if updated != "Collections!A1:C3" {
				t.Errorf("updated range = %q", updated)
			}
			if strings.Join(stub.calls, ",") != strings.Join(tt.wantCalls, ",") {
				t.Errorf("calls = %v, want %v", stub.calls, tt.wantCalls)
			}
			values, _ := stub.lastBody["values"].([]any)
			if len(values) != 3 {
				t.Fatalf("values rows = %d, want 3", len(values))
			}
			header, _ := values[0].([]any)
			if len(header) != 3 || header[0] != "Date" {
				t.Errorf("header = %v", header)
			}
		})
	}
}

func TestSheetsExporter_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  SheetsConfig
	}{
		{name: "no spreadsheet", cfg: SheetsConfig{CredentialsJSON: "{}"}},
		{name: "no credentials", cfg: SheetsConfig{SpreadsheetID: "sheet-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewSheetsExporter(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("NewSheetsExporter: %v", err)
			}
			if exporter.IsConfigured() {
				t.Fatal("exporter should not be configured")
			}
			if _, err := exporter.WriteTable(context.Background(), adapter.ExportTable{Name: "Expenses"}); err == nil {
				t.Fatal("expected error from unconfigured exporter")
			}
		})
	}
}
