package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

func newTestResendClient(t *testing.T, handler http.HandlerFunc) *ResendClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewResendClient("re_test", "Church Ledger", "ledger@church.org")
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client.client.BaseURL = base
	return client
}

func TestResendClient_SendReceipt(t *testing.T) {
	var got map[string]any
	client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_42"}`))
	})

	result, err := client.Send(context.Background(), adapter.SendEmailInput{
		To:          "treasurer@church.org",
		Name:        "Ruth",
		Subject:     "Submission received",
		HTML:        "<p>ok</p>",
		Text:        "ok",
		Tags:        map[string]string{"kind": "collection", "category": "receipt"},
		ReferenceID: "c0ffee",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if result.ResendID != "re_42" {
		t.Errorf("ResendID = %q, want re_42", result.ResendID)
	}

	if got["from"] != "Church Ledger <ledger@church.org>" {
		t.Errorf("from = %v", got["from"])
	}
	to, _ := got["to"].([]any)
	if len(to) != 1 || to[0] != "Ruth <treasurer@church.org>" {
		t.Errorf("to = %v", got["to"])
	}
	headers, _ := got["headers"].(map[string]any)
	if headers[referenceHeader] != "c0ffee" {
		t.Errorf("headers = %v", got["headers"])
	}
	tags, _ := got["tags"].([]any)
	if len(tags) != 2 {
		t.Fatalf("tags = %v", got["tags"])
	}
	first, _ := tags[0].(map[string]any)
	if first["name"] != "category" || first["value"] != "receipt" {
		t.Errorf("first tag = %v, want category=receipt", first)
	}
}

func TestResendClient_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantErrCode domainerror.EmailErrorCode
	}{
		{
			name:        "validation error is permanent",
			status:      http.StatusUnprocessableEntity,
			body:        `{"statusCode":422,"name":"validation_error","message":"Invalid ` + "`to`" + ` field."}`,
			wantErr:     domainerror.ErrPermanentEmailFailure,
			wantErrCode: domainerror.ErrCodePermanentEmailFailure,
		},
		{
			name:        "unverified domain is permanent",
			status:      http.StatusForbidden,
			body:        `{"message":"The church.org domain is not verified."}`,
			wantErr:     domainerror.ErrPermanentEmailFailure,
			wantErrCode: domainerror.ErrCodePermanentEmailFailure,
		},
		{
			name:        "rate limit is temporary",
			status:      http.StatusTooManyRequests,
			body:        `{"message":"Too many requests. You can only make 2 requests per second."}`,
			wantErr:     domainerror.ErrTemporaryEmailFailure,
			wantErrCode: domainerror.ErrCodeTemporaryEmailFailure,
		},
		{
			name:        "server error is temporary",
			status:      http.StatusInternalServerError,
			body:        `{"message":"Internal server error"}`,
			wantErr:     domainerror.ErrTemporaryEmailFailure,
			wantErrCode: domainerror.ErrCodeTemporaryEmailFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Send(context.Background(), adapter.SendEmailInput{To: "a@church.org", Subject: "s", Text: "t"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			var emailErr *domainerror.EmailError
			if !errors.As(err, &emailErr) || emailErr.Code != tt.wantErrCode {
				t.Errorf("code = %v, want %s", err, tt.wantErrCode)
			}
		})
	}
}

func TestResendTags(t *testing.T) {
	tags := resendTags(map[string]string{"kind": "collection", "note": "Sunday service", "empty": " "})
	if len(tags) != 2 {
		t.Fatalf("tags = %+v", tags)
	}
	if tags[0].Name != "kind" || tags[1].Name != "note" || tags[1].Value != "Sunday_service" {
		t.Errorf("tags = %+v", tags)
	}
	if resendTags(nil) != nil {
		t.Error("nil tags should stay nil")
	}
}
