// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string

	// Tags label the message at the provider, e.g. {"kind": "collection"}.
	Tags map[string]string
	// ReferenceID identifies the ledger record the message is about.
	ReferenceID string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// SubmissionReceipt describes a persisted relay submission for the submitter.
type SubmissionReceipt struct {
	ToEmail     string
	ToName      string
	Kind        string
	RecordID    string
	Date        string
	Particular  string
	TotalAmount string
}

// ReceiptSender confirms relayed submissions to their submitter.
type ReceiptSender interface {
	// SendReceipt renders and sends a submission receipt.
	SendReceipt(ctx context.Context, receipt SubmissionReceipt) error
}
