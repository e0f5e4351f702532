package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/integration/email/templates"
)

// ReceiptConfig holds retry settings for receipt delivery.
type ReceiptConfig struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultReceiptConfig returns three attempts with a two second base backoff.
func DefaultReceiptConfig() ReceiptConfig {
	return ReceiptConfig{
		MaxAttempts: 3,
		Backoff:     2 * time.Second,
	}
}

// ReceiptService renders submission receipts and sends them.
type ReceiptService struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   ReceiptConfig
}

// NewReceiptService creates a new receipt service. A nil sender makes SendReceipt a no-op.
func NewReceiptService(sender adapter.EmailSender, renderer *templates.Renderer, config ReceiptConfig) *ReceiptService {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	return &ReceiptService{
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// SendReceipt renders and sends a submission receipt.
// Temporary provider failures are retried with exponential backoff.
func (s *ReceiptService) SendReceipt(ctx context.Context, receipt adapter.SubmissionReceipt) error {
	if s.sender == nil {
		slog.Debug("Receipt skipped, email is not configured", "record_id", receipt.RecordID)
		return nil
	}

	data := templates.ReceiptData{
		Name:        receipt.ToName,
		Kind:        receipt.Kind,
		RecordID:    receipt.RecordID,
		Date:        receipt.Date,
		Particular:  receipt.Particular,
		TotalAmount: receipt.TotalAmount,
	}
	html, text, err := s.renderer.Render(templates.TemplateReceipt, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render receipt",
			fmt.Errorf("%w: %v", domainerror.ErrTemplateRenderFailed, err),
		)
	}

	input := adapter.SendEmailInput{
		To:      receipt.ToEmail,
		Name:    receipt.ToName,
		Subject: fmt.Sprintf("Submission received: %s on %s", receipt.Kind, receipt.Date),
		HTML:    html,
		Text:    text,
		Tags: map[string]string{
			"category": "receipt",
			"kind":     receipt.Kind,
		},
		ReferenceID: receipt.RecordID,
	}

	var lastErr error
	for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
		result, err := s.sender.Send(ctx, input)
		if err == nil {
			slog.Info("Receipt sent",
				"record_id", receipt.RecordID,
				"resend_id", result.ResendID,
				"attempt", attempt,
			)
			return nil
		}
		lastErr = err

		if errors.Is(err, domainerror.ErrPermanentEmailFailure) || attempt == s.config.MaxAttempts {
			break
		}

		delay := s.config.Backoff * time.Duration(1<<(attempt-1))
		slog.Warn("Receipt send failed, retrying",
			"record_id", receipt.RecordID,
			"attempt", attempt,
			"retry_in", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// Ensure ReceiptService satisfies the interface.
var _ adapter.ReceiptSender = (*ReceiptService)(nil)
