// Package email sends submission receipts through Resend.
package email

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/church-ledger/backend/internal/application/adapter"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// referenceHeader carries the record ID so mail clients do not thread
// receipts of different records together.
const referenceHeader = "X-Entity-Ref-ID"

// permanentMarkers are fragments of Resend error messages that will not
// change on retry. Anything else is treated as temporary.
var permanentMarkers = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
	"not verified",
}

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a Resend client sending as "fromName <fromEmail>".
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   formatAddress(fromName, fromEmail),
	}
}

// Send delivers one message and classifies provider failures as permanent
// or temporary for the receipt retry loop.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{formatAddress(input.Name, input.To)},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
		Tags:    resendTags(input.Tags),
	}
	if input.ReferenceID != "" {
		params.Headers = map[string]string{referenceHeader: input.ReferenceID}
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{
		ResendID: resp.Id,
	}, nil
}

func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"receipt rejected by provider",
				fmt.Errorf("%w: %v", domainerror.ErrPermanentEmailFailure, err),
			)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"receipt delivery failed",
		fmt.Errorf("%w: %v", domainerror.ErrTemporaryEmailFailure, err),
	)
}

func formatAddress(name, email string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// resendTags converts tags into Resend's format, sorted by name.
// Resend accepts only ASCII letters, digits, '_' and '-' in tags.
func resendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}

	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]resend.Tag, 0, len(names))
	for _, name := range names {
		value := tagSafe(tags[name])
		if value == "" {
			continue
		}
		out = append(out, resend.Tag{Name: tagSafe(name), Value: value})
	}
	return out
}

func tagSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
}

// Ensure ResendClient satisfies the interface.
var _ adapter.EmailSender = (*ResendClient)(nil)
