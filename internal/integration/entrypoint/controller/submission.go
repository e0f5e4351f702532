package controller

import (
	"errors"

	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

// Submission outcome labels.
const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// SubmissionRecorder counts ledger submissions by kind, channel and outcome.
type SubmissionRecorder interface {
	RecordSubmission(kind, channel, outcome string)
}

// recordSubmission classifies err and reports it. A nil recorder is ignored.
func recordSubmission(recorder SubmissionRecorder, kind, channel string, err error) {
	if recorder == nil {
		return
	}
	recorder.RecordSubmission(kind, channel, submissionOutcome(err))
}

func submissionOutcome(err error) string {
	if err == nil {
		return outcomeAccepted
	}
	var validationErrs domainerror.ValidationErrors
	var ledgerErr *domainerror.LedgerError
	var authErr *domainerror.AuthError
	if errors.As(err, &validationErrs) || errors.As(err, &ledgerErr) || errors.As(err, &authErr) {
		return outcomeRejected
	}
	return outcomeFailed
}
