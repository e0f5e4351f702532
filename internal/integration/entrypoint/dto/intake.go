package dto

import (
	"github.com/church-ledger/backend/internal/application/usecase/intake"
)

// FormSubmissionRequest is a relayed Google Form response.
// Payload maps each form question to its answer.
type FormSubmissionRequest struct {
	Kind           string            `json:"kind" binding:"required,oneof=collection expense"`
	SubmitterEmail string            `json:"submitter_email" binding:"required,email"`
	Payload        map[string]string `json:"payload" binding:"required"`
}

// FormSubmissionResponse describes the record created from a relayed form.
type FormSubmissionResponse struct {
	Kind        string              `json:"kind"`
	Collection  *CollectionResponse `json:"collection,omitempty"`
	Expense     *ExpenseResponse    `json:"expense,omitempty"`
	IgnoredKeys []string            `json:"ignored_keys,omitempty"`
}

// ToFormSubmissionResponse converts an intake output to its response DTO.
func ToFormSubmissionResponse(output *intake.SubmitFormOutput) FormSubmissionResponse {
	resp := FormSubmissionResponse{
		Kind:        output.Kind,
		IgnoredKeys: output.IgnoredKeys,
	}
	if output.Collection != nil {
		c := ToCollectionResponse(output.Collection)
		resp.Collection = &c
	}
	if output.Expense != nil {
		e := ToExpenseResponse(output.Expense)
		resp.Expense = &e
	}
	return resp
}
