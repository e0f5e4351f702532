package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/collection"
	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
	"github.com/church-ledger/backend/internal/domain/valueobject"
)

// Record kinds accepted by the relay.
const (
	KindCollection = "collection"
	KindExpense    = "expense"
)

// CollectionCreator stores a collection through the ledger pipeline.
type CollectionCreator interface {
	Execute(ctx context.Context, input collection.CreateCollectionInput) (*collection.CollectionOutput, error)
}

// ExpenseCreator stores an expense through the ledger pipeline.
type ExpenseCreator interface {
	Execute(ctx context.Context, input expense.CreateExpenseInput) (*expense.ExpenseOutput, error)
}

// SubmitFormInput is a relayed form submission.
type SubmitFormInput struct {
	Kind           string
	SubmitterEmail string
	Payload        map[string]string
}

// SubmitFormOutput holds the stored record and the questions that were not mapped.
type SubmitFormOutput struct {
	Kind        string
	Collection  *entity.Collection
	Expense     *entity.Expense
	IgnoredKeys []string
}

// SubmitFormUseCase maps a relayed submission and stores it as its submitter.
type SubmitFormUseCase struct {
	userRepo          adapter.UserRepository
	createCollection  CollectionCreator
	createExpense     ExpenseCreator
	receiptSender     adapter.ReceiptSender
	collectionMapping MappingTable
	expenseMapping    MappingTable
}

// NewSubmitFormUseCase creates a new SubmitFormUseCase instance. receiptSender may be nil.
func NewSubmitFormUseCase(
	userRepo adapter.UserRepository,
	createCollection CollectionCreator,
	createExpense ExpenseCreator,
	receiptSender adapter.ReceiptSender,
) *SubmitFormUseCase {
	return &SubmitFormUseCase{
		userRepo:          userRepo,
		createCollection:  createCollection,
		createExpense:     createExpense,
		receiptSender:     receiptSender,
		collectionMapping: NewMappingTable(CollectionFields),
		expenseMapping:    NewMappingTable(ExpenseFields),
	}
}

// Execute authenticates the submitter, maps the payload and stores the record.
// A receipt is sent once the record is stored; receipt failures are only logged.
func (uc *SubmitFormUseCase) Execute(ctx context.Context, input SubmitFormInput) (*SubmitFormOutput, error) {
	kind := strings.ToLower(strings.TrimSpace(input.Kind))
	if kind != KindCollection && kind != KindExpense {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMalformedRequest,
			"kind must be collection or expense",
			nil,
		)
	}

	user, err := uc.submitter(ctx, input.SubmitterEmail)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]string, len(input.Payload))
	for k, v := range input.Payload {
		payload[k] = v
	}

	out := &SubmitFormOutput{Kind: kind}
	var receipt adapter.SubmissionReceipt

	switch kind {
	case KindCollection:
		var draft ledger.CollectionDraft
		ignored, err := applyPayload(uc.collectionMapping, payload, &draft, nil)
		if err != nil {
			return nil, err
		}
		out.IgnoredKeys = ignored

		created, err := uc.createCollection.Execute(ctx, collection.CreateCollectionInput{
			Draft:         draft,
			CreatedBy:     user.Email,
			SubmittedVia:  entity.SubmittedViaGoogleForm,
			SourcePayload: payload,
		})
		if err != nil {
			return nil, err
		}
		out.Collection = created.Collection
		receipt = adapter.SubmissionReceipt{
			RecordID:    created.Collection.ID.String(),
			Date:        created.Collection.Date.Format(ledger.DateLayout),
			Particular:  created.Collection.Particular,
			TotalAmount: created.Collection.TotalAmount.StringFixed(2),
		}

	case KindExpense:
		var draft ledger.ExpenseDraft
		ignored, err := applyPayload(uc.expenseMapping, payload, nil, &draft)
		if err != nil {
			return nil, err
		}
		out.IgnoredKeys = ignored

		created, err := uc.createExpense.Execute(ctx, expense.CreateExpenseInput{
			Draft:         draft,
			CreatedBy:     user.Email,
			SubmittedVia:  entity.SubmittedViaGoogleForm,
			SourcePayload: payload,
		})
		if err != nil {
			return nil, err
		}
		out.Expense = created.Expense
		receipt = adapter.SubmissionReceipt{
			RecordID:    created.Expense.ID.String(),
			Date:        created.Expense.Date.Format(ledger.DateLayout),
			Particular:  created.Expense.Particular,
			TotalAmount: created.Expense.TotalAmount.StringFixed(2),
		}
	}

	if len(out.IgnoredKeys) > 0 {
		slog.Info("Relay submission carried unmapped questions",
			"kind", kind,
			"submitter", user.Email,
			"ignored_keys", out.IgnoredKeys,
		)
	}

	receipt.ToEmail = user.Email
	receipt.ToName = user.Name
	receipt.Kind = kind
	uc.sendReceipt(ctx, receipt)

	return out, nil
}

func (uc *SubmitFormUseCase) submitter(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"submitter_email is required",
			domainerror.ErrUserNotFound,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			slog.Warn("Relay submission from unknown submitter", "submitter", email)
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeForbidden,
				"submitter is not a ledger user",
				domainerror.ErrForbidden,
			)
		}
		return nil, fmt.Errorf("failed to find submitter: %w", err)
	}

	if !user.Role.Allows(entity.RoleTreasurer) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbidden,
			"submitter may not record entries",
			domainerror.ErrForbidden,
		)
	}
	return user, nil
}

func (uc *SubmitFormUseCase) sendReceipt(ctx context.Context, receipt adapter.SubmissionReceipt) {
	if uc.receiptSender == nil {
		return
	}
	if err := uc.receiptSender.SendReceipt(ctx, receipt); err != nil {
		slog.Error("Failed to send submission receipt",
			"record_id", receipt.RecordID,
			"to", receipt.ToEmail,
			"error", err,
		)
	}
}

// applyPayload fills the draft from the payload and returns the unmapped keys, sorted.
// Two questions that map to the same field must carry the same answer; a
// conflict rejects the whole payload.
func applyPayload(table MappingTable, payload map[string]string, c *ledger.CollectionDraft, e *ledger.ExpenseDraft) ([]string, error) {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var ignored []string
	var conflicts domainerror.ValidationErrors
	answeredBy := make(map[string]string, len(keys))
	for _, key := range keys {
		m, ok := table.Lookup(key)
		if !ok {
			ignored = append(ignored, key)
			continue
		}
		value := strings.TrimSpace(payload[key])

		if first, seen := answeredBy[m.Target]; seen {
			if strings.TrimSpace(payload[first]) != value && !conflicts.HasField(m.Target) {
				conflicts.Add(m.Target, domainerror.ErrCodeMalformedRequest,
					fmt.Sprintf("%q and %q give different answers for %s", first, key, m.Target), nil)
			}
			continue
		}
		answeredBy[m.Target] = key

		if m.Type == FieldTypeAmount && value != "" && valueobject.NormalizeAmount(value).IsZero() {
			slog.Debug("Relay amount could not be read, treating as zero", "question", key, "value", value)
		}
		m.apply(value, c, e)
	}

	if conflicts.HasErrors() {
		return nil, conflicts
	}
	return ignored, nil
}
