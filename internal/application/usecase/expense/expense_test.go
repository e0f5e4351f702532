package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

func newProcessor() *ledger.Processor {
	return ledger.NewProcessor(ledger.NewRecordValidator(nil))
}

func TestCreateExpense_ItemizedTotal(t *testing.T) {
	repo := newFakeExpenseRepository()
	uc := NewCreateExpenseUseCase(repo, newProcessor())

	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		Draft: ledger.ExpenseDraft{
			Date:     "2023-01-31",
			Category: "Operational Fund",
			Amounts:  ledger.ExpenseAmountsDraft{Honorarium: 3000},
		},
		CreatedBy: "treasurer@church.org",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.byID[out.Expense.ID]
	if stored == nil {
		t.Fatal("expense was not persisted")
	}
	if !stored.TotalAmount.Equal(amount("3000.00")) {
		t.Errorf("total = %s, want 3000.00", stored.TotalAmount)
	}
	if stored.Particular != entity.DefaultExpenseParticular {
		t.Errorf("particular = %q, want default", stored.Particular)
	}
	if stored.FundSource != entity.FundSourceOperational {
		t.Errorf("fund source = %q", stored.FundSource)
	}
}

func TestCreateExpense_MissingCategory(t *testing.T) {
	repo := newFakeExpenseRepository()
	uc := NewCreateExpenseUseCase(repo, newProcessor())

	_, err := uc.Execute(context.Background(), CreateExpenseInput{
		Draft: ledger.ExpenseDraft{
			Date:        "2023-01-31",
			TotalAmount: "3000",
		},
	})

	var errs domainerror.ValidationErrors
	if !errors.As(err, &errs) || !errs.HasField("category") {
		t.Fatalf("expected category validation error, got %v", err)
	}
	if !errors.Is(err, domainerror.ErrMissingRequiredField) {
		t.Errorf("expected ErrMissingRequiredField, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing should be stored")
	}
}

func TestUpdateExpense(t *testing.T) {
	repo := newFakeExpenseRepository()
	ctx := context.Background()
	created, err := NewCreateExpenseUseCase(repo, newProcessor()).Execute(ctx, CreateExpenseInput{
		Draft: ledger.ExpenseDraft{Date: "2023-01-31", Category: "Missions", TotalAmount: "100"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewUpdateExpenseUseCase(repo, newProcessor()).Execute(ctx, UpdateExpenseInput{
		ID: created.Expense.ID,
		Draft: ledger.ExpenseDraft{
			Date:       "2023-02-01",
			Category:   "Missions",
			FundSource: "shared_fund",
			Amounts:    ledger.ExpenseAmountsDraft{Transportation: "250.25", Supplies: "49.75"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Expense.TotalAmount.Equal(amount("300")) {
		t.Errorf("total = %s, want 300", out.Expense.TotalAmount)
	}
	if out.Expense.FundSource != entity.FundSourceSharedFund {
		t.Errorf("fund source = %q", out.Expense.FundSource)
	}
	if !out.Expense.CreatedAt.Equal(created.Expense.CreatedAt) {
		t.Error("created at changed")
	}
}

func TestGetExpense_NotFound(t *testing.T) {
	_, err := NewGetExpenseUseCase(newFakeExpenseRepository()).Execute(context.Background(), uuid.New())

	var ledgerErr *domainerror.LedgerError
	if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	repo := newFakeExpenseRepository()
	ctx := context.Background()
	created, err := NewCreateExpenseUseCase(repo, newProcessor()).Execute(ctx, CreateExpenseInput{
		Draft: ledger.ExpenseDraft{Date: "2023-01-31", Category: "Missions", TotalAmount: "100"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := NewDeleteExpenseUseCase(repo)
	if err := uc.Execute(ctx, DeleteExpenseInput{ID: created.Expense.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Execute(ctx, DeleteExpenseInput{ID: created.Expense.ID}); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListExpenses_TrimsCategory(t *testing.T) {
	repo := newFakeExpenseRepository()
	if _, err := NewListExpensesUseCase(repo).Execute(context.Background(), ListExpensesInput{Category: " Missions "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastList.Category != "Missions" || repo.lastList.Limit != DefaultPageLimit || repo.lastList.Page != 1 {
		t.Errorf("filter = %+v", repo.lastList)
	}
}

func TestGetSummary(t *testing.T) {
	repo := newFakeExpenseRepository()
	ctx := context.Background()
	create := NewCreateExpenseUseCase(repo, newProcessor())
	drafts := []ledger.ExpenseDraft{
		{Date: "2023-01-05", Category: "Missions", TotalAmount: "100"},
		{Date: "2023-01-20", Category: "Missions", TotalAmount: "50"},
		{Date: "2023-02-01", Category: "Benevolence", TotalAmount: "75"},
	}
	for _, d := range drafts {
		if _, err := create.Execute(ctx, CreateExpenseInput{Draft: d}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := NewGetSummaryUseCase(repo).Execute(ctx, GetSummaryInput{Year: 2023, Month: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Categories) != 1 || !out.Total.Equal(amount("150")) {
		t.Errorf("summary = %+v", out)
	}

	_, err = NewGetSummaryUseCase(repo).Execute(ctx, GetSummaryInput{Year: 2023, Month: 13})
	if !errors.Is(err, domainerror.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}
