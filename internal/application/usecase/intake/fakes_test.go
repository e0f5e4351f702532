package intake

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/collection"
	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users map[string]*entity.User
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeCollectionCreator struct {
	last *collection.CreateCollectionInput
	err  error
}

func (c *fakeCollectionCreator) Execute(ctx context.Context, input collection.CreateCollectionInput) (*collection.CollectionOutput, error) {
	c.last = &input
	if c.err != nil {
		return nil, c.err
	}
	rec := entity.NewCollection(time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC), input.Draft.Particular, input.CreatedBy, input.SubmittedVia)
	rec.TotalAmount = decimal.NewFromInt(9755)
	return &collection.CollectionOutput{Collection: rec}, nil
}

type fakeExpenseCreator struct {
	last *expense.CreateExpenseInput
}

func (c *fakeExpenseCreator) Execute(ctx context.Context, input expense.CreateExpenseInput) (*expense.ExpenseOutput, error) {
	c.last = &input
	rec := entity.NewExpense(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), input.Draft.Category, input.CreatedBy, input.SubmittedVia)
	rec.TotalAmount = decimal.NewFromInt(3000)
	return &expense.ExpenseOutput{Expense: rec}, nil
}

type fakeReceiptSender struct {
	sent []adapter.SubmissionReceipt
	fail bool
}

func (s *fakeReceiptSender) SendReceipt(ctx context.Context, receipt adapter.SubmissionReceipt) error {
	s.sent = append(s.sent, receipt)
	if s.fail {
		return errors.New("resend: 500")
	}
	return nil
}

func newUsers() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entity.User{
		"treasurer@church.org": entity.NewUser("treasurer@church.org", "Ruth", "hash", entity.RoleTreasurer),
		"viewer@church.org":    entity.NewUser("viewer@church.org", "Silas", "hash", entity.RoleViewer),
	}}
}
