package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
	domainerror "github.com/church-ledger/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// fakePasswordService stores passwords with a visible prefix.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	issued  map[string]*adapter.TokenClaims
	revoked map[string]bool
	counter int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: map[string]*adapter.TokenClaims{}, revoked: map[string]bool{}}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	s.counter++
	refresh := "refresh-" + user.ID.String() + "-" + string(rune('a'+s.counter))
	s.issued[refresh] = &adapter.TokenClaims{UserID: user.ID, Email: user.Email, Role: user.Role}
	return &adapter.TokenPair{AccessToken: "access-" + string(user.Role), RefreshToken: refresh, ExpiresIn: time.Minute}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.issued[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return !s.revoked[token], nil
}
