package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/church-ledger/backend/internal/domain/entity"
)

type fakeTokenRepository struct {
	saved       map[string]time.Time
	invalidated map[string]bool
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{saved: map[string]time.Time{}, invalidated: map[string]bool{}}
}

func (f *fakeTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	f.saved[token] = expiresAt
	return nil
}

func (f *fakeTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	_, ok := f.saved[token]
	return ok && !f.invalidated[token], nil
}

func (f *fakeTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	f.invalidated[token] = true
	return nil
}

func (f *fakeTokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (f *fakeTokenRepository) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTokenRepository()
	svc := NewTokenService("test-secret", time.Minute, time.Hour, repo)
	user := entity.NewUser("treasurer@church.org", "Treasurer", "hash", entity.RoleTreasurer)

	pair, err := svc.GenerateTokenPair(ctx, user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.ExpiresIn != time.Minute {
		t.Errorf("ExpiresIn = %v, want 1m", pair.ExpiresIn)
	}
	if _, ok := repo.saved[pair.RefreshToken]; !ok {
		t.Error("refresh token not stored")
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != entity.RoleTreasurer || claims.Email != user.Email {
		t.Errorf("claims = %+v", claims)
	}

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("refresh token accepted as access token")
		}
		if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("access token accepted as refresh token")
		}
	})

	t.Run("other secret is rejected", func(t *testing.T) {
		other := NewTokenService("other-secret", 0, 0, repo)
		if _, err := other.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("token signed with another secret accepted")
		}
	})

	t.Run("pairs are unique", func(t *testing.T) {
		second, err := svc.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("GenerateTokenPair: %v", err)
		}
		if second.RefreshToken == pair.RefreshToken {
			t.Error("two pairs share a refresh token")
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("InvalidateRefreshToken: %v", err)
		}
		valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil || valid {
			t.Errorf("IsRefreshTokenValid = %v, %v", valid, err)
		}
	})
}
