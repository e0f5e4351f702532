// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/domain/entity"
)

// BootstrapAdminInput carries the configured first administrator.
type BootstrapAdminInput struct {
	Email    string
	Password string
	Name     string
}

// BootstrapAdminUseCase creates the first administrator of an empty ledger.
type BootstrapAdminUseCase struct {
	userRepo   adapter.UserRepository
	createUser *CreateUserUseCase
}

// NewBootstrapAdminUseCase creates a new BootstrapAdminUseCase instance.
func NewBootstrapAdminUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *BootstrapAdminUseCase {
	return &BootstrapAdminUseCase{
		userRepo:   userRepo,
		createUser: NewCreateUserUseCase(userRepo, passwordService),
	}
}

// Execute creates the administrator when no user exists and credentials are
// configured. It returns the created user, or nil when nothing was done.
func (uc *BootstrapAdminUseCase) Execute(ctx context.Context, input BootstrapAdminInput) (*entity.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, nil
	}

	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	name := input.Name
	if name == "" {
		name = "Administrator"
	}

	out, err := uc.createUser.Execute(ctx, CreateUserInput{
		Email:     input.Email,
		Name:      name,
		Password:  input.Password,
		Role:      string(entity.RoleAdmin),
		CreatedBy: "bootstrap",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
	}

	slog.Info("Bootstrap administrator created", "user_id", out.User.ID)
	return out.User, nil
}
