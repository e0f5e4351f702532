// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/church-ledger/backend/internal/application/adapter"
)

const defaultMinPasswordLength = 8

// PasswordService hashes account passwords with bcrypt.
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a PasswordService. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost; a non-positive minLength uses 8.
func NewPasswordService(cost, minLength int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	return &PasswordService{cost: cost, minLength: minLength}
}

// HashPassword hashes a plain text password.
func (s *PasswordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compares a plain text password with a bcrypt hash.
func (s *PasswordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength requires the minimum length and at least one letter and one digit.
func (s *PasswordService) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < s.minLength {
		return fmt.Errorf("password must be at least %d characters long", s.minLength)
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain a letter and a digit")
	}
	return nil
}

var _ adapter.PasswordService = (*PasswordService)(nil)
