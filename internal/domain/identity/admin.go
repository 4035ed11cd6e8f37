package identity

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agency/backend/internal/domain/shared"
)

// Role represents an admin account role
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Admin represents a back-office account
type Admin struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Active       bool
}

// NewAdmin creates a new admin account with a hashed password
func NewAdmin(email, password, name string, role Role) (*Admin, error) {
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid email address")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         role,
		Active:       true,
	}, nil
}

// VerifyPassword checks the given password against the stored hash
func (a *Admin) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// ChangePassword verifies the current password and sets a new one
func (a *Admin) ChangePassword(current, next string) error {
	if !a.VerifyPassword(current) {
		return shared.ErrInvalidCredentials
	}
	if err := validatePassword(next); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	a.Touch()
	return nil
}

// ResetPassword sets a new password without checking the current one.
// Intended for provisioning and operator-driven resets.
func (a *Admin) ResetPassword(next string) error {
	if err := validatePassword(next); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcryptCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	a.Touch()
	return nil
}

// Rename updates the display name
func (a *Admin) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	a.Name = strings.TrimSpace(name)
	a.Touch()
	return nil
}

// Deactivate disables the account without deleting it
func (a *Admin) Deactivate() {
	a.Active = false
	a.Touch()
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address for comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Repository persists admin accounts
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Save(ctx context.Context, admin *Admin) error
	Count(ctx context.Context) (int64, error)
}
