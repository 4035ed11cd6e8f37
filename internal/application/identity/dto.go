package identity

import (
	"time"

	"github.com/agency/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput carries credentials from the login form
type LoginInput struct {
	Email    string
	Password string
}

// AdminInfo is the admin profile exposed to the back-office UI
type AdminInfo struct {
	ID    uuid.UUID     `json:"id"`
	Email string        `json:"email"`
	Name  string        `json:"name"`
	Role  identity.Role `json:"role"`
}

// LoginResult carries the session token and the authenticated admin
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     AdminInfo
}

// ChangePasswordInput carries a password change request
type ChangePasswordInput struct {
	AdminID         uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// adminInfoFromDomain maps a domain admin to its UI representation
func adminInfoFromDomain(a *identity.Admin) AdminInfo {
	return AdminInfo{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}
