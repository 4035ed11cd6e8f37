package identity

import (
	"context"
	"errors"

	"github.com/agency/backend/internal/domain/identity"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the email is unknown so a
// login failure takes the same time whether or not the account exists.
const dummyPasswordHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthService handles admin authentication operations
type AuthService struct {
	adminRepo  identity.Repository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(adminRepo identity.Repository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates an admin and issues a session token.
// Unknown email, wrong password and deactivated account all fail with the
// same error so callers cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := identity.NormalizeEmail(input.Email)

	admin, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// burn a bcrypt comparison anyway
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(input.Password))
			s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
			return nil, shared.ErrInvalidCredentials
		}
		s.logger.Error("Failed to look up admin during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to authenticate")
	}

	if !admin.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, shared.ErrInvalidCredentials
	}

	if !admin.Active {
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", email))
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateSessionToken(auth.GenerateTokenInput{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
		Role:    string(admin.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate session token")
	}

	s.logger.Info("Admin logged in",
		zap.String("email", email),
		zap.String("admin_id", admin.ID.String()))

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Admin:     adminInfoFromDomain(admin),
	}, nil
}

// GetAdmin returns the admin profile for the given ID
func (s *AuthService) GetAdmin(ctx context.Context, id uuid.UUID) (*AdminInfo, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := adminInfoFromDomain(admin)
	return &info, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	admin, err := s.adminRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		return err
	}

	if err := admin.ChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.adminRepo.Save(ctx, admin); err != nil {
		s.logger.Error("Failed to save admin after password change", zap.Error(err))
		return err
	}

	s.logger.Info("Admin password changed", zap.String("admin_id", admin.ID.String()))
	return nil
}
