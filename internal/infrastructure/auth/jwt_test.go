package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agency/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 7 * 24 * time.Hour,
		Issuer:     "test-issuer",
	}
	return NewJWTService(cfg)
}

func newTestInput() GenerateTokenInput {
	return GenerateTokenInput{
		AdminID: uuid.New(),
		Email:   "admin@example.com",
		Name:    "Jordan Lee",
		Role:    "admin",
	}
}

func TestNewJWTService(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 7 * 24 * time.Hour,
		Issuer:     "test-issuer",
	}

	svc := NewJWTService(cfg)

	assert.NotNil(t, svc)
	assert.Equal(t, []byte(cfg.Secret), svc.secret)
	assert.Equal(t, cfg.Expiration, svc.expiration)
	assert.Equal(t, cfg.Issuer, svc.issuer)
}

func TestGenerateSessionToken(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	token, err := svc.GenerateSessionToken(input)

	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))
}

func TestValidateSessionToken_Success(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	token, err := svc.GenerateSessionToken(input)
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token.Value)

	require.NoError(t, err)
	assert.Equal(t, input.AdminID.String(), claims.Subject)
	assert.Equal(t, input.Email, claims.Email)
	assert.Equal(t, input.Name, claims.Name)
	assert.Equal(t, input.Role, claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidateSessionToken_ExpiredToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: -1 * time.Hour, // Already expired
		Issuer:     "test-issuer",
	}
	svc := NewJWTService(cfg)

	token, err := svc.GenerateSessionToken(newTestInput())
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token.Value)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateSessionToken_InvalidToken(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateSessionToken("invalid-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSessionToken_DifferentSecret(t *testing.T) {
	svc1 := newTestJWTService()

	token, err := svc1.GenerateSessionToken(newTestInput())
	require.NoError(t, err)

	cfg := config.JWTConfig{
		Secret:     "different-secret-key-32-characters",
		Expiration: 7 * 24 * time.Hour,
		Issuer:     "test-issuer",
	}
	svc2 := NewJWTService(cfg)

	_, err = svc2.ValidateSessionToken(token.Value)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_GetAdminUUID(t *testing.T) {
	svc := newTestJWTService()
	input := newTestInput()

	token, err := svc.GenerateSessionToken(input)
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token.Value)
	require.NoError(t, err)

	adminID, err := claims.GetAdminUUID()

	require.NoError(t, err)
	assert.Equal(t, input.AdminID, adminID)
}
