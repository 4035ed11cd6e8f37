package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	identityapp "github.com/agency/backend/internal/application/identity"
	"github.com/agency/backend/internal/infrastructure/config"
)

// AuthHandler handles admin session endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
	cookie      config.CookieConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService, cookie config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=1,max=200"`
}

// ChangePasswordRequest represents a password change for the logged-in admin
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=200"`
}

// Login authenticates an admin and sets the session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(time.Until(result.ExpiresAt).Seconds()))
	h.Success(c, gin.H{
		"message": "Login successful",
		"admin":   result.Admin,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	h.Success(c, gin.H{"message": "Logout successful"})
}

// Verify reports the authenticated admin from gate-verified claims
func (h *AuthHandler) Verify(c *gin.Context) {
	adminID, err := getAdminID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	admin, err := h.authService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"authenticated": true,
		"admin":         admin,
	})
}

// ChangePassword updates the logged-in admin's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, err := getAdminID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	err = h.authService.ChangePassword(c.Request.Context(), identityapp.ChangePasswordInput{
		AdminID:         adminID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password updated"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
