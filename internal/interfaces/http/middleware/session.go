package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agency/backend/internal/infrastructure/auth"
	"github.com/agency/backend/internal/interfaces/http/dto"
)

// Session context keys
const (
	SessionClaimsKey  = "session_claims"
	SessionAdminIDKey = "session_admin_id"
	SessionEmailKey   = "session_email"
	SessionRoleKey    = "session_role"
)

// Gate paths
const (
	adminRootPath      = "/admin"
	adminLoginPath     = "/admin/login"
	adminDashboardPath = "/admin/dashboard"
	adminAPIPrefix     = "/api/v1/admin/"
)

// SessionGateConfig holds configuration for the session gate middleware
type SessionGateConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// CookieName is the session cookie to read
	CookieName string
	// SkipPaths are admin API paths that don't require a session
	SkipPaths []string
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultSessionGateConfig returns default session gate configuration
func DefaultSessionGateConfig(jwtService *auth.JWTService, cookieName string) SessionGateConfig {
	return SessionGateConfig{
		JWTService: jwtService,
		CookieName: cookieName,
		SkipPaths: []string{
			"/api/v1/admin/auth/login",
			"/api/v1/admin/auth/logout",
		},
		Logger: nil,
	}
}

// SessionGate creates the edge middleware guarding the admin UI and admin API.
//
// Routing decisions:
//   - /admin exactly: redirect to the dashboard when a cookie is present,
//     to the login page otherwise (presence check only, the target page
//     re-verifies).
//   - /admin/login: a verified session skips the login page.
//   - /api/v1/admin/* except SkipPaths: 401 JSON without a verified session.
//   - other /admin/* pages: redirect to the login page without a verified
//     session.
//   - everything else passes through untouched.
//
// Malformed and expired tokens behave exactly like absent ones.
func SessionGate(cfg SessionGateConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		switch {
		case path == adminRootPath:
			if _, err := c.Cookie(cfg.CookieName); err == nil {
				c.Redirect(http.StatusFound, adminDashboardPath)
			} else {
				c.Redirect(http.StatusFound, adminLoginPath)
			}
			c.Abort()

		case path == adminLoginPath:
			if claims := verifySessionCookie(c, cfg); claims != nil {
				c.Redirect(http.StatusFound, adminDashboardPath)
				c.Abort()
				return
			}
			c.Next()

		case strings.HasPrefix(path, adminAPIPrefix):
			for _, skip := range cfg.SkipPaths {
				if path == skip {
					c.Next()
					return
				}
			}
			claims := verifySessionCookie(c, cfg)
			if claims == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
				return
			}
			storeSessionClaims(c, claims)
			c.Next()

		case strings.HasPrefix(path, adminRootPath+"/"):
			claims := verifySessionCookie(c, cfg)
			if claims == nil {
				c.Redirect(http.StatusFound, adminLoginPath)
				c.Abort()
				return
			}
			storeSessionClaims(c, claims)
			c.Next()

		default:
			c.Next()
		}
	}
}

// verifySessionCookie reads and validates the session cookie. Any failure
// (missing cookie, bad signature, expired token) returns nil.
func verifySessionCookie(c *gin.Context, cfg SessionGateConfig) *auth.Claims {
	token, err := c.Cookie(cfg.CookieName)
	if err != nil || token == "" {
		return nil
	}

	claims, err := cfg.JWTService.ValidateSessionToken(token)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Debug("Session token rejected",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
		}
		return nil
	}
	return claims
}

func storeSessionClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(SessionClaimsKey, claims)
	c.Set(SessionAdminIDKey, claims.Subject)
	c.Set(SessionEmailKey, claims.Email)
	c.Set(SessionRoleKey, claims.Role)
}

// GetSessionClaims retrieves verified session claims from gin.Context
func GetSessionClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(SessionClaimsKey); exists {
		if sessionClaims, ok := claims.(*auth.Claims); ok {
			return sessionClaims
		}
	}
	return nil
}

// GetSessionAdminID retrieves the admin ID from session claims in context
func GetSessionAdminID(c *gin.Context) string {
	if adminID, exists := c.Get(SessionAdminIDKey); exists {
		if id, ok := adminID.(string); ok {
			return id
		}
	}
	return ""
}

// GetSessionEmail retrieves the admin email from session claims in context
func GetSessionEmail(c *gin.Context) string {
	if email, exists := c.Get(SessionEmailKey); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

// GetSessionRole retrieves the admin role from session claims in context
func GetSessionRole(c *gin.Context) string {
	if role, exists := c.Get(SessionRoleKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
