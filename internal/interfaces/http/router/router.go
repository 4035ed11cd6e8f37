package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agency/backend/internal/interfaces/http/handler"
)

// Handlers bundles the HTTP handlers wired into the route table
type Handlers struct {
	Auth          *handler.AuthHandler
	Contacts      *handler.ContactHandler
	Quotes        *handler.QuoteHandler
	Consultations *handler.ConsultationHandler
	Projects      *handler.ProjectHandler
	Offerings     *handler.OfferingHandler
	Dashboard     *handler.DashboardHandler

	// Health overrides the default health check handler
	Health gin.HandlerFunc
}

// Router manages HTTP route registration
type Router struct {
	engine          *gin.Engine
	apiVersion      string
	loginMiddleware []gin.HandlerFunc
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithLoginMiddleware adds middleware applied to the login route only,
// typically a tighter rate limit for credential guessing.
func WithLoginMiddleware(mw ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.loginMiddleware = append(r.loginMiddleware, mw...)
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Setup registers the health check, the public marketing-site API and the
// admin back-office API. The session gate runs at engine level, so admin
// routes registered here are reached only with a verified session.
func (r *Router) Setup(h Handlers) {
	health := h.Health
	if health == nil {
		health = func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
	r.engine.GET("/health", health)

	api := r.engine.Group("/api/" + r.apiVersion)

	public := api.Group("/public")
	{
		public.POST("/contacts", h.Contacts.Create)
		public.POST("/quotes", h.Quotes.Create)
		public.POST("/consultations", h.Consultations.Create)
		public.GET("/projects", h.Projects.ListPublished)
		public.GET("/services", h.Offerings.ListActive)
	}

	admin := api.Group("/admin")
	{
		loginChain := append(append([]gin.HandlerFunc{}, r.loginMiddleware...), h.Auth.Login)
		admin.POST("/auth/login", loginChain...)
		admin.POST("/auth/logout", h.Auth.Logout)
		admin.GET("/auth/verify", h.Auth.Verify)
		admin.PUT("/auth/password", h.Auth.ChangePassword)

		admin.GET("/contacts", h.Contacts.List)
		admin.GET("/contacts/:id", h.Contacts.GetByID)
		admin.PUT("/contacts/:id", h.Contacts.Update)
		admin.DELETE("/contacts/:id", h.Contacts.Delete)

		admin.GET("/quotes", h.Quotes.List)
		admin.GET("/quotes/:id", h.Quotes.GetByID)
		admin.PUT("/quotes/:id", h.Quotes.Update)
		admin.DELETE("/quotes/:id", h.Quotes.Delete)

		admin.GET("/consultations", h.Consultations.List)
		admin.GET("/consultations/:id", h.Consultations.GetByID)
		admin.PUT("/consultations/:id", h.Consultations.Update)
		admin.DELETE("/consultations/:id", h.Consultations.Delete)

		admin.POST("/projects", h.Projects.Create)
		admin.GET("/projects", h.Projects.List)
		admin.GET("/projects/:id", h.Projects.GetByID)
		admin.PUT("/projects/:id", h.Projects.Update)
		admin.DELETE("/projects/:id", h.Projects.Delete)
		admin.POST("/projects/uploads", h.Projects.RequestUpload)
		admin.POST("/projects/uploads/confirm", h.Projects.ConfirmUpload)

		admin.POST("/services", h.Offerings.Create)
		admin.GET("/services", h.Offerings.List)
		admin.GET("/services/:id", h.Offerings.GetByID)
		admin.PUT("/services/:id", h.Offerings.Update)
		admin.DELETE("/services/:id", h.Offerings.Delete)

		admin.GET("/dashboard/stats", h.Dashboard.Stats)
	}
}
