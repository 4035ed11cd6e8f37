package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dashboardapp "github.com/agency/backend/internal/application/dashboard"
	identityapp "github.com/agency/backend/internal/application/identity"
	leadapp "github.com/agency/backend/internal/application/lead"
	portfolioapp "github.com/agency/backend/internal/application/portfolio"
	"github.com/agency/backend/internal/infrastructure/auth"
	"github.com/agency/backend/internal/infrastructure/config"
	"github.com/agency/backend/internal/infrastructure/logger"
	"github.com/agency/backend/internal/infrastructure/persistence"
	"github.com/agency/backend/internal/infrastructure/storage"
	"github.com/agency/backend/internal/interfaces/http/handler"
	"github.com/agency/backend/internal/interfaces/http/middleware"
	"github.com/agency/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting agency backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	)

	// Database
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Object storage for portfolio images
	var objectStorage portfolioapp.ObjectStorageService
	if cfg.Storage.Provider == "s3" {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Using stub object storage, uploads are not persisted")
	}

	// Repositories
	adminRepo := persistence.NewGormAdminRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRepository(db.DB)
	consultationRepo := persistence.NewGormConsultationRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	offeringRepo := persistence.NewGormOfferingRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(adminRepo, jwtService, log)
	contactService := leadapp.NewContactService(contactRepo, log)
	quoteService := leadapp.NewQuoteService(quoteRepo, log)
	consultationService := leadapp.NewConsultationService(consultationRepo, log)
	projectService := portfolioapp.NewProjectService(projectRepo, objectStorage, log)
	offeringService := portfolioapp.NewOfferingService(offeringRepo, log)
	mediaService := portfolioapp.NewMediaService(objectStorage, log)
	statsService := dashboardapp.NewStatsService(
		contactRepo, quoteRepo, consultationRepo, projectRepo, offeringRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack in order:
	// request ID, panic recovery, request logging, security headers,
	// CORS, body limit, optional rate limiting, then the session gate.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var authLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		authLimiter = middleware.NewRateLimiter(10, time.Minute)
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	gateConfig := middleware.DefaultSessionGateConfig(jwtService, cfg.Cookie.Name)
	gateConfig.Logger = log
	engine.Use(middleware.SessionGate(gateConfig))

	routerOpts := []router.RouterOption{router.WithAPIVersion("v1")}
	if authLimiter != nil {
		routerOpts = append(routerOpts, router.WithLoginMiddleware(middleware.AuthRateLimit(authLimiter)))
	}

	r := router.NewRouter(engine, routerOpts...)
	r.Setup(router.Handlers{
		Auth:          handler.NewAuthHandler(authService, cfg.Cookie),
		Contacts:      handler.NewContactHandler(contactService),
		Quotes:        handler.NewQuoteHandler(quoteService),
		Consultations: handler.NewConsultationHandler(consultationService),
		Projects:      handler.NewProjectHandler(projectService, mediaService),
		Offerings:     handler.NewOfferingHandler(offeringService),
		Dashboard:     handler.NewDashboardHandler(statsService),
		Health:        healthHandler(db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness including database connectivity
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
