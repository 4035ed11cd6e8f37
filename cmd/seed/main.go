package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/agency/backend/internal/domain/identity"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/config"
	"github.com/agency/backend/internal/infrastructure/logger"
	"github.com/agency/backend/internal/infrastructure/persistence"
)

func main() {
	var (
		email    string
		password string
		name     string
		logLevel string
	)

	flag.StringVar(&email, "email", os.Getenv("AGENCY_SEED_EMAIL"), "Admin email address")
	flag.StringVar(&password, "password", os.Getenv("AGENCY_SEED_PASSWORD"), "Admin password")
	flag.StringVar(&name, "name", os.Getenv("AGENCY_SEED_NAME"), "Admin display name")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if email == "" || password == "" {
		log.Fatal("Email and password are required (flags or AGENCY_SEED_EMAIL / AGENCY_SEED_PASSWORD)")
	}
	if name == "" {
		name = "Administrator"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := persistence.NewGormAdminRepository(db.DB)
	if err := provision(ctx, repo, email, password, name, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
}

// provision creates the super-admin account, or refreshes the password and
// display name when an account with the same email already exists. Safe to
// run repeatedly.
func provision(ctx context.Context, repo identity.Repository, email, password, name string, log *zap.Logger) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if existing != nil {
		if err := existing.ResetPassword(password); err != nil {
			return err
		}
		if err := existing.Rename(name); err != nil {
			return err
		}
		if err := repo.Save(ctx, existing); err != nil {
			return err
		}
		log.Info("Updated existing admin account",
			zap.String("email", existing.Email),
			zap.String("admin_id", existing.ID.String()),
		)
		return nil
	}

	admin, err := identity.NewAdmin(email, password, name, identity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, admin); err != nil {
		return err
	}
	log.Info("Created super-admin account",
		zap.String("email", admin.Email),
		zap.String("admin_id", admin.ID.String()),
	)
	return nil
}
