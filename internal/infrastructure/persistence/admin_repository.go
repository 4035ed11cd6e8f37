package persistence

import (
	"context"
	"errors"

	"github.com/agency/backend/internal/domain/identity"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdminRepository implements identity.Repository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// FindByID finds an admin account by its ID
func (r *GormAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds an admin account by its normalized email
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).
		First(&model, "email = ?", identity.NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates an admin account
func (r *GormAdminRepository) Save(ctx context.Context, admin *identity.Admin) error {
	model := models.AdminModelFromDomain(admin)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts all admin accounts
func (r *GormAdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdminModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAdminRepository implements identity.Repository
var _ identity.Repository = (*GormAdminRepository)(nil)
