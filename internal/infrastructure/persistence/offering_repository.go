package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOfferingRepository implements portfolio.OfferingRepository using GORM
type GormOfferingRepository struct {
	db *gorm.DB
}

// NewGormOfferingRepository creates a new GormOfferingRepository
func NewGormOfferingRepository(db *gorm.DB) *GormOfferingRepository {
	return &GormOfferingRepository{db: db}
}

// FindByID finds a service offering by its ID
func (r *GormOfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Offering, error) {
	var model models.OfferingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all service offerings matching the filter
func (r *GormOfferingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]portfolio.Offering, error) {
	var offeringModels []models.OfferingModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OfferingModel{}), filter)

	if err := query.Find(&offeringModels).Error; err != nil {
		return nil, err
	}

	offerings := make([]portfolio.Offering, len(offeringModels))
	for i, model := range offeringModels {
		offerings[i] = *model.ToDomain()
	}
	return offerings, nil
}

// FindActive finds active offerings ordered for public display
func (r *GormOfferingRepository) FindActive(ctx context.Context) ([]portfolio.Offering, error) {
	var offeringModels []models.OfferingModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&offeringModels).Error; err != nil {
		return nil, err
	}

	offerings := make([]portfolio.Offering, len(offeringModels))
	for i, model := range offeringModels {
		offerings[i] = *model.ToDomain()
	}
	return offerings, nil
}

// Save creates or updates a service offering
func (r *GormOfferingRepository) Save(ctx context.Context, offering *portfolio.Offering) error {
	model := models.OfferingModelFromDomain(offering)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a service offering
func (r *GormOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OfferingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts service offerings matching the filter
func (r *GormOfferingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.OfferingModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options including pagination and ordering
func (r *GormOfferingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "sort_order ASC, created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOfferingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	return query
}

// Ensure GormOfferingRepository implements portfolio.OfferingRepository
var _ portfolio.OfferingRepository = (*GormOfferingRepository)(nil)
