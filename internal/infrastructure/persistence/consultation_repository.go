package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConsultationRepository implements lead.ConsultationRepository using GORM
type GormConsultationRepository struct {
	db *gorm.DB
}

// NewGormConsultationRepository creates a new GormConsultationRepository
func NewGormConsultationRepository(db *gorm.DB) *GormConsultationRepository {
	return &GormConsultationRepository{db: db}
}

// FindByID finds a consultation booking by its ID
func (r *GormConsultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*lead.Consultation, error) {
	var model models.ConsultationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all consultation bookings matching the filter
func (r *GormConsultationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]lead.Consultation, error) {
	var consultationModels []models.ConsultationModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ConsultationModel{}), filter)

	if err := query.Find(&consultationModels).Error; err != nil {
		return nil, err
	}

	consultations := make([]lead.Consultation, len(consultationModels))
	for i, model := range consultationModels {
		consultations[i] = *model.ToDomain()
	}
	return consultations, nil
}

// Save creates or updates a consultation booking
func (r *GormConsultationRepository) Save(ctx context.Context, consultation *lead.Consultation) error {
	model := models.ConsultationModelFromDomain(consultation)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a consultation booking
func (r *GormConsultationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ConsultationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts consultation bookings matching the filter
func (r *GormConsultationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ConsultationModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts consultation bookings with the given status
func (r *GormConsultationRepository) CountByStatus(ctx context.Context, status lead.ConsultationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ConsultationModel{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options including pagination and ordering
func (r *GormConsultationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	return applyPagination(query, filter, "created_at DESC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormConsultationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(message) LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "priority":
			query = query.Where("priority = ?", value)
		case "service":
			query = query.Where("service = ?", value)
		}
	}

	return query
}

// Ensure GormConsultationRepository implements lead.ConsultationRepository
var _ lead.ConsultationRepository = (*GormConsultationRepository)(nil)
