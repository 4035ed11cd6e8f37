package portfolio

import (
	"context"

	"github.com/agency/backend/internal/domain/portfolio"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferingService handles service offering operations
type OfferingService struct {
	repo   portfolio.OfferingRepository
	logger *zap.Logger
}

// NewOfferingService creates a new OfferingService
func NewOfferingService(repo portfolio.OfferingRepository, logger *zap.Logger) *OfferingService {
	return &OfferingService{repo: repo, logger: logger}
}

// Create adds an active offering
func (s *OfferingService) Create(ctx context.Context, input CreateOfferingInput) (*portfolio.Offering, error) {
	offering, err := portfolio.NewOffering(input.Title, input.Description, input.Icon, input.Features)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, offering); err != nil {
		s.logger.Error("Failed to save offering", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Offering created",
		zap.String("offering_id", offering.ID.String()),
		zap.String("title", offering.Title))
	return offering, nil
}

// Get returns a single offering
func (s *OfferingService) Get(ctx context.Context, id uuid.UUID) (*portfolio.Offering, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of offerings matching the filter
func (s *OfferingService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[portfolio.Offering], error) {
	offerings, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(offerings, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListActive returns active offerings for the public site
func (s *OfferingService) ListActive(ctx context.Context) ([]portfolio.Offering, error) {
	return s.repo.FindActive(ctx)
}

// Update applies an admin update to an offering
func (s *OfferingService) Update(ctx context.Context, id uuid.UUID, input UpdateOfferingInput) (*portfolio.Offering, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		offering.Title = *input.Title
	}
	if input.Description != nil {
		offering.Description = *input.Description
	}
	if input.Icon != nil {
		offering.Icon = *input.Icon
	}
	if input.Features != nil {
		offering.Features = *input.Features
	}
	if input.Active != nil {
		if *input.Active {
			offering.Activate()
		} else {
			offering.Deactivate()
		}
	}
	if input.SortOrder != nil {
		offering.SortOrder = *input.SortOrder
	}
	offering.Touch()

	if err := s.repo.Save(ctx, offering); err != nil {
		s.logger.Error("Failed to update offering", zap.Error(err))
		return nil, err
	}
	return offering, nil
}

// Delete removes an offering
func (s *OfferingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Offering deleted", zap.String("offering_id", id.String()))
	return nil
}
