package lead

import (
	"context"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteService handles quote request operations
type QuoteService struct {
	repo   lead.QuoteRepository
	logger *zap.Logger
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(repo lead.QuoteRepository, logger *zap.Logger) *QuoteService {
	return &QuoteService{repo: repo, logger: logger}
}

// Create records a quote request submitted through the public form
func (s *QuoteService) Create(ctx context.Context, input CreateQuoteInput) (*lead.Quote, error) {
	quote, err := lead.NewQuote(input.Name, input.Email, input.Phone, input.Company,
		input.Services, input.Budget, input.Timeline, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, quote); err != nil {
		s.logger.Error("Failed to save quote", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Quote request received",
		zap.String("quote_id", quote.ID.String()),
		zap.String("email", quote.Email),
		zap.Strings("services", quote.Services))
	return quote, nil
}

// Get returns a single quote request
func (s *QuoteService) Get(ctx context.Context, id uuid.UUID) (*lead.Quote, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of quote requests matching the filter
func (s *QuoteService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[lead.Quote], error) {
	quotes, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(quotes, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies an admin update to a quote request.
// Only status, priority and notes can be changed.
func (s *QuoteService) Update(ctx context.Context, id uuid.UUID, input UpdateQuoteInput) (*lead.Quote, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if err := quote.SetStatus(lead.QuoteStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Priority != nil {
		if err := quote.SetPriority(lead.Priority(*input.Priority)); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		quote.SetNotes(*input.Notes)
	}

	if err := s.repo.Save(ctx, quote); err != nil {
		s.logger.Error("Failed to update quote", zap.Error(err))
		return nil, err
	}
	return quote, nil
}

// Delete removes a quote request
func (s *QuoteService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Quote request deleted", zap.String("quote_id", id.String()))
	return nil
}
