package lead

import (
	"context"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConsultationService handles consultation booking operations
type ConsultationService struct {
	repo   lead.ConsultationRepository
	logger *zap.Logger
}

// NewConsultationService creates a new ConsultationService
func NewConsultationService(repo lead.ConsultationRepository, logger *zap.Logger) *ConsultationService {
	return &ConsultationService{repo: repo, logger: logger}
}

// Create records a consultation booking submitted through the public form
func (s *ConsultationService) Create(ctx context.Context, input CreateConsultationInput) (*lead.Consultation, error) {
	consultation, err := lead.NewConsultation(input.Name, input.Email, input.Phone,
		input.Company, input.Service, input.Message, input.PreferredDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, consultation); err != nil {
		s.logger.Error("Failed to save consultation", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Consultation booking received",
		zap.String("consultation_id", consultation.ID.String()),
		zap.String("email", consultation.Email))
	return consultation, nil
}

// Get returns a single consultation booking
func (s *ConsultationService) Get(ctx context.Context, id uuid.UUID) (*lead.Consultation, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of consultation bookings matching the filter
func (s *ConsultationService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[lead.Consultation], error) {
	consultations, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(consultations, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies an admin update to a consultation booking.
// Only status, priority, notes and the scheduled time can be changed.
func (s *ConsultationService) Update(ctx context.Context, id uuid.UUID, input UpdateConsultationInput) (*lead.Consultation, error) {
	consultation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// scheduling first: an explicit status in the same request wins
	if input.ScheduledAt != nil {
		consultation.Schedule(*input.ScheduledAt)
	}
	if input.Status != nil {
		if err := consultation.SetStatus(lead.ConsultationStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Priority != nil {
		if err := consultation.SetPriority(lead.Priority(*input.Priority)); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		consultation.SetNotes(*input.Notes)
	}

	if err := s.repo.Save(ctx, consultation); err != nil {
		s.logger.Error("Failed to update consultation", zap.Error(err))
		return nil, err
	}
	return consultation, nil
}

// Delete removes a consultation booking
func (s *ConsultationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Consultation booking deleted", zap.String("consultation_id", id.String()))
	return nil
}
