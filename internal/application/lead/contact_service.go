package lead

import (
	"context"

	"github.com/agency/backend/internal/domain/lead"
	"github.com/agency/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactService handles contact message operations
type ContactService struct {
	repo   lead.ContactRepository
	logger *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo lead.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Create records a contact message submitted through the public form
func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*lead.Contact, error) {
	contact, err := lead.NewContact(input.Name, input.Email, input.Phone, input.Company, input.Message)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, contact); err != nil {
		s.logger.Error("Failed to save contact", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Contact message received",
		zap.String("contact_id", contact.ID.String()),
		zap.String("email", contact.Email))
	return contact, nil
}

// Get returns a single contact message
func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*lead.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of contact messages matching the filter
func (s *ContactService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[lead.Contact], error) {
	contacts, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(contacts, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies an admin update to a contact message.
// Only status and notes can be changed; other fields are immutable.
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, input UpdateContactInput) (*lead.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if err := contact.SetStatus(lead.ContactStatus(*input.Status)); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		contact.SetNotes(*input.Notes)
	}

	if err := s.repo.Save(ctx, contact); err != nil {
		s.logger.Error("Failed to update contact", zap.Error(err))
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact message
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Contact message deleted", zap.String("contact_id", id.String()))
	return nil
}
