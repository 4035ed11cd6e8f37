package lead

import (
	"context"

	"github.com/agency/backend/internal/domain/shared"
)

// ContactRepository persists contact messages
type ContactRepository interface {
	shared.Repository[Contact]
	CountByStatus(ctx context.Context, status ContactStatus) (int64, error)
}

// QuoteRepository persists quote requests
type QuoteRepository interface {
	shared.Repository[Quote]
	CountByStatus(ctx context.Context, status QuoteStatus) (int64, error)
}

// ConsultationRepository persists consultation bookings
type ConsultationRepository interface {
	shared.Repository[Consultation]
	CountByStatus(ctx context.Context, status ConsultationStatus) (int64, error)
}
