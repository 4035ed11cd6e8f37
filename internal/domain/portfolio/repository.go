package portfolio

import (
	"context"

	"github.com/agency/backend/internal/domain/shared"
)

// ProjectRepository persists portfolio projects
type ProjectRepository interface {
	shared.Repository[Project]
	FindPublished(ctx context.Context) ([]Project, error)
}

// OfferingRepository persists service offerings
type OfferingRepository interface {
	shared.Repository[Offering]
	FindActive(ctx context.Context) ([]Offering, error)
}
