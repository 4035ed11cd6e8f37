package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract shared by all entity repositories.
// Concrete repositories add entity-specific queries on top of it.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter Filter) (int64, error)
}
