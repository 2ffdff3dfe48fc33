package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the author operations exposed to the graph layer.
// Mutations are single-entity, single-store; deleting an author never
// touches its books.
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetAll(ctx context.Context, filter Filter) ([]Author, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
