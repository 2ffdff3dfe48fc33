package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the book operations exposed to the graph layer.
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetAll(ctx context.Context, filter Filter) ([]Book, error)
	GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
