package review

import (
	"context"
)

// Service defines the review operations exposed to the graph layer.
// Every operation runs purely against the document store; the relational
// store is never consulted.
type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Review, error)
	GetByID(ctx context.Context, id string) (*Review, error)
	GetByBook(ctx context.Context, bookID string) ([]Review, error)
	AverageRating(ctx context.Context, bookID string) (*float64, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*Review, error)
	Delete(ctx context.Context, id string) error
}
