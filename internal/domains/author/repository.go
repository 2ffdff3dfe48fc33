package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines relational-store access for authors.
type Repository interface {
	// Create inserts a new author and returns it with store-assigned
	// identity and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns authors matching the filter, ordered by creation
	// time then id for a stable listing.
	GetAll(ctx context.Context, filter Filter) ([]Author, error)

	// Update persists the full entity state. Partial-update merging is
	// the service's job.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author. Books keep their authorId; the
	// reference simply dangles afterwards.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindIDsByName returns ids of authors whose name contains the
	// given substring, case-insensitively. Used by the two-stage book
	// author filter.
	FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error)
}
