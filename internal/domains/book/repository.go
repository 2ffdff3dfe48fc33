package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines relational-store access for books.
type Repository interface {
	// Create inserts a new book. The author reference is checked as
	// part of the write; a miss surfaces as ErrAuthorReference.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound if the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll returns books matching the filter, ordered by creation
	// time then id.
	GetAll(ctx context.Context, filter Filter) ([]Book, error)

	// Update persists the full entity state.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes the book. Reviews referencing it are untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByAuthor returns all books with the given authorId in stable
	// order. Used by the Author.books field resolver.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)
}
