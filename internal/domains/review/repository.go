package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateFields carries the mutable review fields for a partial update.
// Nil means "leave unchanged".
type UpdateFields struct {
	Rating  *int
	Comment *string
}

// Repository defines document-store access for reviews. All lookups by
// book are plain filtered finds on the bookId field; there is no index
// or constraint tying it to the relational store.
type Repository interface {
	// Create inserts the review document as-is.
	Create(ctx context.Context, r *Review) (*Review, error)

	// FindByID returns ErrReviewNotFound if the id does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Review, error)

	// FindByBook returns all reviews referencing bookID in insertion
	// order (_id ascending).
	FindByBook(ctx context.Context, bookID string) ([]Review, error)

	// UpdateByID applies the given fields and returns the updated
	// document, or ErrReviewNotFound.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) (*Review, error)

	// DeleteByID removes the review, or returns ErrReviewNotFound.
	DeleteByID(ctx context.Context, id primitive.ObjectID) error

	// AverageRatingByBook returns the mean rating of all reviews for
	// bookID, or nil when the book has no reviews.
	AverageRatingByBook(ctx context.Context, bookID string) (*float64, error)
}
