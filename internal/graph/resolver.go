package graph

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/review"
	"library-backend/internal/shared/apperror"
)

// RelationResolver resolves relationship fields across store boundaries,
// one method per relationship. Every cross-store join is best effort: a
// reference whose target no longer exists resolves to nil or an empty
// slice, never an error. Store connectivity failures do propagate, and
// attach to the requesting field only.
type RelationResolver interface {
	// AuthorOfBook resolves Book.author. Nil when the author was
	// deleted out from under the book.
	AuthorOfBook(ctx context.Context, b *book.Book) (*author.Author, error)

	// BooksOfAuthor resolves Author.books in stable store order.
	BooksOfAuthor(ctx context.Context, a *author.Author) ([]book.Book, error)

	// ReviewsOfBook resolves Book.reviews from the document store, in
	// insertion order.
	ReviewsOfBook(ctx context.Context, b *book.Book) ([]review.Review, error)

	// BookOfReview resolves Review.book. Nil when the soft reference
	// dangles or is malformed.
	BookOfReview(ctx context.Context, r *review.Review) (*book.Book, error)

	// AverageRatingOfBook resolves Book.rating as the mean of the
	// book's review ratings. Nil when there are no reviews.
	AverageRatingOfBook(ctx context.Context, b *book.Book) (*float64, error)
}

type relationResolver struct {
	authors author.Service
	books   book.Service
	reviews review.Service
}

// NewRelationResolver builds the cross-store federation glue over the
// three domain services. Resolution is lazy and per parent entity; no
// batching happens at this layer.
func NewRelationResolver(authors author.Service, books book.Service, reviews review.Service) RelationResolver {
	return &relationResolver{
		authors: authors,
		books:   books,
		reviews: reviews,
	}
}

func (r *relationResolver) AuthorOfBook(ctx context.Context, b *book.Book) (*author.Author, error) {
	a, err := r.authors.GetByID(ctx, b.AuthorID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *relationResolver) BooksOfAuthor(ctx context.Context, a *author.Author) ([]book.Book, error) {
	return r.books.GetByAuthor(ctx, a.ID)
}

func (r *relationResolver) ReviewsOfBook(ctx context.Context, b *book.Book) ([]review.Review, error) {
	return r.reviews.GetByBook(ctx, b.ID.String())
}

func (r *relationResolver) BookOfReview(ctx context.Context, rev *review.Review) (*book.Book, error) {
	bookID, err := uuid.Parse(rev.BookID)
	if err != nil {
		// Malformed soft reference, treated the same as dangling
		return nil, nil
	}

	b, err := r.books.GetByID(ctx, bookID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *relationResolver) AverageRatingOfBook(ctx context.Context, b *book.Book) (*float64, error) {
	return r.reviews.AverageRating(ctx, b.ID.String())
}
