package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/review"
	"library-backend/internal/shared/apperror"
)

type reviewService struct {
	repo review.Repository
}

// NewReviewService wires the review coordinator. It holds no handle to
// the relational store: bookId is a soft reference and stays unvalidated
// at write time.
func NewReviewService(repo review.Repository) review.Service {
	return &reviewService{repo: repo}
}

func (s *reviewService) Create(ctx context.Context, req *review.CreateRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	rev := &review.Review{
		ID:      primitive.NewObjectID(),
		Rating:  req.Rating,
		Comment: req.Comment,
		UserID:  req.UserID,
		BookID:  req.BookID,
		// Server-assigned, immutable; a caller-supplied value is
		// never consulted.
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, rev)
	if err != nil {
		return nil, storeError(err)
	}
	return created, nil
}

func (s *reviewService) GetByID(ctx context.Context, id string) (*review.Review, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rev, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, storeError(err)
	}
	return rev, nil
}

func (s *reviewService) GetByBook(ctx context.Context, bookID string) ([]review.Review, error) {
	reviews, err := s.repo.FindByBook(ctx, bookID)
	if err != nil {
		return nil, storeError(err)
	}
	return reviews, nil
}

func (s *reviewService) AverageRating(ctx context.Context, bookID string) (*float64, error) {
	average, err := s.repo.AverageRatingByBook(ctx, bookID)
	if err != nil {
		return nil, storeError(err)
	}
	return average, nil
}

func (s *reviewService) Update(ctx context.Context, id string, req *review.UpdateRequest) (*review.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	// Existence check before the mutating call
	if _, err := s.repo.FindByID(ctx, oid); err != nil {
		return nil, storeError(err)
	}

	// Rating and comment only; userId and bookId stay as created
	updated, err := s.repo.UpdateByID(ctx, oid, review.UpdateFields{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, oid); err != nil {
		return storeError(err)
	}

	if err := s.repo.DeleteByID(ctx, oid); err != nil {
		return storeError(err)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.Validation("id", "invalid review id %q", id)
	}
	return oid, nil
}

func storeError(err error) error {
	if errors.Is(err, review.ErrReviewNotFound) {
		return apperror.NotFound("review")
	}
	return apperror.Unavailable("document", err)
}
