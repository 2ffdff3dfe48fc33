package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/apperror"
)

// DefaultLimit applies when a listing request leaves limit unset.
const DefaultLimit = 10

type authorService struct {
	repo author.Repository
}

// NewAuthorService wires the mutation/query coordinator for authors.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	bornDate, err := parseDate(req.BornDate)
	if err != nil {
		return nil, apperror.Validation("born_date", "invalid date %q, expected YYYY-MM-DD", *req.BornDate)
	}

	a := &author.Author{
		ID:        uuid.New(),
		Name:      req.Name,
		Biography: req.Biography,
		BornDate:  bornDate,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, storeError(err)
	}
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return a, nil
}

func (s *authorService) GetAll(ctx context.Context, filter author.Filter) ([]author.Author, error) {
	if err := filter.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	authors, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return authors, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// Existence check before the mutating call
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	// Merge only the provided fields
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Biography != nil {
		existing.Biography = req.Biography
	}
	if req.BornDate != nil {
		bornDate, err := parseDate(req.BornDate)
		if err != nil {
			return nil, apperror.Validation("born_date", "invalid date %q, expected YYYY-MM-DD", *req.BornDate)
		}
		existing.BornDate = bornDate
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return storeError(err)
	}

	// Single-store delete; books keep their authorId and the reference
	// dangles from here on.
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(author.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func storeError(err error) error {
	if errors.Is(err, author.ErrAuthorNotFound) {
		return apperror.NotFound("author")
	}
	return apperror.Unavailable("relational", err)
}
