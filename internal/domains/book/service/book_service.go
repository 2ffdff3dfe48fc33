package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared/apperror"
)

// DefaultLimit applies when a listing request leaves limit unset.
const DefaultLimit = 10

type bookService struct {
	repo    book.Repository
	authors author.Repository
}

// NewBookService wires the book coordinator. The author repository is
// needed only for the two-stage author-name filter.
func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{repo: repo, authors: authors}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, apperror.Validation("authorId", "invalid author id %q", req.AuthorID)
	}

	publishedDate, err := parseDate(req.PublishedDate)
	if err != nil {
		return nil, apperror.Validation("published_date", "invalid date %q, expected YYYY-MM-DD", *req.PublishedDate)
	}

	b := &book.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		PublishedDate: publishedDate,
		AuthorID:      authorID,
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, storeError(err)
	}
	return created, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	if err := filter.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	// Two-stage author filter: resolve matching author ids first, then
	// constrain books to that set. No matching author means no books,
	// never an unfiltered result.
	if filter.Author != "" {
		ids, err := s.authors.FindIDsByName(ctx, filter.Author)
		if err != nil {
			return nil, apperror.Unavailable("relational", err)
		}
		if len(ids) == 0 {
			return []book.Book{}, nil
		}
		filter.AuthorIDs = ids
	}

	books, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return books, nil
}

func (s *bookService) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, storeError(err)
	}
	return books, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.FromValidation(err)
	}

	// Existence check before the mutating call
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	// Merge only the provided fields
	if req.Title != nil {
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.PublishedDate != nil {
		publishedDate, err := parseDate(req.PublishedDate)
		if err != nil {
			return nil, apperror.Validation("published_date", "invalid date %q, expected YYYY-MM-DD", *req.PublishedDate)
		}
		existing.PublishedDate = publishedDate
	}
	if req.AuthorID != nil {
		authorID, err := uuid.Parse(*req.AuthorID)
		if err != nil {
			return nil, apperror.Validation("authorId", "invalid author id %q", *req.AuthorID)
		}
		existing.AuthorID = authorID
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return storeError(err)
	}

	// Single-store delete; reviews keep their bookId and simply miss
	// on resolution from here on.
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(book.DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func storeError(err error) error {
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		return apperror.NotFound("book")
	case errors.Is(err, book.ErrAuthorReference):
		return apperror.Validation("authorId", "referenced author does not exist")
	default:
		return apperror.Unavailable("relational", err)
	}
}
