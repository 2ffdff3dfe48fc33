package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	// The author reference is checked inside the insert itself, so the
	// write stays a single atomic store call while author deletion
	// remains free to leave references dangling.
	query := `
		INSERT INTO books (id, title, description, published_date, author_id, created_at)
		SELECT $1, $2, $3, $4, $5, NOW()
		WHERE EXISTS (SELECT 1 FROM authors WHERE id = $5)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID,
		b.Title,
		b.Description,
		b.PublishedDate,
		b.AuthorID,
	).Scan(&b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrAuthorReference
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
		SELECT id, title, description, published_date, author_id, created_at
		FROM books
		WHERE id = $1
	`

	b := &book.Book{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.PublishedDate,
		&b.AuthorID,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT id, title, description, published_date, author_id, created_at
		FROM books
		WHERE %s
		ORDER BY created_at ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
		UPDATE books
		SET title = $2, description = $3, published_date = $4, author_id = $5
		WHERE id = $1 AND EXISTS (SELECT 1 FROM authors WHERE id = $5)
	`

	result, err := r.pool.Exec(ctx, query,
		b.ID,
		b.Title,
		b.Description,
		b.PublishedDate,
		b.AuthorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if result.RowsAffected() == 0 {
		// Zero rows means either the book is gone or the author
		// reference does not resolve; a second lookup tells them apart.
		if _, lookupErr := r.GetByID(ctx, b.ID); lookupErr == nil {
			return nil, book.ErrAuthorReference
		}
		return nil, book.ErrBookNotFound
	}

	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
		SELECT id, title, description, published_date, author_id, created_at
		FROM books
		WHERE author_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func scanBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		var b book.Book
		err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.Description,
			&b.PublishedDate,
			&b.AuthorID,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

// buildWhereClause constructs the WHERE clause for book listings.
// Returns: (whereClause string, args []interface{})
func buildWhereClause(filter book.Filter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	// Case-insensitive substring match on title
	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Title+"%")
		argIndex++
	}

	// Prefix match on the date's string form
	if filter.PublishDate != "" {
		conditions = append(conditions, fmt.Sprintf("to_char(published_date, 'YYYY-MM-DD') LIKE $%d", argIndex))
		args = append(args, filter.PublishDate+"%")
		argIndex++
	}

	// Author id set resolved by the two-stage author-name filter
	if filter.AuthorIDs != nil {
		ids := make([]string, len(filter.AuthorIDs))
		for i, id := range filter.AuthorIDs {
			ids[i] = id.String()
		}
		conditions = append(conditions, fmt.Sprintf("author_id = ANY($%d::uuid[])", argIndex))
		args = append(args, ids)
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}
