package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns the pgx-backed author repository.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		INSERT INTO authors (id, name, biography, born_date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		a.ID,
		a.Name,
		a.Biography,
		a.BornDate,
	).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
		SELECT id, name, biography, born_date, created_at
		FROM authors
		WHERE id = $1
	`

	a := &author.Author{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Biography,
		&a.BornDate,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context, filter author.Filter) ([]author.Author, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT id, name, biography, born_date, created_at
		FROM authors
		WHERE %s
		ORDER BY created_at ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.BornDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		UPDATE authors
		SET name = $2, biography = $3, born_date = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, a.ID, a.Name, a.Biography, a.BornDate)
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, author.ErrAuthorNotFound
	}

	return a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM authors WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if result.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	return nil
}

func (r *postgresRepository) FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	query := `SELECT id FROM authors WHERE name ILIKE $1`

	rows, err := r.pool.Query(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to find authors by name: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan author id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read author ids: %w", err)
	}

	return ids, nil
}

// buildWhereClause constructs the WHERE clause for author listings.
// Returns: (whereClause string, args []interface{})
func buildWhereClause(filter author.Filter) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIndex := 1

	// Case-insensitive substring match on name
	if filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Name+"%")
		argIndex++
	}

	// Prefix match on the date's string form
	if filter.BirthYear != "" {
		conditions = append(conditions, fmt.Sprintf("to_char(born_date, 'YYYY-MM-DD') LIKE $%d", argIndex))
		args = append(args, filter.BirthYear+"%")
		argIndex++
	}

	return strings.Join(conditions, " AND "), args
}
