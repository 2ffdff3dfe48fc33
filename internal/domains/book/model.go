package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// DateLayout is the wire form for all date fields.
const DateLayout = "2006-01-02"

// Book represents the core Book entity. AuthorID must reference an
// existing author at write time, but the author may be deleted later,
// so read-side resolution treats it as possibly dangling.
type Book struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   *string    `json:"description" db:"description"`
	PublishedDate *time.Time `json:"published_date" db:"published_date"`
	AuthorID      uuid.UUID  `json:"author_id" db:"author_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// Filter carries the declarative query arguments for book listings.
// Author is an author-name substring resolved to AuthorIDs by the
// service before the store is queried; if the set resolves empty the
// listing short-circuits to no rows.
type Filter struct {
	Title       string
	Author      string
	PublishDate string
	AuthorIDs   []uuid.UUID
	Limit       int
	Offset      int
}

func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Limit, validation.Min(0)),
		validation.Field(&f.Offset, validation.Min(0)),
	)
}

// CreateRequest holds the fields for a new book. AuthorID is required
// and checked against the authors table by the write itself.
type CreateRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	PublishedDate *string `json:"published_date"`
	AuthorID      string  `json:"authorId"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.AuthorID, validation.Required, is.UUID),
		validation.Field(&r.PublishedDate, validation.Date(DateLayout)),
	)
}

// UpdateRequest holds a partial update. Nil means "leave unchanged".
type UpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	PublishedDate *string `json:"published_date"`
	AuthorID      *string `json:"authorId"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 500)),
		validation.Field(&r.AuthorID, is.UUID),
		validation.Field(&r.PublishedDate, validation.Date(DateLayout)),
	)
}
