package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DateLayout is the wire form for all date fields.
const DateLayout = "2006-01-02"

// Author represents the core Author entity stored in the relational
// store. Books reference it by foreign key; deleting an author does not
// cascade, so book-side lookups must tolerate a miss.
type Author struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Biography *string    `json:"biography" db:"biography"`
	BornDate  *time.Time `json:"born_date" db:"born_date"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Filter carries the declarative query arguments for author listings.
// Name is a case-insensitive substring match, BirthYear a prefix match
// against the date's string form (a 4-digit year matches any date
// starting with it).
type Filter struct {
	Name      string
	BirthYear string
	Limit     int
	Offset    int
}

// Validate rejects negative paging bounds. Callers are trusted with the
// upper bound.
func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Limit, validation.Min(0)),
		validation.Field(&f.Offset, validation.Min(0)),
	)
}

// CreateRequest holds the fields for a new author.
type CreateRequest struct {
	Name      string  `json:"name"`
	Biography *string `json:"biography"`
	BornDate  *string `json:"born_date"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.BornDate, validation.Date(DateLayout)),
	)
}

// UpdateRequest holds a partial update. Nil means "leave unchanged",
// which is distinct from an explicit empty value.
type UpdateRequest struct {
	Name      *string `json:"name"`
	Biography *string `json:"biography"`
	BornDate  *string `json:"born_date"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, 255)),
		validation.Field(&r.BornDate, validation.Date(DateLayout)),
	)
}
