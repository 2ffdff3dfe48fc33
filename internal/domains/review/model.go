package review

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is an independent document referencing a book by identifier
// only. The reference is soft: the document store never checks that the
// book exists, and a review may outlive its book.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   *string            `bson:"comment,omitempty" json:"comment"`
	UserID    string             `bson:"userId" json:"userId"`
	BookID    string             `bson:"bookId" json:"bookId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateRequest holds the fields for a new review. UserID comes from the
// verified caller identity, never from client arguments. CreatedAt is
// assigned by the service.
type CreateRequest struct {
	BookID  string  `json:"bookId"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
	UserID  string  `json:"userId"`
}

// Validate checks required fields and the rating range. The bookId is
// checked for shape only; its target is intentionally never verified
// against the relational store.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, is.UUID),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.UserID, validation.Required),
	)
}

// UpdateRequest holds a partial update. Only rating and comment are
// mutable; userId and bookId are immutable after creation.
type UpdateRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Min(1), validation.Max(5)),
	)
}
