package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/review"
)

// The entity types reference each other (Author.books, Book.author,
// Book.reviews, Review.book), so the objects are created with their
// scalar fields first and the relationship fields are attached
// afterwards via AddFieldConfig.

func (r *Registry) buildAuthorType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, ok := authorFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return a.ID.String(), nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, ok := authorFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return a.Name, nil
				},
			},
			"biography": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, ok := authorFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return a.Biography, nil
				},
			},
			"born_date": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					a, ok := authorFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return formatDate(a.BornDate), nil
				},
			},
		},
	})
}

func (r *Registry) buildBookType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, ok := bookFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return b.ID.String(), nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, ok := bookFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return b.Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, ok := bookFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return b.Description, nil
				},
			},
			"published_date": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, ok := bookFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return formatDate(b.PublishedDate), nil
				},
			},
			"authorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					b, ok := bookFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return b.AuthorID.String(), nil
				},
			},
		},
	})
}

func (r *Registry) buildReviewType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.ID.Hex(), nil
				},
			},
			"rating": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.Rating, nil
				},
			},
			"comment": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.Comment, nil
				},
			},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.UserID, nil
				},
			},
			"bookId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.BookID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rev, ok := reviewFromSource(p.Source)
					if !ok {
						return nil, nil
					}
					return rev.CreatedAt.UTC().Format(time.RFC3339), nil
				},
			},
		},
	})
}

// attachRelationFields wires the cross-entity fields once all three
// object types exist.
func (r *Registry) attachRelationFields() {
	r.authorType.AddFieldConfig("books", &graphql.Field{
		Type: graphql.NewList(r.bookType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			a, ok := authorFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			return r.relations.BooksOfAuthor(p.Context, a)
		},
	})

	r.bookType.AddFieldConfig("author", &graphql.Field{
		Type: r.authorType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			b, ok := bookFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			a, err := r.relations.AuthorOfBook(p.Context, b)
			if err != nil {
				return nil, err
			}
			if a == nil {
				// Dangling foreign key after an author delete
				return nil, nil
			}
			return a, nil
		},
	})

	r.bookType.AddFieldConfig("reviews", &graphql.Field{
		Type: graphql.NewList(r.reviewType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			b, ok := bookFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			return r.relations.ReviewsOfBook(p.Context, b)
		},
	})

	r.bookType.AddFieldConfig("rating", &graphql.Field{
		Type: graphql.Float,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			b, ok := bookFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			return r.relations.AverageRatingOfBook(p.Context, b)
		},
	})

	r.reviewType.AddFieldConfig("book", &graphql.Field{
		Type: r.bookType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			rev, ok := reviewFromSource(p.Source)
			if !ok {
				return nil, nil
			}
			b, err := r.relations.BookOfReview(p.Context, rev)
			if err != nil {
				return nil, err
			}
			if b == nil {
				// Soft reference to a book that no longer exists
				return nil, nil
			}
			return b, nil
		},
	})
}

func authorFromSource(src interface{}) (*author.Author, bool) {
	switch a := src.(type) {
	case *author.Author:
		return a, true
	case author.Author:
		return &a, true
	}
	return nil, false
}

func bookFromSource(src interface{}) (*book.Book, bool) {
	switch b := src.(type) {
	case *book.Book:
		return b, true
	case book.Book:
		return &b, true
	}
	return nil, false
}

func reviewFromSource(src interface{}) (*review.Review, bool) {
	switch rev := src.(type) {
	case *review.Review:
		return rev, true
	case review.Review:
		return &rev, true
	}
	return nil, false
}

func formatDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(author.DateLayout)
}
