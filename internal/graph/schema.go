package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/review"
	"library-backend/internal/shared/apperror"
	"library-backend/pkg/identity"
)

// Registry binds the named query and mutation roots to the domain
// services, and the per-type relationship fields to the relation
// resolver. It dispatches only; business rules live in the services.
type Registry struct {
	authors   author.Service
	books     book.Service
	reviews   review.Service
	relations RelationResolver

	authorType *graphql.Object
	bookType   *graphql.Object
	reviewType *graphql.Object
}

// NewRegistry builds the registry. Stores are injected here at
// construction and never looked up from ambient state.
func NewRegistry(authors author.Service, books book.Service, reviews review.Service, relations RelationResolver) *Registry {
	return &Registry{
		authors:   authors,
		books:     books,
		reviews:   reviews,
		relations: relations,
	}
}

// Schema assembles the executable schema: entity types, relationship
// fields, query root, mutation root.
func (r *Registry) Schema() (graphql.Schema, error) {
	r.authorType = r.buildAuthorType()
	r.bookType = r.buildBookType()
	r.reviewType = r.buildReviewType()
	r.attachRelationFields()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.buildQueryRoot(),
		Mutation: r.buildMutationRoot(),
	})
}

func (r *Registry) buildQueryRoot() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"authors": &graphql.Field{
				Type: graphql.NewList(r.authorType),
				Args: graphql.FieldConfigArgument{
					"limit":     &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"name":      &graphql.ArgumentConfig{Type: graphql.String},
					"birthYear": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveAuthors,
			},
			"author": &graphql.Field{
				Type: r.authorType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveAuthor,
			},
			"books": &graphql.Field{
				Type: graphql.NewList(r.bookType),
				Args: graphql.FieldConfigArgument{
					"limit":       &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
					"offset":      &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"author":      &graphql.ArgumentConfig{Type: graphql.String},
					"publishDate": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveBooks,
			},
			"book": &graphql.Field{
				Type: r.bookType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveBook,
			},
		},
	})
}

func (r *Registry) buildMutationRoot() *graphql.Object {
	createBookInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateBookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"published_date": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	updateBookInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateBookInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":             &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"title":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"published_date": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"authorId":       &graphql.InputObjectFieldConfig{Type: graphql.ID},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createAuthor": &graphql.Field{
				Type: r.authorType,
				Args: graphql.FieldConfigArgument{
					"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"biography": &graphql.ArgumentConfig{Type: graphql.String},
					"born_date": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCreateAuthor,
			},
			"updateAuthor": &graphql.Field{
				Type: r.authorType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"name":      &graphql.ArgumentConfig{Type: graphql.String},
					"biography": &graphql.ArgumentConfig{Type: graphql.String},
					"born_date": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateAuthor,
			},
			"deleteAuthor": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteAuthor,
			},
			"createBook": &graphql.Field{
				Type: r.bookType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createBookInput)},
				},
				Resolve: r.resolveCreateBook,
			},
			"updateBook": &graphql.Field{
				Type: r.bookType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateBookInput)},
				},
				Resolve: r.resolveUpdateBook,
			},
			"deleteBook": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteBook,
			},
			"createReview": &graphql.Field{
				Type: r.reviewType,
				Args: graphql.FieldConfigArgument{
					"bookId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"rating":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"comment": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveCreateReview,
			},
			"updateReview": &graphql.Field{
				Type: r.reviewType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"rating":  &graphql.ArgumentConfig{Type: graphql.Int},
					"comment": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.resolveUpdateReview,
			},
			"deleteReview": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveDeleteReview,
			},
		},
	})
}

// ---- query resolvers ----

func (r *Registry) resolveAuthors(p graphql.ResolveParams) (interface{}, error) {
	filter := author.Filter{
		Name:      stringArg(p.Args, "name"),
		BirthYear: stringArg(p.Args, "birthYear"),
		Limit:     intArg(p.Args, "limit"),
		Offset:    intArg(p.Args, "offset"),
	}
	return r.authors.GetAll(p.Context, filter)
}

func (r *Registry) resolveAuthor(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseUUIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}

	a, err := r.authors.GetByID(p.Context, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *Registry) resolveBooks(p graphql.ResolveParams) (interface{}, error) {
	filter := book.Filter{
		Title:       stringArg(p.Args, "title"),
		Author:      stringArg(p.Args, "author"),
		PublishDate: stringArg(p.Args, "publishDate"),
		Limit:       intArg(p.Args, "limit"),
		Offset:      intArg(p.Args, "offset"),
	}
	return r.books.GetAll(p.Context, filter)
}

func (r *Registry) resolveBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseUUIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}

	b, err := r.books.GetByID(p.Context, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// ---- author mutations ----

func (r *Registry) resolveCreateAuthor(p graphql.ResolveParams) (interface{}, error) {
	req := &author.CreateRequest{
		Name:      stringArg(p.Args, "name"),
		Biography: optionalStringArg(p.Args, "biography"),
		BornDate:  optionalStringArg(p.Args, "born_date"),
	}
	return r.authors.Create(p.Context, req)
}

func (r *Registry) resolveUpdateAuthor(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseUUIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}

	req := &author.UpdateRequest{
		Name:      optionalStringArg(p.Args, "name"),
		Biography: optionalStringArg(p.Args, "biography"),
		BornDate:  optionalStringArg(p.Args, "born_date"),
	}
	return r.authors.Update(p.Context, id, req)
}

func (r *Registry) resolveDeleteAuthor(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseUUIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}

	if err := r.authors.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

// ---- book mutations ----

func (r *Registry) resolveCreateBook(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, apperror.Validation("input", "input object is required")
	}

	req := &book.CreateRequest{
		Title:         stringArg(input, "title"),
		Description:   optionalStringArg(input, "description"),
		PublishedDate: optionalStringArg(input, "published_date"),
		AuthorID:      stringArg(input, "authorId"),
	}
	return r.books.Create(p.Context, req)
}

func (r *Registry) resolveUpdateBook(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, apperror.Validation("input", "input object is required")
	}

	id, err := parseUUIDArg(input, "id")
	if err != nil {
		return nil, err
	}

	req := &book.UpdateRequest{
		Title:         optionalStringArg(input, "title"),
		Description:   optionalStringArg(input, "description"),
		PublishedDate: optionalStringArg(input, "published_date"),
		AuthorID:      optionalStringArg(input, "authorId"),
	}
	return r.books.Update(p.Context, id, req)
}

func (r *Registry) resolveDeleteBook(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseUUIDArg(p.Args, "id")
	if err != nil {
		return nil, err
	}

	if err := r.books.Delete(p.Context, id); err != nil {
		return nil, err
	}
	return true, nil
}

// ---- review mutations ----

func (r *Registry) resolveCreateReview(p graphql.ResolveParams) (interface{}, error) {
	// The reviewing user's identity comes from the verified bearer
	// token, never from mutation arguments.
	userID, ok := identity.FromContext(p.Context)
	if !ok {
		return nil, apperror.Unauthenticated("authentication required to create a review")
	}

	req := &review.CreateRequest{
		BookID:  stringArg(p.Args, "bookId"),
		Rating:  intArg(p.Args, "rating"),
		Comment: optionalStringArg(p.Args, "comment"),
		UserID:  userID,
	}
	return r.reviews.Create(p.Context, req)
}

func (r *Registry) resolveUpdateReview(p graphql.ResolveParams) (interface{}, error) {
	req := &review.UpdateRequest{
		Rating:  optionalIntArg(p.Args, "rating"),
		Comment: optionalStringArg(p.Args, "comment"),
	}
	return r.reviews.Update(p.Context, stringArg(p.Args, "id"), req)
}

func (r *Registry) resolveDeleteReview(p graphql.ResolveParams) (interface{}, error) {
	if err := r.reviews.Delete(p.Context, stringArg(p.Args, "id")); err != nil {
		return nil, err
	}
	return true, nil
}

// ---- argument helpers ----

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func optionalStringArg(args map[string]interface{}, key string) *string {
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}

func intArg(args map[string]interface{}, key string) int {
	if v, ok := args[key].(int); ok {
		return v
	}
	return 0
}

func optionalIntArg(args map[string]interface{}, key string) *int {
	if v, ok := args[key].(int); ok {
		return &v
	}
	return nil
}

func parseUUIDArg(args map[string]interface{}, key string) (uuid.UUID, error) {
	raw := stringArg(args, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation(key, "invalid identifier %q", raw)
	}
	return id, nil
}
