package container

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog/log"

	"library-backend/internal/config"
	"library-backend/internal/graph"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/identity"

	"library-backend/internal/domains/author"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"
	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/review"
	reviewRepo "library-backend/internal/domains/review/repository"
	reviewService "library-backend/internal/domains/review/service"
)

// Container holds the full dependency graph: config, the two store
// handles, repositories, services, and the executable schema. Stores
// are injected at construction and never read from globals.
type Container struct {
	Config   *config.Config
	Postgres *database.PostgresDB
	Mongo    *database.MongoDB

	AuthorRepo author.Repository
	BookRepo   book.Repository
	ReviewRepo review.Repository

	AuthorService author.Service
	BookService   book.Service
	ReviewService review.Service

	Relations graph.RelationResolver
	Schema    graphql.Schema

	IdentityExtractor *identity.Extractor
}

// NewContainer initializes everything in dependency order: config,
// stores, repositories, services, relation resolver, schema.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Relational store (authors, books)
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	pg := database.NewPostgresDB(dbConfig)
	if err := pg.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	c.Postgres = pg

	// Document store (reviews)
	mongo := database.NewMongoDB(&database.MongoConfig{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err := mongo.Connect(ctx); err != nil {
		pg.Close()
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	c.Mongo = mongo

	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(pg.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pg.Pool)
	c.ReviewRepo = reviewRepo.NewMongoRepository(mongo.Database)

	// Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo)

	// Graph
	c.Relations = graph.NewRelationResolver(c.AuthorService, c.BookService, c.ReviewService)

	registry := graph.NewRegistry(c.AuthorService, c.BookService, c.ReviewService, c.Relations)
	schema, err := registry.Schema()
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	c.Schema = schema

	c.IdentityExtractor = identity.NewExtractor(cfg.Auth.JWTSecret)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup closes the store handles.
func (c *Container) Cleanup() {
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Mongo.Close(ctx)
	}
}
