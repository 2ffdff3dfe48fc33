package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-backend/internal/domains/review"
)

const collectionName = "reviews"

type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository returns the mongo-backed review repository.
func NewMongoRepository(db *mongo.Database) review.Repository {
	return &mongoRepository{collection: db.Collection(collectionName)}
}

func (r *mongoRepository) Create(ctx context.Context, rev *review.Review) (*review.Review, error) {
	result, err := r.collection.InsertOne(ctx, rev)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rev.ID = oid
	}
	return rev, nil
}

func (r *mongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*review.Review, error) {
	rev := &review.Review{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(rev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return rev, nil
}

func (r *mongoRepository) FindByBook(ctx context.Context, bookID string) ([]review.Review, error) {
	// _id ascending is insertion order for ObjectIDs
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"bookId": bookID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []review.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

func (r *mongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields review.UpdateFields) (*review.Review, error) {
	set := bson.M{}
	if fields.Rating != nil {
		set["rating"] = *fields.Rating
	}
	if fields.Comment != nil {
		set["comment"] = *fields.Comment
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	rev := &review.Review{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(rev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return rev, nil
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return review.ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

func (r *mongoRepository) AverageRatingByBook(ctx context.Context, bookID string) (*float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"bookId": bookID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode rating aggregate: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0].Average, nil
}
