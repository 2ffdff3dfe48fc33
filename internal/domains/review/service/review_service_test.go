package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/review"
	"library-backend/internal/shared/apperror"
)

// fakeRepository is an in-memory review.Repository keyed by object id.
type fakeRepository struct {
	byID map[primitive.ObjectID]*review.Review
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[primitive.ObjectID]*review.Review)}
}

func (f *fakeRepository) Create(_ context.Context, r *review.Review) (*review.Review, error) {
	stored := *r
	f.byID[r.ID] = &stored
	return r, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id primitive.ObjectID) (*review.Review, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepository) FindByBook(_ context.Context, bookID string) ([]review.Review, error) {
	var reviews []review.Review
	for _, r := range f.byID {
		if r.BookID == bookID {
			reviews = append(reviews, *r)
		}
	}
	return reviews, nil
}

func (f *fakeRepository) UpdateByID(_ context.Context, id primitive.ObjectID, fields review.UpdateFields) (*review.Review, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, review.ErrReviewNotFound
	}
	if fields.Rating != nil {
		r.Rating = *fields.Rating
	}
	if fields.Comment != nil {
		r.Comment = fields.Comment
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRepository) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.byID[id]; !ok {
		return review.ErrReviewNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepository) AverageRatingByBook(_ context.Context, bookID string) (*float64, error) {
	var sum, count int
	for _, r := range f.byID {
		if r.BookID == bookID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(count)
	return &avg, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestReviewService_Create(t *testing.T) {
	t.Run("assigns identity and creation time server-side", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewService(repo)

		before := time.Now().UTC()
		created, err := svc.Create(context.Background(), &review.CreateRequest{
			BookID:  uuid.NewString(),
			Rating:  5,
			Comment: strPtr("Loved it"),
			UserID:  "user-1",
		})
		require.NoError(t, err)

		assert.False(t, created.ID.IsZero())
		assert.False(t, created.CreatedAt.Before(before))
		assert.False(t, created.CreatedAt.After(time.Now().UTC()))
		assert.Equal(t, "user-1", created.UserID)
		assert.Len(t, repo.byID, 1)
	})

	t.Run("rejects out-of-range ratings", func(t *testing.T) {
		svc := NewReviewService(newFakeRepository())

		for _, rating := range []int{-1, 0, 6} {
			_, err := svc.Create(context.Background(), &review.CreateRequest{
				BookID: uuid.NewString(),
				Rating: rating,
				UserID: "user-1",
			})
			require.Error(t, err, "rating %d", rating)
			assert.True(t, apperror.IsValidation(err), "rating %d", rating)
		}
	})

	t.Run("rejects a non-uuid book id", func(t *testing.T) {
		svc := NewReviewService(newFakeRepository())

		_, err := svc.Create(context.Background(), &review.CreateRequest{
			BookID: "not-a-uuid",
			Rating: 4,
			UserID: "user-1",
		})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestReviewService_Update(t *testing.T) {
	seed := func(t *testing.T) (review.Service, *review.Review) {
		t.Helper()
		svc := NewReviewService(newFakeRepository())
		created, err := svc.Create(context.Background(), &review.CreateRequest{
			BookID:  uuid.NewString(),
			Rating:  3,
			Comment: strPtr("Fine"),
			UserID:  "user-1",
		})
		require.NoError(t, err)
		return svc, created
	}

	t.Run("updates rating, keeps comment and references", func(t *testing.T) {
		svc, created := seed(t)

		updated, err := svc.Update(context.Background(), created.ID.Hex(), &review.UpdateRequest{
			Rating: intPtr(5),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Rating)
		require.NotNil(t, updated.Comment)
		assert.Equal(t, "Fine", *updated.Comment)
		assert.Equal(t, created.UserID, updated.UserID)
		assert.Equal(t, created.BookID, updated.BookID)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.Update(context.Background(), "zzz", &review.UpdateRequest{Rating: intPtr(4)})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), &review.UpdateRequest{
			Rating: intPtr(4),
		})
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		svc, created := seed(t)

		_, err := svc.Update(context.Background(), created.ID.Hex(), &review.UpdateRequest{
			Rating: intPtr(9),
		})
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("removes an existing review", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewReviewService(repo)
		created, err := svc.Create(context.Background(), &review.CreateRequest{
			BookID: uuid.NewString(),
			Rating: 4,
			UserID: "user-1",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))
		assert.Empty(t, repo.byID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		svc := NewReviewService(newFakeRepository())

		err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestReviewService_AverageRating(t *testing.T) {
	svc := NewReviewService(newFakeRepository())
	bookID := uuid.NewString()

	avg, err := svc.AverageRating(context.Background(), bookID)
	require.NoError(t, err)
	assert.Nil(t, avg)

	for _, rating := range []int{4, 5} {
		_, err := svc.Create(context.Background(), &review.CreateRequest{
			BookID: bookID,
			Rating: rating,
			UserID: "user-1",
		})
		require.NoError(t, err)
	}

	avg, err = svc.AverageRating(context.Background(), bookID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 4.5, *avg, 0.0001)
}
